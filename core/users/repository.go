package users

import "context"

// Repository is the collaborator the registration glue issues updates through.
type Repository interface {
	UpdateFirstName(ctx context.Context, id int64, value string) error
	UpdateLastName(ctx context.Context, id int64, value string) error
	UpdateUsername(ctx context.Context, id int64, value string) error
	// Entry inserts a user when absent. It returns nil without error when no
	// row was created.
	Entry(ctx context.Context, id int64, firstName, lastName, username string) (*User, error)
}
