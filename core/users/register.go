package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/m3rciful/pgstate/core/logger"
	"log/slog"
)

// ErrRegistrationFailed is returned when creating a new user reports that no
// row was created.
var ErrRegistrationFailed = errors.New("user registration failed")

// Register syncs an incoming profile with the stored record. Existing users
// get an update per changed field only; unknown users are created via Entry.
func Register(ctx context.Context, repo Repository, incoming Profile, existing *User) error {
	if existing != nil {
		if existing.FirstName != incoming.FirstName {
			if err := repo.UpdateFirstName(ctx, incoming.ID, incoming.FirstName); err != nil {
				return fmt.Errorf("update first name: %w", err)
			}
		}
		if existing.LastName != incoming.LastName {
			if err := repo.UpdateLastName(ctx, incoming.ID, incoming.LastName); err != nil {
				return fmt.Errorf("update last name: %w", err)
			}
		}
		if existing.Username != incoming.Username {
			if err := repo.UpdateUsername(ctx, incoming.ID, incoming.Username); err != nil {
				return fmt.Errorf("update username: %w", err)
			}
		}
		return nil
	}

	created, err := repo.Entry(ctx, incoming.ID, incoming.FirstName, incoming.LastName, incoming.Username)
	if err != nil {
		return fmt.Errorf("entry: %w", err)
	}
	if created == nil {
		return ErrRegistrationFailed
	}
	logger.Users.Info("user registered",
		slog.String("event", "users.registered"),
		slog.Int64("user_id", incoming.ID),
		slog.String("username", incoming.Username),
	)
	return nil
}
