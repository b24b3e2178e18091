// Package users syncs Telegram profile data into the users table and keeps
// stored records up to date as profiles change.
package users

import "time"

// User is a stored bot user.
type User struct {
	ID        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

// Profile is an incoming Telegram profile snapshot.
type Profile struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}
