package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/pgstate/core/logger"
	"log/slog"
)

// PostgresRepository stores users in the users table managed by migrations.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository wraps an established database handle.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the stored user, or nil when the id is unknown.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u,
		"SELECT id, first_name, last_name, username, created_at FROM users WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// UpdateFirstName sets the first_name column for the user.
func (r *PostgresRepository) UpdateFirstName(ctx context.Context, id int64, value string) error {
	return r.updateField(ctx, id, "first_name", value)
}

// UpdateLastName sets the last_name column for the user.
func (r *PostgresRepository) UpdateLastName(ctx context.Context, id int64, value string) error {
	return r.updateField(ctx, id, "last_name", value)
}

// UpdateUsername sets the username column for the user.
func (r *PostgresRepository) UpdateUsername(ctx context.Context, id int64, value string) error {
	return r.updateField(ctx, id, "username", value)
}

func (r *PostgresRepository) updateField(ctx context.Context, id int64, column, value string) error {
	start := time.Now()
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE users SET %s = $1 WHERE id = $2", column), value, id)
	if err != nil {
		return fmt.Errorf("update %s for user %d: %w", column, id, err)
	}
	rows, _ := res.RowsAffected()
	logger.Users.Debug("user field updated",
		slog.String("event", "users.update"),
		slog.Int64("user_id", id),
		slog.String("op", column),
		slog.Int64("rows", rows),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}

// Entry inserts a user when absent and returns the created record. It returns
// nil without error when the insert created no row.
func (r *PostgresRepository) Entry(ctx context.Context, id int64, firstName, lastName, username string) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u,
		"INSERT INTO users (id, first_name, last_name, username) VALUES ($1, $2, $3, $4) "+
			"ON CONFLICT (id) DO NOTHING "+
			"RETURNING id, first_name, last_name, username, created_at",
		id, firstName, lastName, username,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("entry for user %d: %w", id, err)
	}
	return &u, nil
}
