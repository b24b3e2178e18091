package users

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewPostgresRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func userRow(id int64, firstName, lastName, username string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "first_name", "last_name", "username", "created_at"}).
		AddRow(id, firstName, lastName, username, time.Now())
}

func TestGetByIDFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, first_name, last_name, username, created_at FROM users WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(userRow(7, "Ann", "Lee", "ann"))

	u, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "ann", u.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDUnknownReturnsNil(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, first_name, last_name, username, created_at FROM users WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "username", "created_at"}))

	u, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryCreatesUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO users (id, first_name, last_name, username) VALUES ($1, $2, $3, $4) "+
			"ON CONFLICT (id) DO NOTHING "+
			"RETURNING id, first_name, last_name, username, created_at")).
		WithArgs(int64(7), "Ann", "Lee", "ann").
		WillReturnRows(userRow(7, "Ann", "Lee", "ann"))

	u, err := repo.Entry(context.Background(), 7, "Ann", "Lee", "ann")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, int64(7), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryConflictReturnsNil(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(int64(7), "Ann", "Lee", "ann").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "username", "created_at"}))

	u, err := repo.Entry(context.Background(), 7, "Ann", "Lee", "ann")
	require.NoError(t, err)
	require.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUsername(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET username = $1 WHERE id = $2")).
		WithArgs("ann_lee", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateUsername(context.Background(), 7, "ann_lee"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFirstName(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET first_name = $1 WHERE id = $2")).
		WithArgs("Anna", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateFirstName(context.Background(), 7, "Anna"))
	require.NoError(t, mock.ExpectationsWereMet())
}
