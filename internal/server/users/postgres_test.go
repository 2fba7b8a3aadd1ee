package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

const insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*email,\s*password_hash,\s*is_admin\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at$`

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	mock.ExpectQuery(insertQ).
		WithArgs("alice", "alice@ufl.edu", "hash", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))

	got, err := repo.Create(context.Background(), &User{Username: "alice", Email: "alice@ufl.edu", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, now, got.CreatedAt)
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).
		WithArgs("alice", "alice@ufl.edu", "hash", true).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &User{Username: "alice", Email: "alice@ufl.edu", PasswordHash: "hash", IsAdmin: true})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &User{Username: "alice"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+id,\s*username,\s*email,\s*password_hash,\s*is_admin,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "is_admin", "created_at"}).
		AddRow(int64(1), "admin1", "admin1@ufl.edu", "h", true, time.Now())
	mock.ExpectQuery(q).WithArgs("admin1@ufl.edu").WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "admin1@ufl.edu")
	require.NoError(t, err)
	assert.Equal(t, "admin1", got.Username)
	assert.True(t, got.IsAdmin)
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+.+\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1$`
	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExists(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s+OR\s+username\s*=\s*\$2\)$`
	mock.ExpectQuery(q).WithArgs("a@ufl.edu", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(q).WithArgs("b@ufl.edu", "bob").
		WillReturnError(errors.New("db err"))

	ok, err := repo.Exists(context.Background(), "a@ufl.edu", "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.Exists(context.Background(), "b@ufl.edu", "bob")
	assert.ErrorContains(t, err, "db error: db err")
}
