package counters

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	identity = "905551234567"
	endpoint = "consume"
)

var (
	now     = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	resetAt = time.Date(2026, 10, 17, 21, 0, 0, 0, time.UTC)
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)SELECT\s+count,\s*reset_at\s+FROM\s+rate_limit_counters\s+WHERE\s+identity\s*=\s*\$1\s+AND\s+endpoint\s*=\s*\$2`).
		WithArgs(identity, endpoint).
		WillReturnRows(sqlmock.NewRows([]string{"count", "reset_at"}).AddRow(3, resetAt))

	c, err := repo.Get(context.Background(), identity, endpoint)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Count)
	assert.Equal(t, identity, c.Identity)
	assert.True(t, c.ResetAt.Equal(resetAt))
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+rate_limit_counters`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), identity, endpoint)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestIncrement_SingleUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+rate_limit_counters.*ON\s+CONFLICT\s*\(identity,\s*endpoint\)\s+DO\s+UPDATE\s+SET.*CASE\s+WHEN\s+c\.reset_at\s*<=\s*\$3\s+THEN\s+1.*RETURNING\s+count,\s*reset_at`).
		WithArgs(identity, endpoint, now, resetAt).
		WillReturnRows(sqlmock.NewRows([]string{"count", "reset_at"}).AddRow(1, resetAt))

	c, err := repo.Increment(context.Background(), identity, endpoint, now, resetAt)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpired(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+rate_limit_counters\s+WHERE\s+reset_at\s*<=\s*\$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}
