package tokens

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var tokenCols = []string{"token", "status", "issued_for", "kiosk_id", "phone", "expires_at", "used_at", "created_at", "updated_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^\s*INSERT\s+INTO\s+coupon_tokens\s*\(token,\s*status,\s*issued_for,\s*kiosk_id,\s*expires_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+created_at,\s*updated_at\s*$`
	mock.ExpectQuery(q).
		WithArgs("ABCD2345WXYZ", "issued", nil, "K1", now.Add(24*time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	tok := &models.CouponToken{Token: "ABCD2345WXYZ", Status: models.TokenIssued, KioskID: "K1", ExpiresAt: now.Add(24 * time.Hour)}
	require.NoError(t, repo.Create(context.Background(), tok))
	assert.Equal(t, now, tok.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+coupon_tokens`).
		WithArgs("ABCD2345WXYZ", "issued", "massage-7", "K1", sqlmock.AnyArg()).
		WillReturnError(errors.New("duplicate key"))

	err := repo.Create(context.Background(), &models.CouponToken{Token: "ABCD2345WXYZ", Status: models.TokenIssued, IssuedFor: "massage-7", KioskID: "K1"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*duplicate key`), err.Error())
}

func TestExists(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+coupon_tokens\s+WHERE\s+token\s*=\s*\$1\)`
	mock.ExpectQuery(q).WithArgs("TAKEN").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(q).WithArgs("FREE").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.Exists(context.Background(), "TAKEN")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(context.Background(), "FREE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindForUpdate_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	used := now.Add(-time.Hour)
	q := `(?s)SELECT\s+token,.*FROM\s+coupon_tokens\s+WHERE\s+token\s*=\s*\$1\s+FOR\s+UPDATE\s*$`
	mock.ExpectQuery(q).WithArgs("ABCD2345WXYZ").WillReturnRows(
		sqlmock.NewRows(tokenCols).AddRow("ABCD2345WXYZ", "used", nil, "K1", "905551234567", now, used, now, now),
	)

	tok, err := repo.FindForUpdate(context.Background(), "ABCD2345WXYZ")
	require.NoError(t, err)
	assert.Equal(t, models.TokenUsed, tok.Status)
	assert.Equal(t, "905551234567", tok.Phone)
	assert.Empty(t, tok.IssuedFor)
	require.NotNil(t, tok.UsedAt)
	assert.Equal(t, used, *tok.UsedAt)
}

func TestFind_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)FROM\s+coupon_tokens\s+WHERE\s+token\s*=\s*\$1\s*$`).
		WithArgs("MISSING").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "MISSING")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFind_UnknownStatus(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+coupon_tokens`).WithArgs("X").WillReturnRows(
		sqlmock.NewRows(tokenCols).AddRow("X", "frozen", nil, "K1", nil, now, nil, now, now),
	)

	_, err := repo.Find(context.Background(), "X")
	assert.ErrorContains(t, err, "unknown token status")
}

func TestMarkUsed(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)UPDATE\s+coupon_tokens\s+SET\s+status\s*=\s*\$2,\s*phone\s*=\s*\$3,\s*used_at\s*=\s*\$4,\s*updated_at\s*=\s*\$4\s+WHERE\s+token\s*=\s*\$1\s+AND\s+status\s*=\s*\$5`
	mock.ExpectExec(q).WithArgs("T1", "used", "905551234567", now, "issued").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("T2", "used", "905551234567", now, "issued").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.MarkUsed(context.Background(), "T1", "905551234567", now))
	assert.ErrorIs(t, repo.MarkUsed(context.Background(), "T2", "905551234567", now), common.ErrorNotFound)
}

func TestMarkExpired_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE\s+coupon_tokens`).WithArgs("T1", "expired", now, "issued").WillReturnError(errors.New("db down"))

	err := repo.MarkExpired(context.Background(), "T1", now)
	assert.ErrorContains(t, err, "db error: db down")
}

func TestDeleteStale(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	expiredBefore := now.Add(-7 * 24 * time.Hour)
	usedBefore := now.Add(-90 * 24 * time.Hour)

	q := `(?s)DELETE\s+FROM\s+coupon_tokens\s+WHERE\s+\(status\s+IN\s+\(\$1,\s*\$2\)\s+AND\s+expires_at\s*<\s*\$3\)\s+OR\s+\(status\s*=\s*\$4\s+AND\s+used_at\s*<\s*\$5\)`
	mock.ExpectExec(q).
		WithArgs("issued", "expired", expiredBefore, "used", usedBefore).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteStale(context.Background(), expiredBefore, usedBefore)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}
