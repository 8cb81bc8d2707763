package redemptions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	redID = "6f1c2a52-9a8e-4d0f-8c1e-3b7a2d4e5f60"
	phone = "905551234567"
)

var now = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

var cols = []string{"id", "phone", "reward_tier_id", "reward_name", "coupons_used", "status", "note", "handled_by", "created_at", "notified_at", "completed_at", "rejected_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+coupon_redemptions\s*\(id,\s*phone,\s*reward_tier_id,\s*reward_name,\s*coupons_used,\s*status,\s*created_at\)`).
		WithArgs(redID, phone, nil, nil, 4, "pending", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.CouponRedemption{
		ID: redID, Phone: phone, CouponsUsed: 4, Status: models.RedemptionPending, CreatedAt: now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT\s+INTO\s+coupon_redemptions`).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	err := repo.Create(context.Background(), &models.CouponRedemption{ID: redID, Phone: phone, CouponsUsed: 4, Status: models.RedemptionPending})
	assert.ErrorContains(t, err, "db error: duplicate key")
}

func TestFindPendingByPhone(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)FROM\s+coupon_redemptions\s+WHERE\s+phone\s*=\s*\$1\s+AND\s+status\s*=\s*\$2\s+FOR\s+UPDATE`).
		WithArgs(phone, "pending").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(redID, phone, "tier-1", "Massage", 6, "pending", nil, nil, now, nil, nil, nil))

	red, err := repo.FindPendingByPhone(context.Background(), phone)
	require.NoError(t, err)
	assert.Equal(t, redID, red.ID)
	assert.Equal(t, "tier-1", red.RewardTierID)
	assert.Equal(t, "Massage", red.RewardName)
	assert.Equal(t, 6, red.CouponsUsed)
	assert.Equal(t, models.RedemptionPending, red.Status)
	assert.Nil(t, red.CompletedAt)
}

func TestFindForUpdate_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)WHERE\s+id\s*=\s*\$1\s+FOR\s+UPDATE`).
		WithArgs(redID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindForUpdate(context.Background(), redID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFind_DoesNotLock(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)FROM\s+coupon_redemptions\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs(redID).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(redID, phone, nil, nil, 4, "pending", nil, nil, now, nil, nil, nil))

	red, err := repo.Find(context.Background(), redID)
	require.NoError(t, err)
	assert.Equal(t, phone, red.Phone)
	assert.Equal(t, models.RedemptionPending, red.Status)
}

func TestFindForUpdate_Rejected(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FOR\s+UPDATE`).
		WithArgs(redID).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(redID, phone, nil, nil, 4, "rejected", "no show", "alice", now, nil, nil, now))

	red, err := repo.FindForUpdate(context.Background(), redID)
	require.NoError(t, err)
	assert.Equal(t, models.RedemptionRejected, red.Status)
	assert.Equal(t, "no show", red.Note)
	assert.Equal(t, "alice", red.HandledBy)
	require.NotNil(t, red.RejectedAt)
	assert.True(t, red.RejectedAt.Equal(now))
}

func TestComplete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)UPDATE\s+coupon_redemptions\s+SET\s+status\s*=\s*\$2,\s*handled_by\s*=\s*\$3,\s*completed_at\s*=\s*\$4\s+WHERE\s+id\s*=\s*\$1\s+AND\s+status\s*=\s*\$5`
	mock.ExpectExec(q).WithArgs(redID, "completed", "alice", now, "pending").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(redID, "completed", "alice", now, "pending").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Complete(context.Background(), redID, "alice", now))
	assert.ErrorIs(t, repo.Complete(context.Background(), redID, "alice", now), common.ErrorNotFound)
}

func TestReject(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)UPDATE\s+coupon_redemptions\s+SET\s+status\s*=\s*\$2,\s*handled_by\s*=\s*\$3,\s*note\s*=\s*\$4,\s*rejected_at\s*=\s*\$5`).
		WithArgs(redID, "rejected", "alice", "no show", now, "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Reject(context.Background(), redID, "alice", "no show", now))
}

func TestMarkNotified(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE\s+coupon_redemptions\s+SET\s+notified_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(redID, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkNotified(context.Background(), redID, now))
}

func TestListPendingBefore(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	cutoff := now.Add(-30 * 24 * time.Hour)

	mock.ExpectQuery(`(?s)WHERE\s+status\s*=\s*\$1\s+AND\s+created_at\s*<\s*\$2\s+ORDER\s+BY\s+created_at$`).
		WithArgs("pending", cutoff).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(redID, phone, nil, nil, 4, "pending", nil, nil, cutoff.Add(-time.Hour), nil, nil, nil).
			AddRow("a1", "905550000000", nil, nil, 8, "pending", nil, nil, cutoff.Add(-2*time.Hour), nil, nil, nil))

	list, err := repo.ListPendingBefore(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 8, list[1].CouponsUsed)
}

func TestListByStatus_ScanError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)WHERE\s+status\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$2`).
		WithArgs("completed", 20).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(redID, phone, nil, nil, 4, "bogus", nil, nil, now, nil, nil, nil))

	_, err := repo.ListByStatus(context.Background(), models.RedemptionCompleted, 20)
	assert.ErrorContains(t, err, `unknown redemption status "bogus"`)
}
