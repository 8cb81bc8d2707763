package tiers

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tierID = "0d8c6a3e-2b1f-4a5c-9e7d-6f8a9b0c1d2e"

var now = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

var cols = []string{"id", "name", "names", "coupons_required", "active", "sort_order", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestList_ActiveOnly(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+reward_tiers\s+WHERE\s+active\s+ORDER\s+BY\s+sort_order,\s*coupons_required,\s*name$`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(tierID, "Foot massage", []byte(`{"tr":"Ayak masajı"}`), 4, true, 0, now, now).
			AddRow("t2", "Full body", []byte(`{}`), 8, true, 1, now, now))

	list, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ayak masajı", list[0].DisplayName("tr"))
	assert.Equal(t, "Full body", list[1].DisplayName("tr"))
}

func TestList_All(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+reward_tiers\s+ORDER\s+BY`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(tierID, "Off", []byte(`{}`), 4, false, 0, now, now))

	list, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Active)
}

func TestFind_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE\s+id\s*=\s*\$1`).WithArgs(tierID).WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), tierID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+reward_tiers`).
		WithArgs(tierID, "Foot massage", []byte(`{"en":"Foot massage"}`), 4, true, 0, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tier := &models.RewardTier{
		ID: tierID, Name: "Foot massage", Names: map[string]string{"en": "Foot massage"},
		CouponsRequired: 4, Active: true, CreatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), tier))
	assert.Equal(t, now, tier.UpdatedAt)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)UPDATE\s+reward_tiers\s+SET`).
		WithArgs(tierID, "X", []byte(`{}`), 5, true, 2, now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.RewardTier{ID: tierID, Name: "X", CouponsRequired: 5, Active: true, SortOrder: 2, UpdatedAt: now})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+reward_tiers\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(tierID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), tierID))
}
