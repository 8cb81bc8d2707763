package tiers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/dbx"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectTiers = `SELECT id, name, names, coupons_required, active, sort_order, created_at, updated_at FROM reward_tiers`

type scanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]*models.RewardTier, error) {
	query := selectTiers
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order, coupons_required, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.RewardTier
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*models.RewardTier, error) {
	return scanTier(r.db.QueryRowContext(ctx, selectTiers+` WHERE id = $1`, id))
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.RewardTier) error {
	names, err := marshalNames(t.Names)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO reward_tiers (id, name, names, coupons_required, active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`
	_, err = r.db.ExecContext(ctx, query, t.ID, t.Name, names, t.CouponsRequired, t.Active, t.SortOrder, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	t.UpdatedAt = t.CreatedAt
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, t *models.RewardTier) error {
	names, err := marshalNames(t.Names)
	if err != nil {
		return err
	}
	query := `
		UPDATE reward_tiers
		SET name = $2, names = $3, coupons_required = $4, active = $5, sort_order = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, t.ID, t.Name, names, t.CouponsRequired, t.Active, t.SortOrder, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reward_tiers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func marshalNames(names map[string]string) ([]byte, error) {
	if names == nil {
		names = map[string]string{}
	}
	b, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("marshal names: %w", err)
	}
	return b, nil
}

func scanTier(s scanner) (*models.RewardTier, error) {
	var (
		t     models.RewardTier
		names []byte
	)
	err := s.Scan(&t.ID, &t.Name, &names, &t.CouponsRequired, &t.Active, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(names) > 0 {
		if err := json.Unmarshal(names, &t.Names); err != nil {
			return nil, fmt.Errorf("unmarshal names of tier %s: %w", t.ID, err)
		}
	}
	return &t, nil
}
