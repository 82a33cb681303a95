package statsservice

import (
	"context"
	"fmt"

	"assettag/models"

	"github.com/jmoiron/sqlx"
)

type StatsRepository interface {
	GetAssetTotals(ctx context.Context) (total int, completed int, err error)
	CountNonAdminUsers(ctx context.Context) (int, error)
	GetUnitBreakdown(ctx context.Context) ([]models.UnitStat, error)
}

type PostgresStatsRepository struct {
	DB *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &PostgresStatsRepository{DB: db}
}

func (r *PostgresStatsRepository) GetAssetTotals(ctx context.Context) (int, int, error) {
	var totals struct {
		Total     int `db:"total"`
		Completed int `db:"completed"`
	}
	err := r.DB.GetContext(ctx, &totals, `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_complete) AS completed
		FROM assets
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch asset totals: %w", err)
	}
	return totals.Total, totals.Completed, nil
}

func (r *PostgresStatsRepository) CountNonAdminUsers(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM users WHERE role <> 'admin'
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *PostgresStatsRepository) GetUnitBreakdown(ctx context.Context) ([]models.UnitStat, error) {
	stats := make([]models.UnitStat, 0)
	err := r.DB.SelectContext(ctx, &stats, `
		SELECT unit,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_complete) AS completed
		FROM assets
		GROUP BY unit
		ORDER BY unit
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unit breakdown: %w", err)
	}
	return stats, nil
}
