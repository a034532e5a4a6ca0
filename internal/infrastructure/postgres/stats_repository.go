package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo read-only aggregates for the admin overview.
type StatsRepo struct {
	db Querier
}

// NewStatsRepository builds the adapter.
func NewStatsRepository(db Querier) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *StatsRepo) CountUsers(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *StatsRepo) CountActiveUsers(ctx context.Context) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM users WHERE is_active`)
	if err != nil {
		return 0, fmt.Errorf("count active users: %w", err)
	}
	return n, nil
}

func (r *StatsRepo) CountUsersCreatedSince(ctx context.Context, since time.Time) (int, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM users WHERE created_at >= $1`, since)
	if err != nil {
		return 0, fmt.Errorf("count new users: %w", err)
	}
	return n, nil
}

func (r *StatsRepo) CountUsersByRole(ctx context.Context) (map[entity.Role]int, error) {
	rows, err := r.db.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, fmt.Errorf("count users by role: %w", err)
	}
	defer rows.Close()
	out := make(map[entity.Role]int)
	for rows.Next() {
		var role string
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, fmt.Errorf("scan role count: %w", err)
		}
		out[entity.Role(role)] = n
	}
	return out, rows.Err()
}

func (r *StatsRepo) CountApplicationsByStatus(ctx context.Context) (map[entity.ApplicationStatus]int, error) {
	rows, err := r.db.Query(ctx, `SELECT application_status, COUNT(*) FROM tender_applications GROUP BY application_status`)
	if err != nil {
		return nil, fmt.Errorf("count applications by status: %w", err)
	}
	defer rows.Close()
	out := make(map[entity.ApplicationStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[entity.ApplicationStatus(status)] = n
	}
	return out, rows.Err()
}
