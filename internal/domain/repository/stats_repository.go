package repository

import (
	"context"
	"time"

	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
)

// StatsRepository aggregate queries for the admin overview.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountActiveUsers(ctx context.Context) (int, error)
	CountUsersCreatedSince(ctx context.Context, since time.Time) (int, error)
	CountUsersByRole(ctx context.Context) (map[entity.Role]int, error)
	CountApplicationsByStatus(ctx context.Context) (map[entity.ApplicationStatus]int, error)
}
