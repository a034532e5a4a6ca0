package memory

import (
	"context"
	"time"

	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepository)(nil)

// StatsRepository aggregates over the in-memory tables.
type StatsRepository struct {
	s *Store
}

func (r *StatsRepository) countUsers(match func(entity.User) bool) int {
	n := 0
	r.s.read(func() {
		for _, u := range r.s.users {
			if match(u) {
				n++
			}
		}
	})
	return n
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.countUsers(func(entity.User) bool { return true }), nil
}

func (r *StatsRepository) CountActiveUsers(ctx context.Context) (int, error) {
	return r.countUsers(func(u entity.User) bool { return u.IsActive }), nil
}

func (r *StatsRepository) CountUsersCreatedSince(ctx context.Context, since time.Time) (int, error) {
	return r.countUsers(func(u entity.User) bool { return !u.CreatedAt.Before(since) }), nil
}

func (r *StatsRepository) CountUsersByRole(ctx context.Context) (map[entity.Role]int, error) {
	out := make(map[entity.Role]int)
	r.s.read(func() {
		for _, u := range r.s.users {
			out[u.Role]++
		}
	})
	return out, nil
}

func (r *StatsRepository) CountApplicationsByStatus(ctx context.Context) (map[entity.ApplicationStatus]int, error) {
	out := make(map[entity.ApplicationStatus]int)
	r.s.read(func() {
		for _, a := range r.s.applications {
			out[a.Status]++
		}
	})
	return out, nil
}
