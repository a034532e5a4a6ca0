// Package analytics builds the admin overview of accounts and applications.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/domain/access"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

// newUserWindow how far back a sign-up counts as new.
const newUserWindow = 30 * 24 * time.Hour

// StatsUseCase admin-only aggregate counts.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	now       func() time.Time
}

// NewStatsUseCase builds the use case.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo, now: time.Now}
}

// Summary runs the five aggregate queries in parallel.
func (uc *StatsUseCase) Summary(ctx context.Context, actor access.Actor) (*dto.StatsResponse, error) {
	if err := access.Require(actor, access.CanManageUsers); err != nil {
		return nil, err
	}
	since := uc.now().Add(-newUserWindow)

	type countResult struct {
		n   int
		err error
	}
	type rolesResult struct {
		counts map[entity.Role]int
		err    error
	}
	type statusResult struct {
		counts map[entity.ApplicationStatus]int
		err    error
	}

	totalCh := make(chan countResult, 1)
	activeCh := make(chan countResult, 1)
	recentCh := make(chan countResult, 1)
	rolesCh := make(chan rolesResult, 1)
	statusCh := make(chan statusResult, 1)

	go func() {
		n, err := uc.statsRepo.CountUsers(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountActiveUsers(ctx)
		activeCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountUsersCreatedSince(ctx, since)
		recentCh <- countResult{n, err}
	}()
	go func() {
		c, err := uc.statsRepo.CountUsersByRole(ctx)
		rolesCh <- rolesResult{c, err}
	}()
	go func() {
		c, err := uc.statsRepo.CountApplicationsByStatus(ctx)
		statusCh <- statusResult{c, err}
	}()

	total, active, recent := <-totalCh, <-activeCh, <-recentCh
	roles, statuses := <-rolesCh, <-statusCh

	switch {
	case total.err != nil:
		return nil, fmt.Errorf("stats: total users: %w", total.err)
	case active.err != nil:
		return nil, fmt.Errorf("stats: active users: %w", active.err)
	case recent.err != nil:
		return nil, fmt.Errorf("stats: new users: %w", recent.err)
	case roles.err != nil:
		return nil, fmt.Errorf("stats: users by role: %w", roles.err)
	case statuses.err != nil:
		return nil, fmt.Errorf("stats: applications by status: %w", statuses.err)
	}

	byRole := make(map[string]int, len(entity.Roles))
	for _, r := range entity.Roles {
		byRole[string(r)] = roles.counts[r]
	}
	byStatus := make(map[string]int, len(entity.ApplicationStatuses))
	for _, s := range entity.ApplicationStatuses {
		byStatus[string(s)] = statuses.counts[s]
	}

	return &dto.StatsResponse{
		TotalUsers:           total.n,
		ActiveUsers:          active.n,
		InactiveUsers:        total.n - active.n,
		NewUsersLast30Days:   recent.n,
		UsersByRole:          byRole,
		ApplicationsByStatus: byStatus,
	}, nil
}
