package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
	"github.com/YudheerRM/bidding-insights/internal/infrastructure/memory"
)

func seedUser(t *testing.T, s *memory.Store, id, email string, role entity.Role) {
	t.Helper()
	require.NoError(t, s.Users().Create(context.Background(), &entity.User{
		ID: id, Email: email, Name: id, Role: role, IsActive: true, CreatedAt: time.Now(),
	}))
}

func TestUserRepository_EmailUniqueCaseInsensitive(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, "u1", "a@b.com", entity.RoleBidder)

	err := s.Users().Create(context.Background(), &entity.User{ID: "u2", Email: "A@B.com"})
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestUserRepository_DeleteCascadesApplications(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedUser(t, s, "u1", "a@b.com", entity.RoleBidder)
	require.NoError(t, s.Tenders().Create(ctx, &entity.Tender{ID: "t1", Status: "open"}))
	require.NoError(t, s.Applications().Create(ctx, &entity.TenderApplication{ID: "a1", UserID: "u1", TenderID: "t1"}))

	require.NoError(t, s.Users().Delete(ctx, "u1"))
	got, err := s.Applications().GetByIDForUser(ctx, "a1", "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestApplicationRepository_Constraints(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedUser(t, s, "u1", "a@b.com", entity.RoleBidder)
	require.NoError(t, s.Tenders().Create(ctx, &entity.Tender{ID: "t1", Status: "open"}))

	require.NoError(t, s.Applications().Create(ctx, &entity.TenderApplication{ID: "a1", UserID: "u1", TenderID: "t1"}))
	err := s.Applications().Create(ctx, &entity.TenderApplication{ID: "a2", UserID: "u1", TenderID: "t1"})
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)

	err = s.Applications().Create(ctx, &entity.TenderApplication{ID: "a3", UserID: "u1", TenderID: "missing"})
	assert.ErrorIs(t, err, domain.ErrTenderNotFound)
}

func TestRun_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	boom := errors.New("boom")

	err := s.Run(ctx, func(users repository.UserRepository, _ repository.TenderRepository, _ repository.ApplicationRepository) error {
		require.NoError(t, users.Create(ctx, &entity.User{ID: "u1", Email: "x@y.z"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	u, err := s.Users().GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepository_ListPagination(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 23; i++ {
		require.NoError(t, s.Users().Create(ctx, &entity.User{
			ID:        fmt.Sprintf("u%02d", i),
			Email:     fmt.Sprintf("user%02d@example.com", i),
			Name:      fmt.Sprintf("User %02d", i),
			Role:      entity.RoleBidder,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	items, total, err := s.Users().List(ctx, repository.UserFilter{Desc: true, Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, 23, total)
	require.Len(t, items, 3)
	assert.Equal(t, "u02", items[0].ID)
	assert.Equal(t, "u00", items[2].ID)

	items, total, err = s.Users().List(ctx, repository.UserFilter{Search: "USER 1", SortBy: repository.UserSortName, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	assert.Len(t, items, 5)
	assert.Equal(t, "User 10", items[0].Name)
}

func TestTenderRepository_ListOrderAndStatusFold(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 1, 0)
	require.NoError(t, s.Tenders().Create(ctx, &entity.Tender{ID: "t1", Status: "Open", ClosingDate: &early}))
	require.NoError(t, s.Tenders().Create(ctx, &entity.Tender{ID: "t2", Status: "OPEN", ClosingDate: &late}))
	require.NoError(t, s.Tenders().Create(ctx, &entity.Tender{ID: "t3", Status: "open"}))
	require.NoError(t, s.Tenders().Create(ctx, &entity.Tender{ID: "t4", Status: "closed", ClosingDate: &late}))

	items, total, err := s.Tenders().List(ctx, repository.TenderFilter{Status: "open", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"t2", "t1", "t3"}, []string{items[0].ID, items[1].ID, items[2].ID})
}
