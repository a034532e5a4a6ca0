package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository in-memory users table.
type UserRepository struct {
	s  *Store
	tx bool
}

func cloneUser(u entity.User) *entity.User {
	u.SubscriptionExpiry = clonePtr(u.SubscriptionExpiry)
	return &u
}

func (r *UserRepository) emailTaken(email, exceptID string) bool {
	for id, u := range r.s.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.s.write(r.tx, func() error {
		if r.emailTaken(user.Email, "") {
			return domain.ErrEmailAlreadyExists
		}
		r.s.users[user.ID] = *cloneUser(*user)
		return nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var out *entity.User
	r.s.read(func() {
		if u, ok := r.s.users[id]; ok {
			out = cloneUser(u)
		}
	})
	return out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var out *entity.User
	r.s.read(func() {
		for _, u := range r.s.users {
			if strings.EqualFold(u.Email, email) {
				out = cloneUser(u)
				return
			}
		}
	})
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return r.s.write(r.tx, func() error {
		if _, ok := r.s.users[user.ID]; !ok {
			return domain.ErrUserNotFound
		}
		if r.emailTaken(user.Email, user.ID) {
			return domain.ErrEmailAlreadyExists
		}
		r.s.users[user.ID] = *cloneUser(*user)
		return nil
	})
}

// Delete cascades to the user's applications.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.s.write(r.tx, func() error {
		if _, ok := r.s.users[id]; !ok {
			return domain.ErrUserNotFound
		}
		delete(r.s.users, id)
		for appID, a := range r.s.applications {
			if a.UserID == id {
				delete(r.s.applications, appID)
			}
		}
		return nil
	})
}

func (r *UserRepository) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	var matches []*entity.User
	search := strings.ToLower(strings.TrimSpace(f.Search))
	r.s.read(func() {
		for _, u := range r.s.users {
			if search != "" &&
				!strings.Contains(strings.ToLower(u.Name), search) &&
				!strings.Contains(strings.ToLower(u.Email), search) &&
				!strings.Contains(strings.ToLower(u.CompanyName), search) {
				continue
			}
			if f.Role != "" && u.Role != f.Role {
				continue
			}
			if f.IsActive != nil && u.IsActive != *f.IsActive {
				continue
			}
			matches = append(matches, cloneUser(u))
		}
	})

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		var less, equal bool
		switch f.SortBy {
		case repository.UserSortName:
			less, equal = strings.ToLower(a.Name) < strings.ToLower(b.Name), strings.EqualFold(a.Name, b.Name)
		case repository.UserSortEmail:
			less, equal = a.Email < b.Email, a.Email == b.Email
		default:
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
		if equal {
			return a.ID < b.ID
		}
		if f.Desc {
			return !less
		}
		return less
	})

	total := len(matches)
	return page(matches, f.Offset, f.Limit), total, nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
