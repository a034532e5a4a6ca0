package repository

import (
	"context"

	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
)

// UserSort columns the directory can be ordered by.
type UserSort string

const (
	UserSortCreatedAt UserSort = "createdAt"
	UserSortName      UserSort = "name"
	UserSortEmail     UserSort = "email"
)

// UserFilter criteria for the admin directory listing. Zero values mean "no filter".
type UserFilter struct {
	Search   string // substring of name, email or company name, case-insensitive
	Role     entity.Role
	IsActive *bool
	SortBy   UserSort
	Desc     bool
	Limit    int
	Offset   int
}

// UserRepository persistence port for User. Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	// List returns one page of matches plus the total number of matches.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int, error)
}
