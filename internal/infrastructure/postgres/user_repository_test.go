package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

func TestUserListWhere(t *testing.T) {
	where, args := userListWhere(repository.UserFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	active := true
	where, args = userListWhere(repository.UserFilter{Search: "ac_me", Role: entity.RoleBidder, IsActive: &active})
	assert.Equal(t,
		" WHERE (name ILIKE $1 OR email ILIKE $1 OR company_name ILIKE $1) AND role = $2 AND is_active = $3",
		where)
	assert.Equal(t, []any{`%ac\_me%`, "bidder", true}, args)
}

func TestUserListOrder(t *testing.T) {
	assert.Equal(t, "created_at DESC, id DESC", userListOrder(repository.UserFilter{Desc: true}))
	assert.Equal(t, "name ASC, id ASC", userListOrder(repository.UserFilter{SortBy: repository.UserSortName}))
	assert.Equal(t, "email DESC, id DESC", userListOrder(repository.UserFilter{SortBy: repository.UserSortEmail, Desc: true}))
	assert.Equal(t, "created_at ASC, id ASC", userListOrder(repository.UserFilter{SortBy: "password_hash; --"}))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_a\\b`, escapeLike(`100%_a\b`))
}
