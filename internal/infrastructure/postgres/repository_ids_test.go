package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
)

var errUnexpectedQuery = errors.New("unexpected query")

// countingQuerier records every round trip and fails all of them.
type countingQuerier struct {
	calls int
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func (q *countingQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	q.calls++
	return pgconn.CommandTag{}, errUnexpectedQuery
}

func (q *countingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	q.calls++
	return nil, errUnexpectedQuery
}

func (q *countingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	q.calls++
	return errRow{err: errUnexpectedQuery}
}

const (
	validID     = "6f1c2b9e-4a52-4c1d-9a0e-1d2f3b4c5d6e"
	malformedID = "abc"
)

func TestValidIDs(t *testing.T) {
	assert.True(t, validIDs(validID))
	assert.True(t, validIDs(validID, "00000000-0000-0000-0000-000000000000"))
	assert.False(t, validIDs(malformedID))
	assert.False(t, validIDs(validID, ""))
	assert.False(t, validIDs("1 OR 1=1"))
}

func TestUserRepo_MalformedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	q := &countingQuerier{}
	repo := NewUserRepository(q)

	u, err := repo.GetByID(ctx, malformedID)
	require.NoError(t, err)
	assert.Nil(t, u)

	err = repo.Update(ctx, &entity.User{ID: malformedID, Email: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, malformedID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.Zero(t, q.calls)
}

func TestTenderRepo_MalformedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	q := &countingQuerier{}
	repo := NewTenderRepository(q)

	tender, err := repo.GetByID(ctx, malformedID)
	require.NoError(t, err)
	assert.Nil(t, tender)

	err = repo.Update(ctx, &entity.Tender{ID: malformedID, Title: "x"})
	assert.ErrorIs(t, err, domain.ErrTenderNotFound)

	assert.Zero(t, q.calls)
}

func TestApplicationRepo_MalformedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	q := &countingQuerier{}
	repo := NewApplicationRepository(q)

	a, err := repo.GetByUserAndTender(ctx, validID, malformedID)
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = repo.GetByIDForUser(ctx, malformedID, validID)
	require.NoError(t, err)
	assert.Nil(t, a)

	list, err := repo.ListByUser(ctx, malformedID)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = repo.DeleteForUser(ctx, malformedID, validID)
	assert.ErrorIs(t, err, domain.ErrApplicationNotFound)

	err = repo.Create(ctx, &entity.TenderApplication{ID: validID, UserID: validID, TenderID: malformedID})
	assert.ErrorIs(t, err, domain.ErrTenderNotFound)

	assert.Zero(t, q.calls)
}

func TestWellFormedIDReachesDatabase(t *testing.T) {
	ctx := context.Background()
	q := &countingQuerier{}

	_, err := NewUserRepository(q).GetByID(ctx, validID)
	assert.ErrorIs(t, err, errUnexpectedQuery)
	assert.Equal(t, 1, q.calls)
}

func TestInvalidTextMapsToNotFound(t *testing.T) {
	assert.True(t, isInvalidText(&pgconn.PgError{Code: "22P02"}))
	assert.False(t, isInvalidText(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isInvalidText(errUnexpectedQuery))
}
