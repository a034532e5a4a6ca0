package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YudheerRM/bidding-insights/internal/application/auth"
	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/infrastructure/memory"
	"github.com/YudheerRM/bidding-insights/pkg/jwt"
)

const testSecret = "test-secret"

func newAuth() (*auth.AuthUseCase, *memory.Store) {
	store := memory.NewStore()
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}), store
}

func bidderSignUp() dto.SignUpRequest {
	return dto.SignUpRequest{
		Email:                      "Bidder@Example.com",
		Password:                   "Secret123",
		ConfirmPassword:            "Secret123",
		Name:                       "Bidder Co",
		Role:                       "bidder",
		CompanyName:                "Acme",
		BusinessRegistrationNumber: "BRN-12345",
		TaxID:                      "TAX-12345",
		BidderCategory:             "construction",
	}
}

func TestSignUp_BidderDefaultsToBasic(t *testing.T) {
	uc, store := newAuth()
	out, err := uc.SignUp(context.Background(), bidderSignUp())
	require.NoError(t, err)
	assert.Equal(t, "bidder@example.com", out.Email)
	assert.Equal(t, "basic", out.SubscriptionTier)
	assert.Nil(t, out.SubscriptionExpiry)
	assert.True(t, out.IsActive)

	u, err := store.Users().GetByEmail(context.Background(), "bidder@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, "Secret123", u.PasswordHash)
}

func TestSignUp_PaidTierGetsExpiry(t *testing.T) {
	uc, _ := newAuth()
	in := bidderSignUp()
	in.SubscriptionTier = "premium"
	out, err := uc.SignUp(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out.SubscriptionExpiry)
	assert.True(t, out.SubscriptionExpiry.After(out.CreatedAt))
}

func TestSignUp_Validation(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()

	in := bidderSignUp()
	in.ConfirmPassword = "Other123"
	_, err := uc.SignUp(ctx, in)
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	in = bidderSignUp()
	in.TaxID = "123"
	_, err = uc.SignUp(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = bidderSignUp()
	in.Role = "government_official"
	_, err = uc.SignUp(ctx, in)
	assert.EqualError(t, err, "missing required fields: department, position, government_id")

	in = bidderSignUp()
	in.Role = "overlord"
	_, err = uc.SignUp(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignUp_OverlongPassword(t *testing.T) {
	uc, store := newAuth()
	in := bidderSignUp()
	in.Password = "Secret123" + strings.Repeat("x", auth.MaxPasswordLength)
	in.ConfirmPassword = in.Password

	_, err := uc.SignUp(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	u, err := store.Users().GetByEmail(context.Background(), "bidder@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	_, err := uc.SignUp(ctx, bidderSignUp())
	require.NoError(t, err)
	_, err = uc.SignUp(ctx, bidderSignUp())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin(t *testing.T) {
	uc, store := newAuth()
	ctx := context.Background()
	_, err := uc.SignUp(ctx, bidderSignUp())
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "bidder@example.com", Password: "Secret123"})
	require.NoError(t, err)
	id, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id.UserID)
	assert.Equal(t, "bidder", id.Role)
	assert.Equal(t, "basic", id.SubscriptionTier)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "bidder@example.com", Password: "Wrong1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "Secret123"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	u, err := store.Users().GetByEmail(ctx, "bidder@example.com")
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, store.Users().Update(ctx, u))
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "bidder@example.com", Password: "Secret123"})
	assert.ErrorIs(t, err, domain.ErrAccountDeactivated)
}
