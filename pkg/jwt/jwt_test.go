package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/YudheerRM/bidding-insights/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	in := pkgjwt.Identity{UserID: "u-1", Role: "bidder", SubscriptionTier: "premium"}
	tok, err := pkgjwt.Generate(secret, in, "bidding-insights-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	out, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_Expired(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, pkgjwt.Identity{UserID: "u-1", Role: "admin"}, "x", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, pkgjwt.Identity{UserID: "u-1", Role: "admin"}, "x", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Identity{UserID: "u-1"}, "x", 60)
	assert.Error(t, err)
	_, err = pkgjwt.Parse("", "whatever")
	assert.Error(t, err)
}
