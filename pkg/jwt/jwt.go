package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims registered JWT claims plus the identity the API needs on every request.
// Role travels in the token so RBAC middleware can decide without a DB round-trip.
type Claims struct {
	jwt.RegisteredClaims
	UserID           string `json:"user_id"`
	Role             string `json:"role"` // government_official | bidder | admin | viewer
	SubscriptionTier string `json:"subscription_tier,omitempty"`
}

// Identity is what Parse hands back to callers.
type Identity struct {
	UserID           string
	Role             string
	SubscriptionTier string
}

// Generate signs an HS256 token for the given identity.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:           id.UserID,
		Role:             id.Role,
		SubscriptionTier: id.SubscriptionTier,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates signature and expiry and returns the embedded identity.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("jwt: invalid claims")
	}
	return Identity{
		UserID:           claims.UserID,
		Role:             claims.Role,
		SubscriptionTier: claims.SubscriptionTier,
	}, nil
}
