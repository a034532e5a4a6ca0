package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/domain/access"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/pkg/jwt"
)

// Locals keys filled by AuthMiddleware.
const (
	LocalUserID           = "user_id"
	LocalRole             = "role"
	LocalSubscriptionTier = "subscription_tier"
)

// AuthMiddleware validates the Bearer JWT and stores the caller identity in c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "expected format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || id.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalRole, id.Role)
		c.Locals(LocalSubscriptionTier, id.SubscriptionTier)
		return c.Next()
	}
}

// RequireRole lets the request through only when the token role is one of roles.
// Must run after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token carries no role"})
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "insufficient permissions"})
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID the authenticated user id, "" before AuthMiddleware.
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRole the role claim of the token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetSubscriptionTier the subscription tier claim, "" for non-bidders.
func GetSubscriptionTier(c *fiber.Ctx) string { return localString(c, LocalSubscriptionTier) }

// GetActor the caller as seen by the use cases. Zero Actor when unauthenticated.
func GetActor(c *fiber.Ctx) access.Actor {
	role, ok := entity.ParseRole(GetRole(c))
	if !ok {
		role = entity.Role(GetRole(c))
	}
	return access.Actor{ID: GetUserID(c), Role: role}
}
