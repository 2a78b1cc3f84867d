package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/jhelumkesar/internal/config"
	"github.com/example/jhelumkesar/internal/utils"
)

const (
	userContextKey = "currentUser"

	// AuthCookie carries the customer session token.
	AuthCookie = "auth_token"
)

// sessionToken extracts the raw token from the session cookie, falling back
// to an Authorization bearer header.
func sessionToken(c *fiber.Ctx, cookieName string) string {
	if token := c.Cookies(cookieName); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// Auth validates the customer session and loads its claims into context.
func Auth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c, AuthCookie)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(userContextKey, claims)
		return c.Next()
	}
}

// OptionalAuth loads session claims when a valid token is present but lets
// anonymous requests through; guest checkout uses it.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := sessionToken(c, AuthCookie); token != "" {
			if claims, err := utils.ParseToken(cfg.JWTSecret, token); err == nil {
				c.Locals(userContextKey, claims)
			}
		}
		return c.Next()
	}
}

// CurrentUser extracts the authenticated session claims from context.
func CurrentUser(c *fiber.Ctx) (*utils.UserClaims, bool) {
	claims, ok := c.Locals(userContextKey).(*utils.UserClaims)
	return claims, ok
}
