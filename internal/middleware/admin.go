package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/jhelumkesar/internal/config"
	"github.com/example/jhelumkesar/internal/utils"
)

const (
	adminContextKey = "currentAdmin"

	// AdminCookie carries the admin session token, separate from the
	// customer session.
	AdminCookie = "admin_token"
)

// AdminAuth validates the admin session cookie.
func AdminAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c, AdminCookie)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "not authorized")
		}

		claims, err := utils.ParseAdminToken(cfg.JWTSecret, token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "not authorized")
		}

		c.Locals(adminContextKey, claims)
		return c.Next()
	}
}

// CurrentAdmin extracts the admin session claims from context.
func CurrentAdmin(c *fiber.Ctx) (*utils.AdminClaims, bool) {
	claims, ok := c.Locals(adminContextKey).(*utils.AdminClaims)
	return claims, ok
}
