package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/luizavanter/guialmeidapersonal/pkg/utils"
)

func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c, "Invalid authorization header format")
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleRequired restricts a route group to one role; it assumes AuthRequired
// already ran.
func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if got, ok := c.Locals("role").(string); !ok || got != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"errors": []fiber.Map{{"message": "Access forbidden", "code": "FORBIDDEN"}},
			})
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"errors": []fiber.Map{{"message": message, "code": "UNAUTHORIZED"}},
	})
}
