package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tbardet/contacts-api/internal/dto"
	"github.com/tbardet/contacts-api/internal/identity"
)

// RoleRequired gates a route on the caller's role claim. Reads accept
// both roles; every mutation is Admin-only. The link/unlink routes use
// only this gate, with no ownership check behind it.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := identity.CurrentRole(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Insufficient role",
		})
	}
}
