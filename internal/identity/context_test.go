package identity

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func runWithClaims(t *testing.T, claims jwt.Claims, handler fiber.Handler) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestCurrentUsername(t *testing.T) {
	status, body := runWithClaims(t, jwt.MapClaims{"sub": "alice", "role": "Admin"}, func(c *fiber.Ctx) error {
		username, err := CurrentUsername(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(username)
	})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "alice", body)
}

func TestCurrentUsername_MissingToken(t *testing.T) {
	status, _ := runWithClaims(t, nil, func(c *fiber.Ctx) error {
		if _, err := CurrentUsername(c); err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCurrentRole(t *testing.T) {
	status, body := runWithClaims(t, jwt.MapClaims{"sub": "alice", "role": "Standard"}, func(c *fiber.Ctx) error {
		role, err := CurrentRole(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(role)
	})
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Standard", body)
}

func TestCurrentRole_MissingClaim(t *testing.T) {
	status, _ := runWithClaims(t, jwt.MapClaims{"sub": "alice"}, func(c *fiber.Ctx) error {
		if _, err := CurrentRole(c); err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	require.Equal(t, fiber.StatusUnauthorized, status)
}
