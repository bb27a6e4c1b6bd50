package middleware

import (
	"rs9w-bridge/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// DeviceAuth validates the bearer token before the handler runs. With
// required=false a request without an Authorization header passes through
// untouched; the employee sync endpoint keeps that legacy permissive
// behavior so unprovisioned terminals can bootstrap. A header that IS
// present is always validated, on every endpoint.
func DeviceAuth(guard *auth.Guard, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" && !required {
			return c.Next()
		}
		if err := guard.Authorize(header); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return c.Next()
	}
}

// SharedSecretAuth admits the shared secret only, not enrolled device tokens.
func SharedSecretAuth(guard *auth.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := guard.AuthorizeShared(c.Get("Authorization")); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return c.Next()
	}
}
