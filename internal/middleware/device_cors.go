package middleware

import "github.com/gofiber/fiber/v2"

// DeviceCORS sets the permissive header triad the RS9W push protocol
// expects on every response, and answers OPTIONS with 200 and no body
// before auth or routing get a say. Terminals and browser-based admin
// tools are both untrusted-origin clients.
func DeviceCORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Method() == fiber.MethodOptions {
			// SendStatus would fill the body with the status text.
			return c.Status(fiber.StatusOK).SendString("")
		}
		return c.Next()
	}
}
