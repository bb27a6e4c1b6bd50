package routes

import "github.com/gofiber/fiber/v2"

// Registered after the real methods on each path so stray verbs get the
// envelope instead of fiber's plain-text 405.
func methodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
		"success": false,
		"message": "Method not allowed",
	})
}
