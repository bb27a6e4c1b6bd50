package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "rs9w-bridge is up",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
