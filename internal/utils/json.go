package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorJSON writes the API error payload. Every endpoint uses the same
// shape: {"errors": ["..."]}.
func ErrorJSON(c *fiber.Ctx, status int, msgs ...string) error {
	return c.Status(status).JSON(fiber.Map{"errors": msgs})
}

// LogError logs an error if it's not nil
func LogError(err error, context string) {
	if err != nil {
		log.Printf("Error [%s]: %v", context, err)
	}
}
