package handlers

import (
	"photoshare-backend/internal/auth"
	"photoshare-backend/internal/models"
	"photoshare-backend/internal/repository"
	"photoshare-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "user"

// AuthMiddleware verifies the bearer token and resolves the requester into
// locals. The full user record (minus password, which never serializes) is
// loaded here so workflows and comment snapshots read it from the request
// context instead of re-deriving it.
func AuthMiddleware(secret []byte, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			token = authHeader[7:]
		}
		if token == "" {
			return utils.ErrorJSON(c, fiber.StatusUnauthorized, "Access denied.")
		}

		userID, err := auth.ParseToken(token, secret)
		if err != nil {
			return utils.ErrorJSON(c, fiber.StatusUnauthorized, "Invalid token.")
		}

		user, err := users.GetByID(c.Context(), formatID(userID))
		if err != nil {
			return utils.ErrorJSON(c, fiber.StatusUnauthorized, "Invalid token.")
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// currentUser returns the requester resolved by AuthMiddleware.
func currentUser(c *fiber.Ctx) *models.User {
	return c.Locals(userLocalsKey).(*models.User)
}
