package handlers

import (
	"errors"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/repository"
	"photoshare-backend/internal/services"
	"photoshare-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// RegisterHandler creates an account and signs the caller in.
func RegisterHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request.")
		}
		if msgs := validateRegister(req); len(msgs) > 0 {
			return utils.ErrorJSON(c, fiber.StatusUnprocessableEntity, msgs...)
		}

		res, err := userService.Register(c.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				return utils.ErrorJSON(c, fiber.StatusUnprocessableEntity, "Please use another e-mail.")
			}
			utils.LogError(err, "register")
			return utils.ErrorJSON(c, fiber.StatusInternalServerError, "Something went wrong, please try again later.")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// LoginHandler signs an existing user in.
func LoginHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request.")
		}

		res, err := userService.Login(c.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return utils.ErrorJSON(c, fiber.StatusBadRequest, "User not found.")
			case errors.Is(err, services.ErrInvalidCredentials):
				return utils.ErrorJSON(c, fiber.StatusBadRequest, "Invalid password.")
			}
			utils.LogError(err, "login")
			return utils.ErrorJSON(c, fiber.StatusInternalServerError, "Something went wrong, please try again later.")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// GetProfileHandler returns the authenticated user's own profile.
func GetProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(currentUser(c))
	}
}

// UpdateProfileHandler applies a partial self-service profile edit. Fields
// arrive as form values; a profileImage file, when attached, is staged to
// disk and stored by filename.
func UpdateProfileHandler(userService *services.UserService, uploadDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		upd := models.ProfileUpdate{}
		if v := c.FormValue("name"); v != "" {
			upd.Name = &v
		}
		if v := c.FormValue("password"); v != "" {
			upd.Password = &v
		}
		if v := c.FormValue("bio"); v != "" {
			upd.Bio = &v
		}
		if filename, err := saveUpload(c, "profileImage", uploadDir); err == nil {
			upd.ProfileImage = &filename
		}

		updated, err := userService.UpdateProfile(c.Context(), user, upd)
		if err != nil {
			utils.LogError(err, "update profile")
			return utils.ErrorJSON(c, fiber.StatusInternalServerError, "Something went wrong, please try again later.")
		}
		return c.JSON(updated)
	}
}

// GetUserByIDHandler returns a public profile.
func GetUserByIDHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := userService.GetByID(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return utils.ErrorJSON(c, fiber.StatusNotFound, "User not found.")
			}
			utils.LogError(err, "get user")
			return utils.ErrorJSON(c, fiber.StatusInternalServerError, "Something went wrong, please try again later.")
		}
		return c.JSON(user)
	}
}

func validateRegister(req models.RegisterRequest) []string {
	var msgs []string
	if req.Name == "" {
		msgs = append(msgs, "Name is required.")
	}
	if req.Email == "" {
		msgs = append(msgs, "E-mail is required.")
	}
	if req.Password == "" {
		msgs = append(msgs, "Password is required.")
	}
	return msgs
}
