package handlers

import (
	"errors"
	"os"
	"path/filepath"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/repository"
	"photoshare-backend/internal/services"
	"photoshare-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// InsertPhotoHandler accepts a multipart upload (image file + title) and
// creates a photo owned by the requester.
func InsertPhotoHandler(photoService *services.PhotoService, uploadDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)

		title := c.FormValue("title")
		if title == "" {
			return utils.ErrorJSON(c, fiber.StatusUnprocessableEntity, "Title is required.")
		}

		filename, err := saveUpload(c, "image", uploadDir)
		if err != nil {
			return utils.ErrorJSON(c, fiber.StatusUnprocessableEntity, "Image is required.")
		}

		photo, err := photoService.Insert(c.Context(), user, title, filename)
		if err != nil {
			_ = os.Remove(filepath.Join(uploadDir, filename))
			utils.LogError(err, "insert photo")
			return utils.ErrorJSON(c, fiber.StatusUnprocessableEntity, "There was a problem, please try again later.")
		}
		return c.Status(fiber.StatusCreated).JSON(photo)
	}
}

// GetAllPhotosHandler lists every photo, newest first.
func GetAllPhotosHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := photoService.GetAll(c.Context())
		if err != nil {
			utils.LogError(err, "get all photos")
			return utils.ErrorJSON(c, fiber.StatusInternalServerError, "Something went wrong, please try again later.")
		}
		return c.JSON(photos)
	}
}

// GetUserPhotosHandler lists a user's photos, newest first. A user with no
// photos gets an empty array.
func GetUserPhotosHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := photoService.GetUserPhotos(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return utils.ErrorJSON(c, fiber.StatusNotFound, "User not found.")
			}
			utils.LogError(err, "get user photos")
			return utils.ErrorJSON(c, fiber.StatusInternalServerError, "Something went wrong, please try again later.")
		}
		return c.JSON(photos)
	}
}

// SearchPhotosHandler matches photo titles against the q query parameter,
// case-insensitively.
func SearchPhotosHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := photoService.Search(c.Context(), c.Query("q"))
		if err != nil {
			utils.LogError(err, "search photos")
			return utils.ErrorJSON(c, fiber.StatusInternalServerError, "Something went wrong, please try again later.")
		}
		return c.JSON(photos)
	}
}

// GetPhotoByIDHandler returns a single photo.
func GetPhotoByIDHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photo, err := photoService.GetByID(c.Context(), c.Params("id"))
		if err != nil {
			return photoError(c, err, "get photo")
		}
		return c.JSON(photo)
	}
}

// UpdatePhotoHandler changes a photo's title. Owner only.
func UpdatePhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdatePhotoRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request.")
		}
		if req.Title == "" {
			return utils.ErrorJSON(c, fiber.StatusUnprocessableEntity, "Title is required.")
		}

		photo, err := photoService.UpdateTitle(c.Context(), c.Params("id"), currentUser(c), req.Title)
		if err != nil {
			return photoError(c, err, "update photo")
		}
		return c.JSON(fiber.Map{
			"photo":   photo,
			"message": "Photo updated successfully.",
		})
	}
}

// DeletePhotoHandler removes a photo. Owner only.
func DeletePhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := photoService.Delete(c.Context(), c.Params("id"), currentUser(c))
		if err != nil {
			return photoError(c, err, "delete photo")
		}
		return c.JSON(fiber.Map{
			"id":      id,
			"message": "Photo deleted successfully.",
		})
	}
}

// LikePhotoHandler appends the requester's like. Liking twice is rejected.
func LikePhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		photo, err := photoService.Like(c.Context(), c.Params("id"), user)
		if err != nil {
			return photoError(c, err, "like photo")
		}
		return c.JSON(fiber.Map{
			"photoId": photo.ID,
			"userId":  user.ID,
			"message": "Photo liked.",
		})
	}
}

// CommentPhotoHandler appends a comment to a photo.
func CommentPhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CommentRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request.")
		}
		if req.Comment == "" {
			return utils.ErrorJSON(c, fiber.StatusUnprocessableEntity, "Comment is required.")
		}

		comment, err := photoService.Comment(c.Context(), c.Params("id"), currentUser(c), req.Comment)
		if err != nil {
			return photoError(c, err, "comment photo")
		}
		return c.JSON(fiber.Map{
			"comment": comment,
			"message": "Comment added.",
		})
	}
}

// photoError maps the photo workflow errors to their response. Ownership
// violations and double-likes surface as 422, matching the reference API.
func photoError(c *fiber.Ctx, err error, context string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorJSON(c, fiber.StatusNotFound, "Photo not found.")
	case errors.Is(err, services.ErrNotOwner):
		return utils.ErrorJSON(c, fiber.StatusUnprocessableEntity, "There was a problem, please try again later.")
	case errors.Is(err, services.ErrAlreadyLiked):
		return utils.ErrorJSON(c, fiber.StatusUnprocessableEntity, "You have already liked this photo.")
	}
	utils.LogError(err, context)
	return utils.ErrorJSON(c, fiber.StatusInternalServerError, "Something went wrong, please try again later.")
}
