package handlers

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// saveUpload stores a multipart file field under a generated filename,
// preserving the original extension, and returns that filename. The rest of
// the system treats the returned name as an opaque string.
func saveUpload(c *fiber.Ctx, field, uploadDir string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(fileHeader.Filename)
	filename := uuid.New().String() + ext
	if err := c.SaveFile(fileHeader, filepath.Join(uploadDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
