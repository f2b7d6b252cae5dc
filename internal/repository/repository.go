// Package repository provides persistence access for users and photos.
// Implementations back the interfaces with PostgreSQL; tests substitute
// in-memory fakes.
package repository

import (
	"context"
	"errors"
	"strconv"

	"photoshare-backend/internal/models"
)

var (
	// ErrNotFound covers both absent rows and malformed identifiers: a
	// lookup with an id that cannot exist behaves like a lookup that
	// found nothing.
	ErrNotFound = errors.New("not found")

	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, id string) (*models.Photo, error)
	GetAll(ctx context.Context) ([]models.Photo, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Photo, error)
	Update(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, query string) ([]models.Photo, error)
}

// parseID converts a path identifier into a numeric key. Anything that is
// not a valid id is reported as ErrNotFound, never as a parsing error.
func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrNotFound
	}
	return n, nil
}
