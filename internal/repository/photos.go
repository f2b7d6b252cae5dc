package repository

import (
	"context"
	"errors"
	"fmt"

	"photoshare-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const photoColumns = `id, image, title, user_id, user_name, likes, comments, created_at`

type PostgresPhotoRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPhotoRepository(pool *pgxpool.Pool) *PostgresPhotoRepository {
	return &PostgresPhotoRepository{pool: pool}
}

func (r *PostgresPhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	if photo.Likes == nil {
		photo.Likes = []int64{}
	}
	if photo.Comments == nil {
		photo.Comments = []models.Comment{}
	}
	query := `INSERT INTO photos (image, title, user_id, user_name, likes, comments)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		photo.Image, photo.Title, photo.UserID, photo.UserName, photo.Likes, photo.Comments,
	).Scan(&photo.ID, &photo.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresPhotoRepository) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	photoID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1`
	photo, err := scanPhoto(r.pool.QueryRow(ctx, query, photoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return photo, nil
}

func (r *PostgresPhotoRepository) GetAll(ctx context.Context) ([]models.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos ORDER BY created_at DESC`
	return r.queryPhotos(ctx, query)
}

func (r *PostgresPhotoRepository) GetByUserID(ctx context.Context, userID string) ([]models.Photo, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + photoColumns + ` FROM photos WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryPhotos(ctx, query, ownerID)
}

// Update persists the whole mutable state of the photo in one write.
// Concurrent mutations of the same photo are last-writer-wins.
func (r *PostgresPhotoRepository) Update(ctx context.Context, photo *models.Photo) error {
	query := `UPDATE photos SET title = $2, likes = $3, comments = $4 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, photo.ID, photo.Title, photo.Likes, photo.Comments)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPhotoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPhotoRepository) SearchByTitle(ctx context.Context, query string) ([]models.Photo, error) {
	q := `SELECT ` + photoColumns + ` FROM photos WHERE title ILIKE '%' || $1 || '%' ORDER BY created_at DESC`
	return r.queryPhotos(ctx, q, query)
}

func (r *PostgresPhotoRepository) queryPhotos(ctx context.Context, query string, args ...any) ([]models.Photo, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		photos = append(photos, *photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return photos, nil
}

func scanPhoto(row pgx.Row) (*models.Photo, error) {
	photo := &models.Photo{}
	err := row.Scan(
		&photo.ID, &photo.Image, &photo.Title, &photo.UserID,
		&photo.UserName, &photo.Likes, &photo.Comments, &photo.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return photo, nil
}
