package services

import (
	"context"
	"time"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/repository"
)

// PhotoService implements the photo workflows. Every mutation follows the
// same shape: load the photo, check who may act on it, mutate it in memory,
// persist it as a single save. There is no conflict detection between
// concurrent mutations of the same photo; the later write wins.
type PhotoService struct {
	photos repository.PhotoRepository
}

func NewPhotoService(photos repository.PhotoRepository) *PhotoService {
	return &PhotoService{photos: photos}
}

// ownedBy is the single authorization predicate for owner-gated mutations
// (title update, delete). Like and comment do not use it.
func ownedBy(photo *models.Photo, userID int64) bool {
	return photo.UserID == userID
}

// Insert creates a photo owned by the given user, snapshotting the owner's
// display name at upload time.
func (s *PhotoService) Insert(ctx context.Context, owner *models.User, title, image string) (*models.Photo, error) {
	photo := &models.Photo{
		Image:    image,
		Title:    title,
		UserID:   owner.ID,
		UserName: owner.Name,
		Likes:    []int64{},
		Comments: []models.Comment{},
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *PhotoService) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	return s.photos.GetByID(ctx, id)
}

func (s *PhotoService) GetAll(ctx context.Context) ([]models.Photo, error) {
	return s.photos.GetAll(ctx)
}

// GetUserPhotos lists a user's photos, newest first. A user with no photos
// gets an empty slice, not an error.
func (s *PhotoService) GetUserPhotos(ctx context.Context, userID string) ([]models.Photo, error) {
	return s.photos.GetByUserID(ctx, userID)
}

// Search matches photo titles by case-insensitive substring.
func (s *PhotoService) Search(ctx context.Context, query string) ([]models.Photo, error) {
	return s.photos.SearchByTitle(ctx, query)
}

// UpdateTitle changes a photo's title. Owner only.
func (s *PhotoService) UpdateTitle(ctx context.Context, id string, requester *models.User, title string) (*models.Photo, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownedBy(photo, requester.ID) {
		return nil, ErrNotOwner
	}

	photo.Title = title
	if err := s.photos.Update(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// Delete removes a photo. Owner only. Returns the deleted photo's id.
func (s *PhotoService) Delete(ctx context.Context, id string, requester *models.User) (int64, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if !ownedBy(photo, requester.ID) {
		return 0, ErrNotOwner
	}

	if err := s.photos.Delete(ctx, photo.ID); err != nil {
		return 0, err
	}
	return photo.ID, nil
}

// Like appends the requester to the photo's likes. Liking twice is rejected
// with ErrAlreadyLiked and leaves the likes unchanged.
func (s *PhotoService) Like(ctx context.Context, id string, requester *models.User) (*models.Photo, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, likerID := range photo.Likes {
		if likerID == requester.ID {
			return nil, ErrAlreadyLiked
		}
	}

	photo.Likes = append(photo.Likes, requester.ID)
	if err := s.photos.Update(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// Comment appends a comment carrying a snapshot of the requester's name and
// profile image as they are right now. Comments are never de-duplicated.
func (s *PhotoService) Comment(ctx context.Context, id string, requester *models.User, text string) (*models.Comment, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		Text:      text,
		UserID:    requester.ID,
		UserName:  requester.Name,
		UserImage: requester.ProfileImage,
		CreatedAt: time.Now(),
	}
	photo.Comments = append(photo.Comments, comment)
	if err := s.photos.Update(ctx, photo); err != nil {
		return nil, err
	}
	return &comment, nil
}
