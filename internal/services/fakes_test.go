package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/repository"
)

// In-memory repository fakes mirroring the Postgres behavior the services
// depend on: ErrNotFound for absent or malformed ids, unique emails,
// newest-first listing, case-insensitive title search.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int64]models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	u, ok := f.users[n]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	f.users[user.ID] = *user
	return nil
}

type fakePhotoRepo struct {
	nextID int64
	photos map[int64]models.Photo
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{nextID: 1, photos: map[int64]models.Photo{}}
}

func (f *fakePhotoRepo) Create(_ context.Context, photo *models.Photo) error {
	photo.ID = f.nextID
	photo.CreatedAt = time.Now()
	f.nextID++
	f.photos[photo.ID] = *photo
	return nil
}

func (f *fakePhotoRepo) GetByID(_ context.Context, id string) (*models.Photo, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	p, ok := f.photos[n]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := p
	copied.Likes = append([]int64{}, p.Likes...)
	copied.Comments = append([]models.Comment{}, p.Comments...)
	return &copied, nil
}

func (f *fakePhotoRepo) GetAll(_ context.Context) ([]models.Photo, error) {
	return f.list(func(models.Photo) bool { return true }), nil
}

func (f *fakePhotoRepo) GetByUserID(_ context.Context, userID string) ([]models.Photo, error) {
	n, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return f.list(func(p models.Photo) bool { return p.UserID == n }), nil
}

func (f *fakePhotoRepo) Update(_ context.Context, photo *models.Photo) error {
	if _, ok := f.photos[photo.ID]; !ok {
		return repository.ErrNotFound
	}
	f.photos[photo.ID] = *photo
	return nil
}

func (f *fakePhotoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.photos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.photos, id)
	return nil
}

func (f *fakePhotoRepo) SearchByTitle(_ context.Context, query string) ([]models.Photo, error) {
	q := strings.ToLower(query)
	return f.list(func(p models.Photo) bool {
		return strings.Contains(strings.ToLower(p.Title), q)
	}), nil
}

func (f *fakePhotoRepo) list(match func(models.Photo) bool) []models.Photo {
	out := []models.Photo{}
	for _, p := range f.photos {
		if match(p) {
			out = append(out, p)
		}
	}
	// newest first, id as tiebreaker for same-instant creations
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
