package services

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ana = &models.User{ID: 1, Name: "Ana", Email: "a@x.com"}
	bea = &models.User{ID: 2, Name: "Bea", Email: "b@x.com", ProfileImage: "bea.jpg"}
)

func insertPhoto(t *testing.T, svc *PhotoService, owner *models.User, title string) *models.Photo {
	t.Helper()
	photo, err := svc.Insert(context.Background(), owner, title, "img.jpg")
	require.NoError(t, err)
	return photo
}

func photoID(p *models.Photo) string {
	return strconv.FormatInt(p.ID, 10)
}

func TestInsert_SnapshotsOwnerName(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())

	photo := insertPhoto(t, svc, ana, "Sunset")

	assert.Equal(t, ana.ID, photo.UserID)
	assert.Equal(t, "Ana", photo.UserName)
	assert.Empty(t, photo.Likes)
	assert.Empty(t, photo.Comments)
}

func TestUpdateTitle_NonOwnerRejected(t *testing.T) {
	repo := newFakePhotoRepo()
	svc := NewPhotoService(repo)
	ctx := context.Background()

	photo := insertPhoto(t, svc, ana, "Sunset")

	_, err := svc.UpdateTitle(ctx, photoID(photo), bea, "Stolen")
	assert.ErrorIs(t, err, ErrNotOwner)

	// photo untouched
	stored, err := repo.GetByID(ctx, photoID(photo))
	require.NoError(t, err)
	assert.Equal(t, "Sunset", stored.Title)
}

func TestUpdateTitle_Owner(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())
	ctx := context.Background()

	photo := insertPhoto(t, svc, ana, "Sunset")

	updated, err := svc.UpdateTitle(ctx, photoID(photo), ana, "Sunrise")
	require.NoError(t, err)
	assert.Equal(t, "Sunrise", updated.Title)
}

func TestDelete_NonOwnerRejected(t *testing.T) {
	repo := newFakePhotoRepo()
	svc := NewPhotoService(repo)
	ctx := context.Background()

	photo := insertPhoto(t, svc, ana, "Sunset")

	_, err := svc.Delete(ctx, photoID(photo), bea)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = repo.GetByID(ctx, photoID(photo))
	assert.NoError(t, err, "photo must still exist")
}

func TestDelete_Owner(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())
	ctx := context.Background()

	photo := insertPhoto(t, svc, ana, "Sunset")

	id, err := svc.Delete(ctx, photoID(photo), ana)
	require.NoError(t, err)
	assert.Equal(t, photo.ID, id)

	_, err = svc.GetByID(ctx, photoID(photo))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLike_SecondLikeRejected(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())
	ctx := context.Background()

	photo := insertPhoto(t, svc, ana, "Sunset")

	liked, err := svc.Like(ctx, photoID(photo), bea)
	require.NoError(t, err)
	assert.Equal(t, []int64{bea.ID}, liked.Likes)

	_, err = svc.Like(ctx, photoID(photo), bea)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	stored, err := svc.GetByID(ctx, photoID(photo))
	require.NoError(t, err)
	assert.Equal(t, []int64{bea.ID}, stored.Likes, "likes unchanged after rejected like")
}

func TestLike_MissingPhoto(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())

	_, err := svc.Like(context.Background(), "999", bea)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestComment_AppendsWithoutDeduplication(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())
	ctx := context.Background()

	photo := insertPhoto(t, svc, ana, "Sunset")

	for i := 0; i < 3; i++ {
		comment, err := svc.Comment(ctx, photoID(photo), bea, "nice!")
		require.NoError(t, err)
		assert.Equal(t, "nice!", comment.Text)
		assert.Equal(t, "Bea", comment.UserName)
		assert.Equal(t, "bea.jpg", comment.UserImage)
	}

	stored, err := svc.GetByID(ctx, photoID(photo))
	require.NoError(t, err)
	assert.Len(t, stored.Comments, 3)
}

func TestComment_SnapshotNotLive(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())
	ctx := context.Background()

	photo := insertPhoto(t, svc, ana, "Sunset")

	commenter := &models.User{ID: 3, Name: "Old Name", ProfileImage: "old.jpg"}
	_, err := svc.Comment(ctx, photoID(photo), commenter, "hey")
	require.NoError(t, err)

	// renaming the commenter afterwards must not rewrite the stored snapshot
	commenter.Name = "New Name"

	stored, err := svc.GetByID(ctx, photoID(photo))
	require.NoError(t, err)
	require.Len(t, stored.Comments, 1)
	assert.Equal(t, "Old Name", stored.Comments[0].UserName)
	assert.Equal(t, "old.jpg", stored.Comments[0].UserImage)
}

func TestGetUserPhotos_EmptyForPhotolessUser(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())

	photos, err := svc.GetUserPhotos(context.Background(), "7")
	require.NoError(t, err)
	assert.Empty(t, photos)
	assert.NotNil(t, photos)
}

func TestGetUserPhotos_FiltersByOwner(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())

	insertPhoto(t, svc, ana, "Sunset")
	insertPhoto(t, svc, bea, "Beach")
	insertPhoto(t, svc, ana, "Forest")

	photos, err := svc.GetUserPhotos(context.Background(), strconv.FormatInt(ana.ID, 10))
	require.NoError(t, err)
	require.Len(t, photos, 2)
	for _, p := range photos {
		assert.Equal(t, ana.ID, p.UserID)
	}
}

func TestGetAll_NewestFirst(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())

	for i := 0; i < 3; i++ {
		insertPhoto(t, svc, ana, fmt.Sprintf("photo %d", i))
	}

	photos, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, "photo 2", photos[0].Title)
	assert.Equal(t, "photo 0", photos[2].Title)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())
	ctx := context.Background()

	insertPhoto(t, svc, ana, "Sunset at the beach")
	insertPhoto(t, svc, ana, "SUNRISE")
	insertPhoto(t, svc, bea, "Forest")

	photos, err := svc.Search(ctx, "sun")
	require.NoError(t, err)
	assert.Len(t, photos, 2)

	photos, err = svc.Search(ctx, "BEACH")
	require.NoError(t, err)
	assert.Len(t, photos, 1)

	photos, err = svc.Search(ctx, "mountain")
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestGetByID_MalformedID(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo())

	_, err := svc.GetByID(context.Background(), "zzz")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
