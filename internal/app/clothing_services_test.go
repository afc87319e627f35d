//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "0b6f1f0e-6a52-4c1f-9c56-3a1f2e8d7b11"

func newUploadService(t *testing.T, maxBytes int64) (clothing.ClothingUploadService, *MockPhotoConnector, *MockClothingItemRepository) {
	t.Helper()
	connector := new(MockPhotoConnector)
	repo := new(MockClothingItemRepository)
	svc, err := NewClothingUploadService(connector, repo, maxBytes, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc, connector, repo
}

func TestClothingUploadService_Upload(t *testing.T) {
	ctx := context.Background()
	png := testutil.PNGBytes(t)

	t.Run("stores photo and item", func(t *testing.T) {
		svc, connector, repo := newUploadService(t, 0)
		photo := testutil.CreatePhotoFileHeader(t, "Jacket.PNG", png)

		connector.On("Upload", ctx, mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, testUserID+"/") && strings.HasSuffix(p, ".png")
		}), png, "image/png").Return(nil)
		repo.On("Create", ctx, mock.AnythingOfType("*clothing.ClothingItem")).Return(nil)

		item, err := svc.Upload(ctx, testUserID, &clothing.ClothingItemInput{
			ItemType:  " jacket ",
			Color:     "navy",
			StyleTags: `["casual", "layered"]`,
		}, photo)
		require.NoError(t, err)

		assert.Equal(t, testUserID, item.UserID)
		assert.Equal(t, "jacket", item.ItemType)
		assert.Equal(t, "navy", *item.Color)
		assert.Nil(t, item.Season)
		assert.Equal(t, []string{"casual", "layered"}, item.StyleTags)
		_, err = uuid.Parse(item.ID)
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now(), item.CreatedAt, time.Minute)

		connector.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("default extension", func(t *testing.T) {
		svc, connector, repo := newUploadService(t, 0)
		photo := testutil.CreatePhotoFileHeader(t, "camera-upload", testutil.JPEGBytes(t))

		connector.On("Upload", ctx, mock.MatchedBy(func(p string) bool {
			return strings.HasSuffix(p, ".jpg")
		}), mock.Anything, "image/jpeg").Return(nil)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		_, err := svc.Upload(ctx, testUserID, &clothing.ClothingItemInput{ItemType: "shirt"}, photo)
		require.NoError(t, err)
		connector.AssertExpectations(t)
	})

	t.Run("missing photo", func(t *testing.T) {
		svc, _, _ := newUploadService(t, 0)
		_, err := svc.Upload(ctx, testUserID, &clothing.ClothingItemInput{ItemType: "shirt"}, nil)
		assert.ErrorIs(t, err, clothing.ErrPhotoRequired)
	})

	t.Run("photo too large", func(t *testing.T) {
		svc, connector, _ := newUploadService(t, 16)
		photo := testutil.CreatePhotoFileHeader(t, "big.png", png)

		_, err := svc.Upload(ctx, testUserID, &clothing.ClothingItemInput{ItemType: "shirt"}, photo)
		assert.ErrorIs(t, err, clothing.ErrPhotoTooLarge)
		connector.AssertNotCalled(t, "Upload")
	})

	t.Run("content that is not an image", func(t *testing.T) {
		svc, connector, _ := newUploadService(t, 0)
		photo := testutil.CreatePhotoFileHeader(t, "fake.png", []byte("just some text pretending"))

		_, err := svc.Upload(ctx, testUserID, &clothing.ClothingItemInput{ItemType: "shirt"}, photo)
		assert.ErrorIs(t, err, clothing.ErrInvalidPhotoType)
		connector.AssertNotCalled(t, "Upload")
	})

	t.Run("missing item type", func(t *testing.T) {
		svc, connector, _ := newUploadService(t, 0)
		photo := testutil.CreatePhotoFileHeader(t, "a.gif", testutil.GIFBytes(t))

		_, err := svc.Upload(ctx, testUserID, &clothing.ClothingItemInput{ItemType: "  "}, photo)
		assert.ErrorIs(t, err, clothing.ErrItemTypeRequired)
		connector.AssertNotCalled(t, "Upload")
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, connector, repo := newUploadService(t, 0)
		photo := testutil.CreatePhotoFileHeader(t, "a.png", png)

		connector.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("boom"))

		_, err := svc.Upload(ctx, testUserID, &clothing.ClothingItemInput{ItemType: "shirt"}, photo)
		assert.ErrorIs(t, err, clothing.ErrPhotoStorage)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("persistence failure removes the photo", func(t *testing.T) {
		svc, connector, repo := newUploadService(t, 0)
		photo := testutil.CreatePhotoFileHeader(t, "a.png", png)

		var storedPath string
		connector.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { storedPath = args.String(1) }).
			Return(nil)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))
		connector.On("Delete", ctx, mock.Anything).Return(nil)

		_, err := svc.Upload(ctx, testUserID, &clothing.ClothingItemInput{ItemType: "shirt"}, photo)
		assert.ErrorIs(t, err, clothing.ErrPersistence)
		connector.AssertCalled(t, "Delete", ctx, storedPath)
	})
}

func TestClothingMetadataService(t *testing.T) {
	ctx := context.Background()
	item := &clothing.ClothingItem{ID: uuid.NewString(), UserID: testUserID, PhotoURL: testUserID + "/p.png", ItemType: "jeans"}

	t.Run("list defaults the query", func(t *testing.T) {
		repo := new(MockClothingItemRepository)
		svc, err := NewClothingMetadataService(repo, new(MockPhotoConnector), testutil.SetupTestLogger(t))
		require.NoError(t, err)

		repo.On("List", ctx, testUserID, clothing.NewClothingItemQuery()).Return([]*clothing.ClothingItem{item}, nil)

		items, err := svc.List(ctx, testUserID, nil)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("get not found", func(t *testing.T) {
		repo := new(MockClothingItemRepository)
		svc, _ := NewClothingMetadataService(repo, new(MockPhotoConnector), testutil.SetupTestLogger(t))

		repo.On("GetByID", ctx, testUserID, "missing").Return(nil, clothing.ErrItemNotFound)

		_, err := svc.GetByID(ctx, testUserID, "missing")
		assert.ErrorIs(t, err, clothing.ErrItemNotFound)
	})

	t.Run("delete ignores photo removal failure", func(t *testing.T) {
		repo := new(MockClothingItemRepository)
		connector := new(MockPhotoConnector)
		svc, _ := NewClothingMetadataService(repo, connector, testutil.SetupTestLogger(t))

		repo.On("GetByID", ctx, testUserID, item.ID).Return(item, nil)
		connector.On("Delete", ctx, item.PhotoURL).Return(errors.New("gone"))
		repo.On("DeleteByID", ctx, testUserID, item.ID).Return(nil)

		require.NoError(t, svc.DeleteByID(ctx, testUserID, item.ID))
		repo.AssertExpectations(t)
		connector.AssertExpectations(t)
	})

	t.Run("delete not owned", func(t *testing.T) {
		repo := new(MockClothingItemRepository)
		connector := new(MockPhotoConnector)
		svc, _ := NewClothingMetadataService(repo, connector, testutil.SetupTestLogger(t))

		repo.On("GetByID", ctx, testUserID, item.ID).Return(nil, clothing.ErrItemNotFound)

		err := svc.DeleteByID(ctx, testUserID, item.ID)
		assert.ErrorIs(t, err, clothing.ErrItemNotFound)
		connector.AssertNotCalled(t, "Delete")
	})
}

func TestClothingPhotoService_DownloadByID(t *testing.T) {
	ctx := context.Background()
	item := &clothing.ClothingItem{ID: uuid.NewString(), UserID: testUserID, PhotoURL: testUserID + "/p.png"}

	repo := new(MockClothingItemRepository)
	connector := new(MockPhotoConnector)
	svc, err := NewClothingPhotoService(repo, connector, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("GetByID", ctx, testUserID, item.ID).Return(item, nil)
	connector.On("Download", ctx, item.PhotoURL).Return(&clothing.Photo{Name: "p.png", ContentType: "image/png", Data: []byte{1}}, nil).Once()

	photo, err := svc.DownloadByID(ctx, testUserID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", photo.ContentType)

	connector.On("Download", ctx, item.PhotoURL).Return(nil, clothing.ErrPhotoNotFound).Once()
	_, err = svc.DownloadByID(ctx, testUserID, item.ID)
	assert.ErrorIs(t, err, clothing.ErrPhotoNotFound)
}
