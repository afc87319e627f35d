//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type clothingMocks struct {
	upload   *MockClothingUploadService
	metadata *MockClothingMetadataService
	photo    *MockClothingPhotoService
}

func newTestClothingHandler(t *testing.T) (ClothingHandler, *clothingMocks) {
	return newTestClothingHandlerWithLimit(t, 0)
}

func newTestClothingHandlerWithLimit(t *testing.T, maxUploadBytes int64) (ClothingHandler, *clothingMocks) {
	m := &clothingMocks{
		upload:   new(MockClothingUploadService),
		metadata: new(MockClothingMetadataService),
		photo:    new(MockClothingPhotoService),
	}
	return NewClothingHandler(m.upload, m.metadata, m.photo, maxUploadBytes, testutil.SetupTestLogger(t)), m
}

func testItem(id string) *clothing.ClothingItem {
	color := "navy"
	return &clothing.ClothingItem{
		ID:        id,
		UserID:    testUserID,
		PhotoURL:  testUserID + "/photo.png",
		ItemType:  "jacket",
		Color:     &color,
		StyleTags: []string{"casual"},
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestClothingHandler_Upload_Success(t *testing.T) {
	handler, m := newTestClothingHandler(t)

	m.upload.On("Upload", mock.Anything, testUserID,
		mock.MatchedBy(func(in *clothing.ClothingItemInput) bool {
			return in.ItemType == "jacket" && in.Color == "navy" && in.StyleTags == `["casual"]` && in.Season == ""
		}),
		mock.MatchedBy(func(fh *multipart.FileHeader) bool { return fh != nil && fh.Filename == "jacket.png" }),
	).Return(testItem("item-1"), nil)

	body, contentType := testutil.CreatePhotoRequestBody(t, map[string]string{
		"item_type":  "jacket",
		"color":      "navy",
		"style_tags": `["casual"]`,
	}, "jacket.png", testutil.PNGBytes(t))

	c, w := newTestContext(t, http.MethodPost, "/api/clothing", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var item clothing.ClothingItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "jacket", item.ItemType)
	m.upload.AssertExpectations(t)
}

func TestClothingHandler_Upload_BodyTooLarge(t *testing.T) {
	const limit = 1024
	oversized := bytes.Repeat([]byte{0x89}, int(limit+multipartOverhead+1))

	t.Run("declared length over the limit", func(t *testing.T) {
		handler, m := newTestClothingHandlerWithLimit(t, limit)
		body, contentType := testutil.CreatePhotoRequestBody(t, map[string]string{"item_type": "coat"}, "coat.png", oversized)

		c, w := newTestContext(t, http.MethodPost, "/api/clothing", body)
		c.Request.Header.Set("Content-Type", contentType)

		handler.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"error": %q}`, msgPhotoTooLarge), w.Body.String())
		m.upload.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("streamed body without length", func(t *testing.T) {
		handler, m := newTestClothingHandlerWithLimit(t, limit)
		body, contentType := testutil.CreatePhotoRequestBody(t, map[string]string{"item_type": "coat"}, "coat.png", oversized)

		c, w := newTestContext(t, http.MethodPost, "/api/clothing", io.NopCloser(body))
		c.Request.ContentLength = -1
		c.Request.Header.Set("Content-Type", contentType)

		handler.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"error": %q}`, msgPhotoTooLarge), w.Body.String())
		m.upload.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClothingHandler_Upload_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"missing photo", clothing.ErrPhotoRequired, http.StatusBadRequest, "Photo file is required"},
		{"too large", clothing.ErrPhotoTooLarge, http.StatusBadRequest, "File too large. Maximum 5MB."},
		{"bad type", fmt.Errorf("%w: text/plain", clothing.ErrInvalidPhotoType), http.StatusBadRequest, "Invalid file type. Allowed: jpeg, png, webp, gif"},
		{"no item type", clothing.ErrItemTypeRequired, http.StatusBadRequest, "item_type is required"},
		{"storage", fmt.Errorf("%w: boom", clothing.ErrPhotoStorage), http.StatusInternalServerError, "Failed to upload photo"},
		{"database", fmt.Errorf("%w: boom", clothing.ErrPersistence), http.StatusInternalServerError, "Failed to save clothing item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newTestClothingHandler(t)
			m.upload.On("Upload", mock.Anything, testUserID, mock.Anything, mock.Anything).Return(nil, tt.err)

			body, contentType := testutil.CreatePhotoRequestBody(t, map[string]string{"item_type": "shirt"}, "", nil)
			c, w := newTestContext(t, http.MethodPost, "/api/clothing", body)
			c.Request.Header.Set("Content-Type", contentType)

			handler.Upload(c)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.message), w.Body.String())
		})
	}
}

func TestClothingHandler_Upload_NoPhotoPassesNil(t *testing.T) {
	handler, m := newTestClothingHandler(t)
	m.upload.On("Upload", mock.Anything, testUserID, mock.Anything, (*multipart.FileHeader)(nil)).
		Return(nil, clothing.ErrPhotoRequired)

	body, contentType := testutil.CreatePhotoRequestBody(t, map[string]string{"item_type": "shirt"}, "", nil)
	c, w := newTestContext(t, http.MethodPost, "/api/clothing", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.upload.AssertExpectations(t)
}

func TestClothingHandler_List_Success(t *testing.T) {
	handler, m := newTestClothingHandler(t)

	m.metadata.On("List", mock.Anything, testUserID, mock.MatchedBy(func(q *clothing.ClothingItemQuery) bool {
		return q.ItemType == "jacket" && q.Season == "winter" && q.Limit == 10 && q.Offset == 5
	})).Return([]*clothing.ClothingItem{testItem("item-1"), testItem("item-2")}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/clothing?item_type=jacket&season=winter&limit=10&offset=5", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var items []clothing.ClothingItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	m.metadata.AssertExpectations(t)
}

func TestClothingHandler_List_EmptyIsArray(t *testing.T) {
	handler, m := newTestClothingHandler(t)
	m.metadata.On("List", mock.Anything, testUserID, mock.Anything).Return(nil, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/clothing", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestClothingHandler_List_InvalidPaging(t *testing.T) {
	handler, m := newTestClothingHandler(t)

	for _, target := range []string{"/api/clothing?limit=abc", "/api/clothing?limit=501", "/api/clothing?offset=-3"} {
		c, w := newTestContext(t, http.MethodGet, target, nil)
		handler.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "validation failed")
	}
	m.metadata.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestClothingHandler_List_Failure(t *testing.T) {
	handler, m := newTestClothingHandler(t)
	m.metadata.On("List", mock.Anything, testUserID, mock.Anything).Return(nil, errors.New("db down"))

	c, w := newTestContext(t, http.MethodGet, "/api/clothing", nil)
	handler.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch clothing items"}`, w.Body.String())
}

func TestClothingHandler_GetByID(t *testing.T) {
	handler, m := newTestClothingHandler(t)
	m.metadata.On("GetByID", mock.Anything, testUserID, "item-1").Return(testItem("item-1"), nil)
	m.metadata.On("GetByID", mock.Anything, testUserID, "missing").Return(nil, fmt.Errorf("lookup: %w", clothing.ErrItemNotFound))

	c, w := newTestContext(t, http.MethodGet, "/api/clothing/item-1", nil)
	c.AddParam("id", "item-1")
	handler.GetByID(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "item-1")

	c, w = newTestContext(t, http.MethodGet, "/api/clothing/missing", nil)
	c.AddParam("id", "missing")
	handler.GetByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Clothing item not found"}`, w.Body.String())
}

func TestClothingHandler_DownloadPhotoByID(t *testing.T) {
	handler, m := newTestClothingHandler(t)
	png := testutil.PNGBytes(t)
	m.photo.On("DownloadByID", mock.Anything, testUserID, "item-1").
		Return(&clothing.Photo{Name: "photo.png", ContentType: "image/png", Data: png}, nil)
	m.photo.On("DownloadByID", mock.Anything, testUserID, "gone").
		Return(nil, clothing.ErrPhotoNotFound)

	c, w := newTestContext(t, http.MethodGet, "/api/clothing/item-1/photo", nil)
	c.AddParam("id", "item-1")
	handler.DownloadPhotoByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, png, w.Body.Bytes())

	c, w = newTestContext(t, http.MethodGet, "/api/clothing/gone/photo", nil)
	c.AddParam("id", "gone")
	handler.DownloadPhotoByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClothingHandler_DeleteByID(t *testing.T) {
	handler, m := newTestClothingHandler(t)
	m.metadata.On("DeleteByID", mock.Anything, testUserID, "item-1").Return(nil)
	m.metadata.On("DeleteByID", mock.Anything, testUserID, "other").Return(clothing.ErrItemNotFound)
	m.metadata.On("DeleteByID", mock.Anything, testUserID, "broken").Return(errors.New("db down"))

	c, w := newTestContext(t, http.MethodDelete, "/api/clothing/item-1", nil)
	c.AddParam("id", "item-1")
	handler.DeleteByID(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	c, w = newTestContext(t, http.MethodDelete, "/api/clothing/other", nil)
	c.AddParam("id", "other")
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newTestContext(t, http.MethodDelete, "/api/clothing/broken", nil)
	c.AddParam("id", "broken")
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to delete clothing item"}`, w.Body.String())
}
