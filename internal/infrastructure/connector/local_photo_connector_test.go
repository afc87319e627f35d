//go:build unit
// +build unit

package connector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalConnector(t *testing.T) (*LocalPhotoConnector, string) {
	t.Helper()
	root := t.TempDir()
	c, err := NewLocalPhotoConnector(&config.PhotoStorageSettings{
		Provider:       config.LocalStorageProvider,
		LocalPath:      root,
		MaxUploadBytes: 1024,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return c, root
}

func TestLocalPhotoConnector_UploadDownloadDelete(t *testing.T) {
	c, root := newLocalConnector(t)
	ctx := context.Background()
	png := testutil.PNGBytes(t)

	require.NoError(t, c.Upload(ctx, "user-1/photo.png", png, "image/png"))
	_, err := os.Stat(filepath.Join(root, "user-1", "photo.png"))
	require.NoError(t, err)

	photo, err := c.Download(ctx, "user-1/photo.png")
	require.NoError(t, err)
	assert.Equal(t, "photo.png", photo.Name)
	assert.Equal(t, "image/png", photo.ContentType)
	assert.Equal(t, png, photo.Data)

	require.NoError(t, c.Delete(ctx, "user-1/photo.png"))

	_, err = c.Download(ctx, "user-1/photo.png")
	assert.ErrorIs(t, err, clothing.ErrPhotoNotFound)
	assert.ErrorIs(t, c.Delete(ctx, "user-1/photo.png"), clothing.ErrPhotoNotFound)
}

func TestLocalPhotoConnector_DoesNotOverwrite(t *testing.T) {
	c, _ := newLocalConnector(t)
	ctx := context.Background()

	require.NoError(t, c.Upload(ctx, "user-1/a.png", []byte("first"), "image/png"))
	assert.Error(t, c.Upload(ctx, "user-1/a.png", []byte("second"), "image/png"))

	photo, err := c.Download(ctx, "user-1/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), photo.Data)
}

func TestLocalPhotoConnector_RejectsTraversal(t *testing.T) {
	c, _ := newLocalConnector(t)
	ctx := context.Background()

	for _, p := range []string{"../escape.png", "user-1/../../escape.png", "/abs.png", ""} {
		assert.Error(t, c.Upload(ctx, p, []byte("x"), "image/png"), p)
	}
}

func TestNewPhotoConnector_Local(t *testing.T) {
	conn, err := NewPhotoConnector(context.Background(), &config.PhotoStorageSettings{
		Provider:       config.LocalStorageProvider,
		LocalPath:      t.TempDir(),
		MaxUploadBytes: 1024,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	assert.IsType(t, &LocalPhotoConnector{}, conn)
}

func TestNewPhotoConnector_InvalidSettings(t *testing.T) {
	_, err := NewPhotoConnector(context.Background(), &config.PhotoStorageSettings{
		Provider:       config.AzureStorageProvider,
		MaxUploadBytes: 1024,
	}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
