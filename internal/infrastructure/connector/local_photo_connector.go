package connector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
)

// LocalPhotoConnector stores photos below a root directory, one subdirectory per user
type LocalPhotoConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalPhotoConnector creates the root directory if needed
func NewLocalPhotoConnector(settings *config.PhotoStorageSettings, logger logger.Logger) (*LocalPhotoConnector, error) {
	root, err := filepath.Abs(settings.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photo directory: %w", err)
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create photo directory '%s': %w", root, err)
	}
	return &LocalPhotoConnector{root: root, logger: logger}, nil
}

// resolve maps a storage path onto the filesystem and rejects anything escaping the root
func (c *LocalPhotoConnector) resolve(photoPath string) (string, error) {
	cleaned := strings.TrimPrefix(path.Clean("/"+photoPath), "/")
	if cleaned == "" || cleaned != photoPath {
		return "", fmt.Errorf("invalid photo path '%s'", photoPath)
	}
	return filepath.Join(c.root, filepath.FromSlash(cleaned)), nil
}

// Upload writes data to a new file. Existing files are never overwritten.
func (c *LocalPhotoConnector) Upload(_ context.Context, photoPath string, data []byte, _ string) error {
	target, err := c.resolve(photoPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", photoPath, err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create photo '%s': %w", photoPath, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return fmt.Errorf("failed to write photo '%s': %w", photoPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close photo '%s': %w", photoPath, err)
	}

	c.logger.Info("photo stored", "path", photoPath, "size", len(data))
	return nil
}

// Download reads a stored photo and sniffs its content type
func (c *LocalPhotoConnector) Download(_ context.Context, photoPath string) (*clothing.Photo, error) {
	target, err := c.resolve(photoPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", clothing.ErrPhotoNotFound, photoPath)
		}
		return nil, fmt.Errorf("failed to read photo '%s': %w", photoPath, err)
	}

	return &clothing.Photo{
		Name:        path.Base(photoPath),
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}, nil
}

// Delete removes a stored photo
func (c *LocalPhotoConnector) Delete(_ context.Context, photoPath string) error {
	target, err := c.resolve(photoPath)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", clothing.ErrPhotoNotFound, photoPath)
		}
		return fmt.Errorf("failed to delete photo '%s': %w", photoPath, err)
	}

	c.logger.Info("photo deleted", "path", photoPath)
	return nil
}
