package connector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/gabriel-vasile/mimetype"
)

// AzurePhotoConnector stores photos as block blobs in a single container
type AzurePhotoConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzurePhotoConnector creates the connector and ensures the container exists
func NewAzurePhotoConnector(ctx context.Context, settings *config.PhotoStorageSettings, logger logger.Logger) (*AzurePhotoConnector, error) {
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container '%s': %w", settings.ContainerName, err)
	}

	return &AzurePhotoConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Upload stores data as a block blob with its content type
func (c *AzurePhotoConnector) Upload(ctx context.Context, photoPath string, data []byte, contentType string) error {
	_, err := c.client.UploadBuffer(ctx, c.containerName, photoPath, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload blob '%s': %w", photoPath, err)
	}

	c.logger.Info("photo uploaded", "container", c.containerName, "path", photoPath, "size", len(data))
	return nil
}

// Download reads a blob. A missing blob yields clothing.ErrPhotoNotFound.
func (c *AzurePhotoConnector) Download(ctx context.Context, photoPath string) (*clothing.Photo, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, photoPath, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, fmt.Errorf("%w: %s", clothing.ErrPhotoNotFound, photoPath)
		}
		return nil, fmt.Errorf("failed to download blob '%s': %w", photoPath, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("failed to close blob stream", "path", photoPath, "error", err)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read blob '%s': %w", photoPath, err)
	}

	contentType := ""
	if resp.ContentType != nil {
		contentType = *resp.ContentType
	}
	if contentType == "" {
		contentType = mimetype.Detect(buf.Bytes()).String()
	}

	return &clothing.Photo{
		Name:        path.Base(photoPath),
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}

// Delete removes a blob. A missing blob yields clothing.ErrPhotoNotFound.
func (c *AzurePhotoConnector) Delete(ctx context.Context, photoPath string) error {
	_, err := c.client.DeleteBlob(ctx, c.containerName, photoPath, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return fmt.Errorf("%w: %s", clothing.ErrPhotoNotFound, photoPath)
		}
		return fmt.Errorf("failed to delete blob '%s': %w", photoPath, err)
	}

	c.logger.Info("photo deleted", "container", c.containerName, "path", photoPath)
	return nil
}
