package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/httputil"
	"github.com/stretchr/testify/require"
)

// CreatePhotoFileHeader creates a parsed photo upload as a handler would receive it
func CreatePhotoFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	form, err := httputil.CreateForm(nil, httputil.PhotoField, fileName, content)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = form.RemoveAll()
	})

	headers := form.File[httputil.PhotoField]
	require.Len(t, headers, 1)
	return headers[0]
}

// CreatePhotoRequestBody encodes a clothing upload request. An empty fileName omits the photo.
func CreatePhotoRequestBody(t *testing.T, fields map[string]string, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	fileField := ""
	if fileName != "" {
		fileField = httputil.PhotoField
	}
	body, contentType, err := httputil.NewMultipartBody(fields, fileField, fileName, content)
	require.NoError(t, err)
	return body, contentType
}
