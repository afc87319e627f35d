// Package httputil builds multipart photo uploads for clients and tests.
package httputil

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"sort"
)

// PhotoField is the multipart field a clothing photo is sent in
const PhotoField = "photo"

// NewMultipartBody encodes fields and an optional file into a multipart body.
// It returns the body and the Content-Type header value including the boundary.
func NewMultipartBody(fields map[string]string, fileField, fileName string, content []byte) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	// stable field order keeps request bodies reproducible
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := writer.WriteField(k, fields[k]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", k, err)
		}
	}

	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(content); err != nil {
			return nil, "", fmt.Errorf("failed to write file content: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

// CreateForm builds a parsed multipart form holding a single file plus text fields
func CreateForm(fields map[string]string, fileField, fileName string, content []byte) (*multipart.Form, error) {
	body, contentType, err := NewMultipartBody(fields, fileField, fileName, content)
	if err != nil {
		return nil, err
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content type: %w", err)
	}

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	if err != nil {
		return nil, fmt.Errorf("failed to read form: %w", err)
	}

	// ReadForm leaves Size unset for in-memory parts on some Go versions
	for _, fh := range form.File[fileField] {
		if fh.Size == 0 {
			fh.Size = int64(len(content))
		}
	}
	return form, nil
}
