// Package netx contains HTTP body helpers for the REST transport.
package netx

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// FormField is one text part of a multipart form, kept in submission order.
type FormField struct {
	Name  string
	Value string
}

// FormFile is the optional file part of a multipart form.
type FormFile struct {
	Field    string
	FileName string
	Content  io.Reader
}

// MultipartBody encodes fields and an optional file into a multipart/form-data
// body and returns it with the matching Content-Type header value.
func MultipartBody(fields []FormField, file *FormFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	for _, f := range fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	if file != nil && file.Content != nil {
		part, err := mw.CreateFormFile(file.Field, file.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("copy file part %s: %w", file.Field, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return body, mw.FormDataContentType(), nil
}
