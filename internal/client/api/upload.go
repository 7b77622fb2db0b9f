package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
)

// UploadFile is one part of a multipart upload.
type UploadFile struct {
	Field    string // form field name; defaults to "file"
	Name     string // file name reported to the server
	Content  []byte
	MimeType string
}

// Upload sends files plus optional string fields as multipart/form-data
// through the same pipeline (bearer injection, 401 recovery, transient
// retries). Uploads are never deduplicated or cached.
func (c *Client) Upload(ctx context.Context, path string, files []UploadFile, fields map[string]string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return &Error{Kind: KindValidation, Message: "building multipart body failed", cause: err}
		}
	}
	for _, f := range files {
		field := f.Field
		if field == "" {
			field = "file"
		}
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return &Error{Kind: KindValidation, Message: "building multipart body failed", cause: err}
		}
		if _, err := part.Write(f.Content); err != nil {
			return &Error{Kind: KindValidation, Message: "building multipart body failed", cause: err}
		}
	}
	if err := w.Close(); err != nil {
		return &Error{Kind: KindValidation, Message: "building multipart body failed", cause: err}
	}

	raw, err := c.execute(ctx, call{
		method:      http.MethodPost,
		path:        path,
		rawBody:     buf.Bytes(),
		contentType: w.FormDataContentType(),
	})
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindServer, Message: "malformed response body", cause: err}
	}
	return nil
}
