package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/avolkhin/shopadmin/internal/models"
)

const (
	uploadImagePath  = "/api/admin/uploads/image"
	uploadImagesPath = "/api/admin/uploads/images"
)

// File is one binary payload for an upload operation.
type File struct {
	Name   string
	Reader io.Reader
}

// formPayload is a fully encoded multipart body. The content type
// carries the boundary chosen by the multipart writer.
type formPayload struct {
	buf         *bytes.Buffer
	contentType string
}

func encodeMultipart(field string, files []File) (*formPayload, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &formPayload{buf: buf, contentType: w.FormDataContentType()}, nil
}

// UploadImage uploads a single file and returns its image record.
func (c *Client) UploadImage(ctx context.Context, name string, r io.Reader) (models.Image, error) {
	form, err := encodeMultipart("image", []File{{Name: name, Reader: r}})
	if err != nil {
		return models.Image{}, &Error{Message: "failed to encode upload", cause: err}
	}
	return call[models.Image](ctx, c, request{
		method: http.MethodPost,
		path:   uploadImagePath,
		form:   form,
	})
}

// UploadImages uploads several files in one request and returns the
// created records plus their URLs.
func (c *Client) UploadImages(ctx context.Context, files []File) (models.ImageBatch, error) {
	form, err := encodeMultipart("images", files)
	if err != nil {
		return models.ImageBatch{}, &Error{Message: "failed to encode upload", cause: err}
	}
	return call[models.ImageBatch](ctx, c, request{
		method: http.MethodPost,
		path:   uploadImagesPath,
		form:   form,
	})
}

// DeleteImage removes an uploaded image. Identifiers may contain
// characters unsafe in a path, so the id is encoded as one segment.
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   uploadImagesPath + "/" + url.PathEscape(id),
	})
	return err
}
