package devserver

import (
	"io"
	"net/http"

	"github.com/avolkhin/shopadmin/internal/models"
)

// maxUploadBytes caps in-memory multipart parsing.
const maxUploadBytes = 32 << 20

// UploadImage handles POST /api/admin/uploads/image: a single file
// under the "image" form field, answered with one image record.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeFieldErrors(w, http.StatusBadRequest, "validation failed", []fieldError{
			{Path: []string{"image"}, Message: "required"},
		})
		return
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable file")
		return
	}
	img := h.Store.AddImage(header.Filename, header.Header.Get("Content-Type"), size)
	writeData(w, http.StatusCreated, img)
}

// UploadImages handles POST /api/admin/uploads/images: several files
// under the "images" form field, answered with the records plus a
// parallel list of URLs.
func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		writeFieldErrors(w, http.StatusBadRequest, "validation failed", []fieldError{
			{Path: []string{"images"}, Message: "required"},
		})
		return
	}

	batch := models.ImageBatch{
		Images: make([]models.Image, 0, len(headers)),
		URLs:   make([]string, 0, len(headers)),
	}
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable file")
			return
		}
		size, err := io.Copy(io.Discard, f)
		_ = f.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable file")
			return
		}
		img := h.Store.AddImage(header.Filename, header.Header.Get("Content-Type"), size)
		batch.Images = append(batch.Images, img)
		batch.URLs = append(batch.URLs, img.URL)
	}
	writeData(w, http.StatusCreated, batch)
}

// DeleteImage handles DELETE /api/admin/uploads/images/{id}.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteImage(pathParam(r, "id")) {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	writeMessage(w, http.StatusOK, "image deleted")
}
