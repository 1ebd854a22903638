package devserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avolkhin/shopadmin/internal/models"
)

// ListProducts handles GET /api/admin/products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	list := h.Store.ListProducts(q.Get("status"), q.Get("search"), q.Get("sort"), page, limit)
	writeData(w, http.StatusOK, list)
}

// GetProduct handles GET /api/admin/products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Store.GetProduct(pathParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeData(w, http.StatusOK, p)
}

// CreateProduct handles POST /api/admin/products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	in, errs, ok := readProductInput(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(errs) > 0 {
		writeFieldErrors(w, http.StatusBadRequest, "validation failed", errs)
		return
	}
	writeData(w, http.StatusCreated, h.Store.CreateProduct(in))
}

// UpdateProduct handles PUT /api/admin/products/{id}.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	in, errs, ok := readProductInput(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(errs) > 0 {
		writeFieldErrors(w, http.StatusBadRequest, "validation failed", errs)
		return
	}
	p, found := h.Store.UpdateProduct(pathParam(r, "id"), in)
	if !found {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeData(w, http.StatusOK, p)
}

// DeleteProduct handles DELETE /api/admin/products/{id}.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteProduct(pathParam(r, "id")) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeMessage(w, http.StatusOK, "product deleted")
}

func readProductInput(r *http.Request) (models.ProductInput, []fieldError, bool) {
	var in models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, nil, false
	}
	var errs []fieldError
	if in.Name == "" {
		errs = append(errs, fieldError{Path: []string{"name"}, Message: "required"})
	}
	if in.PriceCents < 0 {
		errs = append(errs, fieldError{Path: []string{"priceCents"}, Message: "must not be negative"})
	}
	if in.Stock < 0 {
		errs = append(errs, fieldError{Path: []string{"stock"}, Message: "must not be negative"})
	}
	return in, errs, true
}

// pathParam returns the named chi route parameter, percent-decoded.
// chi leaves the raw escaping in place when the request path carries
// encoded separators.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}
