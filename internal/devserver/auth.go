package devserver

import (
	"encoding/json"
	"net/http"

	"github.com/avolkhin/shopadmin/internal/middleware"
	"github.com/avolkhin/shopadmin/internal/models"
)

// Handler serves the admin API endpoints against a Store.
type Handler struct {
	// Store is the in-memory dataset.
	Store *Store
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles credential exchange. It expects a JSON body with
// non-empty "email" and "password" fields and responds with the issued
// token and the user identity.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var errs []fieldError
	if req.Email == "" {
		errs = append(errs, fieldError{Path: []string{"email"}, Message: "required"})
	}
	if req.Password == "" {
		errs = append(errs, fieldError{Path: []string{"password"}, Message: "required"})
	}
	if len(errs) > 0 {
		writeFieldErrors(w, http.StatusBadRequest, "validation failed", errs)
		return
	}

	token, ok := h.Store.Authenticate(req.Email, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	writeData(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  models.Identity{ID: req.Email, Email: req.Email, Role: "admin"},
	})
}

// Me returns the identity bound to the presented token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	writeData(w, http.StatusOK, models.Identity{ID: email, Email: email, Role: "admin"})
}
