package devserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/avolkhin/shopadmin/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the admin API contract.
//
// Routes (all rooted under /api/admin):
//
//	POST   /auth/login                → Login (public)
//	GET    /auth/me                   → Me
//	GET    /products                  → ListProducts
//	POST   /products                  → CreateProduct
//	GET    /products/{id}             → GetProduct
//	PUT    /products/{id}             → UpdateProduct
//	DELETE /products/{id}             → DeleteProduct
//	GET    /orders                    → ListOrders
//	GET    /orders/{id}               → GetOrder
//	PUT    /orders/{id}/status        → UpdateOrderStatus
//	POST   /uploads/image             → UploadImage
//	POST   /uploads/images            → UploadImages
//	DELETE /uploads/images/{id}       → DeleteImage
//	GET    /stats/overview            → StatsOverview
//
// Everything except login sits behind bearer-token authentication.
func NewRouter(store *Store, logger *zap.Logger) http.Handler {
	h := &Handler{Store: store}

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api/admin", func(r chi.Router) {
		// Public endpoint
		r.Post("/auth/login", h.Login)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(store))

			r.Get("/auth/me", h.Me)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.ListProducts)
				r.Post("/", h.CreateProduct)
				r.Get("/{id}", h.GetProduct)
				r.Put("/{id}", h.UpdateProduct)
				r.Delete("/{id}", h.DeleteProduct)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.ListOrders)
				r.Get("/{id}", h.GetOrder)
				r.Put("/{id}/status", h.UpdateOrderStatus)
			})

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/image", h.UploadImage)
				r.Post("/images", h.UploadImages)
				r.Delete("/images/{id}", h.DeleteImage)
			})

			r.Get("/stats/overview", h.StatsOverview)
		})
	})

	return r
}
