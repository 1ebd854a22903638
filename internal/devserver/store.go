// Package devserver implements an in-memory stand-in for the remote
// admin backend. It speaks the same HTTP contract the real backend
// owns, for local development and integration tests; it holds no
// business logic beyond that contract.
package devserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avolkhin/shopadmin/internal/models"
)

// Store is the in-memory dataset backing the development server.
type Store struct {
	mu       sync.Mutex
	admins   map[string]string // email -> password
	tokens   map[string]string // token -> email
	products map[string]models.Product
	orders   map[string]models.Order
	images   map[string]models.Image
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		admins:   make(map[string]string),
		tokens:   make(map[string]string),
		products: make(map[string]models.Product),
		orders:   make(map[string]models.Order),
		images:   make(map[string]models.Image),
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// AddAdmin registers credentials accepted by the login endpoint.
func (s *Store) AddAdmin(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[email] = password
}

// Authenticate checks credentials and, on success, issues a new token.
func (s *Store) Authenticate(email, password string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want, ok := s.admins[email]
	if !ok || want != password {
		return "", false
	}
	token := uuid.NewString()
	s.tokens[token] = email
	return token, true
}

// EmailForToken resolves a bearer token to the admin email it was
// issued for.
func (s *Store) EmailForToken(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.tokens[token]
	return email, ok
}

// RevokeToken invalidates a previously issued token.
func (s *Store) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// CreateProduct stores a new product from the given input.
func (s *Store) CreateProduct(in models.ProductInput) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := in.Status
	if status == "" {
		status = string(models.ProductDraft)
	}
	p := models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Status:      status,
		Images:      in.Images,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}
	s.products[p.ID] = p
	return p
}

// GetProduct returns the product with the given id.
func (s *Store) GetProduct(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return p, ok
}

// UpdateProduct replaces the mutable fields of an existing product.
func (s *Store) UpdateProduct(id string, in models.ProductInput) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, false
	}
	p.Name = in.Name
	p.Description = in.Description
	p.SKU = in.SKU
	p.PriceCents = in.PriceCents
	p.Stock = in.Stock
	if in.Status != "" {
		p.Status = in.Status
	}
	if in.Images != nil {
		p.Images = in.Images
	}
	p.UpdatedAt = now()
	s.products[id] = p
	return p, true
}

// DeleteProduct removes a product; reports whether it existed.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.products[id]
	delete(s.products, id)
	return ok
}

// ListProducts returns products filtered by status and search term,
// paged by page/limit. sortKey orders the result ("name", "-name",
// "price", "-price"); anything else falls back to creation time then
// id for stable output.
func (s *Store) ListProducts(status, search, sortKey string, page, limit int) models.ProductList {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if status != "" && p.Status != status {
			continue
		}
		if search != "" && !containsFold(p.Name, search) && !containsFold(p.SKU, search) {
			continue
		}
		all = append(all, p)
	}
	sort.Slice(all, productLess(all, sortKey))

	paged, pagination := paginate(len(all), page, limit)
	return models.ProductList{
		Products:   all[paged.start:paged.end],
		Pagination: pagination,
	}
}

// AddOrder stores an order as-is, assigning an id when absent.
func (s *Store) AddOrder(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt == "" {
		o.CreatedAt = now()
	}
	o.UpdatedAt = now()
	s.orders[o.ID] = o
	return o
}

// GetOrder returns the order with the given id.
func (s *Store) GetOrder(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok
}

// UpdateOrderStatus moves an order to a new status, attaching tracking
// details when provided.
func (s *Store) UpdateOrderStatus(id, status string, tracking *models.Tracking) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}
	o.Status = status
	if tracking != nil {
		t := *tracking
		if t.ShippedAt == "" {
			t.ShippedAt = now()
		}
		o.Tracking = &t
	}
	o.UpdatedAt = now()
	s.orders[id] = o
	return o, true
}

// ListOrders returns orders filtered by status and search term, paged
// by page/limit.
func (s *Store) ListOrders(status, search string, page, limit int) models.OrderList {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status != "" && o.Status != status {
			continue
		}
		if search != "" && !containsFold(o.Number, search) && !containsFold(o.Email, search) {
			continue
		}
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt != all[j].CreatedAt {
			return all[i].CreatedAt < all[j].CreatedAt
		}
		return all[i].ID < all[j].ID
	})

	paged, pagination := paginate(len(all), page, limit)
	return models.OrderList{
		Orders:     all[paged.start:paged.end],
		Pagination: pagination,
	}
}

// AddImage records an uploaded file and returns its image record.
func (s *Store) AddImage(filename, contentType string, size int64) models.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	img := models.Image{
		ID:          uuid.NewString(),
		Filename:    filename,
		SizeBytes:   size,
		ContentType: contentType,
		CreatedAt:   now(),
	}
	img.URL = "/uploads/" + img.ID + "/" + filename
	s.images[img.ID] = img
	return img
}

// DeleteImage removes an image record; reports whether it existed.
func (s *Store) DeleteImage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.images[id]
	delete(s.images, id)
	return ok
}

// Overview aggregates the dashboard counters. Revenue counts paid,
// shipped, and delivered orders.
func (s *Store) Overview() models.StatsOverview {
	s.mu.Lock()
	defer s.mu.Unlock()

	byStatus := make(map[string]int)
	var revenue int64
	for _, o := range s.orders {
		byStatus[o.Status]++
		switch models.OrderStatus(o.Status) {
		case models.OrderPaid, models.OrderShipped, models.OrderDelivered:
			revenue += o.TotalCents
		}
	}
	return models.StatsOverview{
		TotalProducts:  len(s.products),
		TotalOrders:    len(s.orders),
		RevenueCents:   revenue,
		OrdersByStatus: byStatus,
	}
}

type window struct {
	start, end int
}

// paginate clamps page/limit to defaults and computes the slice window
// plus the pagination descriptor.
func paginate(total, page, limit int) (window, models.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}
	return window{start: start, end: end}, models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// productLess builds the ordering for a product listing. Keys are
// compared with the id as tie-breaker so two runs list equal rows in
// the same order.
func productLess(all []models.Product, sortKey string) func(i, j int) bool {
	return func(i, j int) bool {
		a, b := all[i], all[j]
		switch sortKey {
		case "name":
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		case "-name":
			if a.Name != b.Name {
				return a.Name > b.Name
			}
		case "price":
			if a.PriceCents != b.PriceCents {
				return a.PriceCents < b.PriceCents
			}
		case "-price":
			if a.PriceCents != b.PriceCents {
				return a.PriceCents > b.PriceCents
			}
		default:
			if a.CreatedAt != b.CreatedAt {
				return a.CreatedAt < b.CreatedAt
			}
		}
		return a.ID < b.ID
	}
}
