// Package models defines the domain records exchanged with the admin API.
// The client passes these through verbatim; all validation lives on the
// server side.
package models

// Identity describes the authenticated admin user.
type Identity struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Email is the login identity of the user.
	Email string `json:"email"`
	// Name is the display name, if the backend provides one.
	Name string `json:"name,omitempty"`
	// Role is the admin role label, if the backend provides one.
	Role string `json:"role,omitempty"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ProductStatus is the lifecycle state of a catalog product.
type ProductStatus string

const (
	// ProductActive is a product visible in the storefront.
	ProductActive ProductStatus = "active"
	// ProductDraft is a product not yet published.
	ProductDraft ProductStatus = "draft"
	// ProductArchived is a product removed from sale but kept for history.
	ProductArchived ProductStatus = "archived"
)

// Product is a catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	SKU         string   `json:"sku,omitempty"`
	// PriceCents is the unit price in the store currency's minor units.
	PriceCents int64 `json:"priceCents"`
	Stock      int   `json:"stock"`
	Status     string `json:"status"`
	// Images holds URLs of previously uploaded product images.
	Images    []string `json:"images,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	SKU         string   `json:"sku,omitempty"`
	PriceCents  int64    `json:"priceCents"`
	Stock       int      `json:"stock"`
	Status      string   `json:"status,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// ProductList is the paged result of a product listing.
type ProductList struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	// OrderPending is an order placed but not yet paid.
	OrderPending OrderStatus = "pending"
	// OrderPaid is an order with confirmed payment.
	OrderPaid OrderStatus = "paid"
	// OrderShipped is an order handed to a carrier.
	OrderShipped OrderStatus = "shipped"
	// OrderDelivered is an order confirmed received.
	OrderDelivered OrderStatus = "delivered"
	// OrderCancelled is an order that will not be fulfilled.
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
}

// Tracking carries shipment details attached when an order ships.
type Tracking struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	ShippedAt      string `json:"shippedAt,omitempty"`
}

// Order is a customer order as the backend reports it.
type Order struct {
	ID         string      `json:"id"`
	Number     string      `json:"number,omitempty"`
	Status     string      `json:"status"`
	Email      string      `json:"email,omitempty"`
	Items      []OrderItem `json:"items,omitempty"`
	TotalCents int64       `json:"totalCents"`
	Tracking   *Tracking   `json:"tracking,omitempty"`
	CreatedAt  string      `json:"createdAt,omitempty"`
	UpdatedAt  string      `json:"updatedAt,omitempty"`
}

// OrderList is the paged result of an order listing.
type OrderList struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// Image is an uploaded media record.
type Image struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	SizeBytes   int64  `json:"sizeBytes"`
	ContentType string `json:"contentType,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// ImageBatch is the result of a multi-file upload: the created records
// plus a parallel slice of their URLs in the same order.
type ImageBatch struct {
	Images []Image  `json:"images"`
	URLs   []string `json:"urls"`
}

// StatsOverview aggregates the dashboard counters.
type StatsOverview struct {
	TotalProducts  int            `json:"totalProducts"`
	TotalOrders    int            `json:"totalOrders"`
	RevenueCents   int64          `json:"revenueCents"`
	OrdersByStatus map[string]int `json:"ordersByStatus,omitempty"`
}
