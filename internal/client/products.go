package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/avolkhin/shopadmin/internal/models"
)

const productsPath = "/api/admin/products"

// GetProducts lists catalog products. Unset params are left out of the
// query string.
func (c *Client) GetProducts(ctx context.Context, params ProductListParams) (models.ProductList, error) {
	return call[models.ProductList](ctx, c, request{
		method: http.MethodGet,
		path:   productsPath,
		query:  params.values().Encode(),
	})
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (models.Product, error) {
	return call[models.Product](ctx, c, request{
		method: http.MethodGet,
		path:   productsPath + "/" + url.PathEscape(id),
	})
}

// CreateProduct creates a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, in models.ProductInput) (models.Product, error) {
	return call[models.Product](ctx, c, request{
		method: http.MethodPost,
		path:   productsPath,
		body:   in,
	})
}

// UpdateProduct replaces the product's fields and returns the updated
// record.
func (c *Client) UpdateProduct(ctx context.Context, id string, in models.ProductInput) (models.Product, error) {
	return call[models.Product](ctx, c, request{
		method: http.MethodPut,
		path:   productsPath + "/" + url.PathEscape(id),
		body:   in,
	})
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   productsPath + "/" + url.PathEscape(id),
	})
	return err
}
