package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/avolkhin/shopadmin/internal/models"
)

const ordersPath = "/api/admin/orders"

type updateStatusRequest struct {
	Status   string           `json:"status"`
	Tracking *models.Tracking `json:"tracking,omitempty"`
}

// GetOrders lists orders. Unset params are left out of the query string.
func (c *Client) GetOrders(ctx context.Context, params OrderListParams) (models.OrderList, error) {
	return call[models.OrderList](ctx, c, request{
		method: http.MethodGet,
		path:   ordersPath,
		query:  params.values().Encode(),
	})
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (models.Order, error) {
	return call[models.Order](ctx, c, request{
		method: http.MethodGet,
		path:   ordersPath + "/" + url.PathEscape(id),
	})
}

// UpdateOrderStatus moves an order to a new status. tracking may be nil
// for transitions that carry no shipment details.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus, tracking *models.Tracking) (models.Order, error) {
	return call[models.Order](ctx, c, request{
		method: http.MethodPut,
		path:   ordersPath + "/" + url.PathEscape(id) + "/status",
		body:   updateStatusRequest{Status: string(status), Tracking: tracking},
	})
}
