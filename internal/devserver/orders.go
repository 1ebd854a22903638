package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avolkhin/shopadmin/internal/models"
)

type updateStatusRequest struct {
	Status   string           `json:"status"`
	Tracking *models.Tracking `json:"tracking"`
}

var validOrderStatuses = map[string]bool{
	string(models.OrderPending):   true,
	string(models.OrderPaid):      true,
	string(models.OrderShipped):   true,
	string(models.OrderDelivered): true,
	string(models.OrderCancelled): true,
}

// ListOrders handles GET /api/admin/orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	list := h.Store.ListOrders(q.Get("status"), q.Get("search"), page, limit)
	writeData(w, http.StatusOK, list)
}

// GetOrder handles GET /api/admin/orders/{id}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.Store.GetOrder(pathParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeData(w, http.StatusOK, o)
}

// UpdateOrderStatus handles PUT /api/admin/orders/{id}/status.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validOrderStatuses[req.Status] {
		writeFieldErrors(w, http.StatusBadRequest, "validation failed", []fieldError{
			{Path: []string{"status"}, Message: "unknown status"},
		})
		return
	}
	o, ok := h.Store.UpdateOrderStatus(pathParam(r, "id"), req.Status, req.Tracking)
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeData(w, http.StatusOK, o)
}
