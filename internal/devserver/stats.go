package devserver

import "net/http"

// StatsOverview handles GET /api/admin/stats/overview.
func (h *Handler) StatsOverview(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.Store.Overview())
}
