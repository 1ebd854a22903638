package client

import (
	"context"
	"net/http"

	"github.com/avolkhin/shopadmin/internal/models"
)

const statsOverviewPath = "/api/admin/stats/overview"

// GetStatsOverview fetches the dashboard counters.
func (c *Client) GetStatsOverview(ctx context.Context) (models.StatsOverview, error) {
	return call[models.StatsOverview](ctx, c, request{
		method: http.MethodGet,
		path:   statsOverviewPath,
	})
}
