package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/avolkhin/shopadmin/internal/client"
	"github.com/avolkhin/shopadmin/internal/models"
)

// showDashboard fetches the stats overview and the most recent orders
// concurrently and prints both once all calls have settled.
func showDashboard(ctx context.Context, api *client.Client) {
	var (
		stats  models.StatsOverview
		recent models.OrderList
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = api.GetStatsOverview(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = api.GetOrders(gctx, client.OrderListParams{Limit: 5})
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Println(client.Message(err))
		return
	}

	fmt.Printf("Products: %d  Orders: %d  Revenue: %d.%02d\n",
		stats.TotalProducts, stats.TotalOrders,
		stats.RevenueCents/100, stats.RevenueCents%100)
	for status, n := range stats.OrdersByStatus {
		fmt.Printf("  %s: %d\n", status, n)
	}
	fmt.Println("Recent orders:")
	for _, o := range recent.Orders {
		fmt.Printf("  #%s %s %d.%02d %s\n",
			o.Number, o.Status, o.TotalCents/100, o.TotalCents%100, o.Email)
	}
}
