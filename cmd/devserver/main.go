// Package main starts the in-memory development server that stands in
// for the remote admin backend during local work, setting up
// configuration, logging, the seed dataset, and the HTTP router.
package main

import (
	"cmp"
	"fmt"
	"os"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/avolkhin/shopadmin/internal/config"
	"github.com/avolkhin/shopadmin/internal/devserver"
	"github.com/avolkhin/shopadmin/internal/logger"
	"github.com/avolkhin/shopadmin/internal/models"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Addr

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Build the seed dataset and register the admin account.
	store := devserver.NewStore()
	email := cmp.Or(os.Getenv("SHOPADMIN_ADMIN_EMAIL"), "admin@example.com")
	password := cmp.Or(os.Getenv("SHOPADMIN_ADMIN_PASSWORD"), "admin")
	store.AddAdmin(email, password)
	seed(store)

	// Build the router with middleware and routes.
	router := devserver.NewRouter(store, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting development server",
		zap.String("addr", addr),
		zap.String("admin", email))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}

// seed fills the store with a small catalog and a couple of orders so
// the dashboard has something to show out of the box.
func seed(store *devserver.Store) {
	mug := store.CreateProduct(models.ProductInput{
		Name:       "Enamel Mug",
		SKU:        "MUG-001",
		PriceCents: 1450,
		Stock:      120,
		Status:     string(models.ProductActive),
	})
	shirt := store.CreateProduct(models.ProductInput{
		Name:       "Logo T-Shirt",
		SKU:        "TS-014",
		PriceCents: 2590,
		Stock:      45,
		Status:     string(models.ProductActive),
	})
	store.CreateProduct(models.ProductInput{
		Name:       "Poster (unreleased)",
		SKU:        "PST-002",
		PriceCents: 900,
		Stock:      0,
		Status:     string(models.ProductDraft),
	})

	store.AddOrder(models.Order{
		Number: "1001",
		Status: string(models.OrderPaid),
		Email:  "buyer@example.com",
		Items: []models.OrderItem{
			{ProductID: mug.ID, Name: mug.Name, Quantity: 2, PriceCents: mug.PriceCents},
		},
		TotalCents: 2 * mug.PriceCents,
	})
	store.AddOrder(models.Order{
		Number: "1002",
		Status: string(models.OrderPending),
		Email:  "another@example.com",
		Items: []models.OrderItem{
			{ProductID: shirt.ID, Name: shirt.Name, Quantity: 1, PriceCents: shirt.PriceCents},
		},
		TotalCents: shirt.PriceCents,
	})
}
