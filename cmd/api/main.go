package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"property-listing-service/config"
	_ "property-listing-service/docs" // Swagger docs
	"property-listing-service/internal/httpserver"
	listingHTTP "property-listing-service/internal/listing/delivery/http"
	listingRemote "property-listing-service/internal/listing/repository/remote"
	"property-listing-service/internal/listing/usecase"
	"property-listing-service/internal/middleware"
	"property-listing-service/internal/model"
	"property-listing-service/internal/refdata"
	refdataRemote "property-listing-service/internal/refdata/remote"
	"property-listing-service/pkg/cache"
	"property-listing-service/pkg/log"
)

// @title       Property Listing API
// @description Resilient aggregation and caching layer over a remote property listing data service.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Property Listing Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Remote listing service: %s", cfg.Remote.BaseURL)

	// 3. Remote clients
	listingClient := listingRemote.NewClient(cfg.Remote.BaseURL, cfg.Remote.APIKey, cfg.Remote.Timeout)
	refdataClient := refdataRemote.NewClient(cfg.Remote.BaseURL, cfg.Remote.APIKey, cfg.Remote.Timeout)

	// 4. Repository + reference directory
	listingRepo := listingRemote.New(listingClient, logger)

	refdataStore := cache.New[[]refdata.Entry](cfg.Cache.Size, cfg.Cache.TTL)
	directory := refdataRemote.NewDirectory(refdataClient, refdataStore, logger)

	// 5. Listing UseCase
	bulkStore := cache.New[[]model.Listing](cfg.Cache.Size, cfg.Cache.TTL)
	listingUC := usecase.New(logger, listingRepo, directory, bulkStore, cfg.Remote.DefectStatusCode)

	// 6. Delivery + middleware
	listingHandler := listingHTTP.New(logger, listingUC, directory)
	mw := middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ListingHandler: listingHandler,
		Middleware:     mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
