package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/awardpulse/config"
	"github.com/guttosm/awardpulse/internal/api"
	"github.com/guttosm/awardpulse/internal/chart"
	"github.com/guttosm/awardpulse/internal/metrics"
	"github.com/guttosm/awardpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Loads the dataset once (LoadDataset) and derives the sector catalog.
//   - Creates the metrics manager and the dashboard service.
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//
// A dataset that fails to load aborts initialization; the server never starts.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig
	if cfg.Server.Mode == gin.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()

	dataset, err := LoadDataset(ctx, cfg.Data.Path, m)
	if err != nil {
		return nil, nil, err
	}

	// Initialize service layer (selection -> series -> chart)
	svc := service.NewDashboardService(dataset, m, chart.Options{Title: cfg.Dashboard.ChartTitle})

	// Initialize HTTP handler layer
	handler := api.NewHandler(svc, cfg.Dashboard.Title)

	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		RequestTimeout:     cfg.Server.RequestTimeout,
		Metrics:            m,
	})

	healthHandler := api.NewHealthHandler(svc.Ready)
	healthHandler.Register(router)

	// The dataset lives in memory; nothing to release.
	cleanup := func() {}

	return router, cleanup, nil
}
