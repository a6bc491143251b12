package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/awardpulse/internal/metrics"
	"github.com/guttosm/awardpulse/internal/middleware"
)

// RouterOptions tunes the middleware stack. Zero values disable the
// corresponding middleware.
type RouterOptions struct {
	RateLimitPerMinute int
	RequestTimeout     time.Duration
	Metrics            *metrics.Manager
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler,
//     Metrics, RateLimiter, Timeout).
//   - Mounts the page (/), the PNG chart (/chart.png) and API v1 (/api/v1).
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(pageTemplates())

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	if opts.RateLimitPerMinute > 0 {
		router.Use(middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute))
	}

	// ─── Timeout ──────────────────────────────────
	router.Use(middleware.Timeout(opts.RequestTimeout))

	// ─── Swagger & metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// ─── Page ─────────────────────────────────────
	router.GET("/", handler.Index)
	router.GET("/chart.png", handler.GetChartPNG)

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/sectors", handler.GetSectors)
		v1.GET("/selection", handler.GetSelection)
		v1.GET("/series", handler.GetSeries)
		v1.GET("/chart", handler.GetChart)
	}

	return router
}
