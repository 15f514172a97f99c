package http

import (
	"net/http"
	"time"

	"restaurant-insights/internal/ingestors"
	"restaurant-insights/internal/reports"
	"restaurant-insights/internal/shared/loggers"
	"restaurant-insights/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// RouterConfig holds the cross-origin and rate limit settings of the API routes.
type RouterConfig struct {
	AllowedOrigins    []string
	CORSMaxAge        int // seconds
	RateLimitDisabled bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// NewRouter creates and configures the HTTP router.
func NewRouter(config RouterConfig, ingestionService ingestors.IngestionService, reportService reports.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)
	// preflight requests match no route, so CORS has to sit on the root router
	router.Use(mwCORS(config))

	ingestTrafficHandler := NewIngestTrafficHandler(ingestionService)
	trafficReportHandler := NewTrafficReportHandler(reportService)

	router.Get("/healthz", healthzHandler)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	router.Group(func(api chi.Router) {
		api.Use(mwRateLimit(config))

		api.Post("/restaurants/{restaurantID}/traffic", errorHandlingAdapter(ingestTrafficHandler))
		api.Get("/restaurants/{restaurantID}/traffic/report", errorHandlingAdapter(trafficReportHandler))
	})

	return router
}
