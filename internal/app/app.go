package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"restaurant-insights/internal/aggregators"
	"restaurant-insights/internal/events"
	internalhttp "restaurant-insights/internal/http"
	"restaurant-insights/internal/ingestors"
	"restaurant-insights/internal/models"
	"restaurant-insights/internal/reports"
	"restaurant-insights/internal/shared/configs"
	"restaurant-insights/internal/shared/filestorages"
	"restaurant-insights/internal/shared/loggers"
	"restaurant-insights/internal/sources"
	"restaurant-insights/internal/stores"
	"restaurant-insights/internal/streams"
	"restaurant-insights/internal/traffic"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	trafficQueue     *streams.PartitionedQueue[events.TrafficPartialEvent]
	trafficConsumer  streams.TrafficEventConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "restaurant-insights").
		Logger()

	hours, err := models.NewOperatingHours(config.Traffic.OpenHour, config.Traffic.CloseHour)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize operating hours: %w", err)
	}
	defaultTimeframe, err := models.ParseTimeframe(config.Traffic.DefaultTimeframe)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize default timeframe: %w", err)
	}

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize stream queue
	trafficQueue := streams.NewPartitionedQueue[events.TrafficPartialEvent](config.Traffic.QueuePartitions, config.Traffic.QueueBuffer)

	// Initialize aggregation service
	dailyTrafficStore := stores.NewDailyTrafficStore(fileStorage)
	rolluper := aggregators.NewDailyTrafficRolluper()
	aggregationService := aggregators.NewAggregationService(rolluper, dailyTrafficStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	trafficConsumer := streams.NewTrafficEventConsumer(trafficQueue, aggregationService, consumerLogger)

	// Initialize ingestion service
	batchStore := stores.NewSampleBatchStore(fileStorage)
	batchSummarizer := ingestors.NewBatchSummarizer()
	trafficProducer := streams.NewTrafficEventProducer(trafficQueue)
	ingestionService := ingestors.NewIngestionService(hours, batchSummarizer, batchStore, trafficProducer)

	// Initialize report service
	sampleSource, err := sources.New(config.Traffic.SampleSource, hours, dailyTrafficStore)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sample source: %w", err)
	}
	reportService := reports.NewReportService(traffic.NewAggregator(hours), sampleSource, defaultTimeframe, time.Now)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.RouterConfig{
		AllowedOrigins:    config.CORS.AllowedOrigins,
		CORSMaxAge:        config.CORS.MaxAge,
		RateLimitDisabled: config.RateLimit.Disabled,
		RateLimitRequests: config.RateLimit.Requests,
		RateLimitWindow:   time.Duration(config.RateLimit.Window) * time.Second,
	}, ingestionService, reportService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		server:          server,
		trafficQueue:    trafficQueue,
		trafficConsumer: trafficConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting restaurant-insights service on port %d (log_level=%s, file_storage_root_dir=%s, sample_source=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Traffic.SampleSource)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.trafficConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server, no new batches are accepted past this point
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Close the queue, late publishes fail with ErrQueueClosed
	app.trafficQueue.Close()

	// 3) Let the workers roll up what is still buffered
	if err := app.trafficConsumer.Drain(ctx); err != nil {
		app.appLogger.Warn().Err(err).Msg("Traffic queue not drained before deadline, remaining events dropped")
	} else {
		app.appLogger.Info().Msg("Traffic queue drained")
	}

	// 4) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 5) Wait for background consumers to finish
	app.trafficConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
