package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/catalog-service/docs"
	"github.com/tair/catalog-service/internal/catalog"
	grpcDelivery "github.com/tair/catalog-service/internal/catalog/delivery/grpc"
	httpDelivery "github.com/tair/catalog-service/internal/catalog/delivery/http"
	"github.com/tair/catalog-service/internal/catalog/repository"
	"github.com/tair/catalog-service/pkg/config"
	"github.com/tair/catalog-service/pkg/database"
	"github.com/tair/catalog-service/pkg/logger"
	"github.com/tair/catalog-service/pkg/tracing"
)

const serviceVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(logger.Options{
		Service:     cfg.OTEL.ServiceName,
		Development: cfg.IsDevelopment(),
		Level:       cfg.Log.Level,
	})

	logger.Logger.Info().
		Str("service", cfg.OTEL.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.Log.Level).
		Msg("Starting catalog service")

	// Initialize tracing
	tp, err := tracing.InitTracer(tracing.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.OTEL.ServiceName,
		ServiceVersion: serviceVersion,
		JaegerEndpoint: cfg.Jaeger.Endpoint,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}()

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database())
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := repository.AutoMigrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize handlers with Wire DI
	app, cleanup, err := catalog.InitializeApp(cfg, db, registry)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr: ":" + cfg.HTTP.Port,
		Handler: httpDelivery.NewRouter(app.HTTP, httpDelivery.RouterOptions{
			Health:  httpDelivery.HealthCheck(db),
			Metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			Swagger: httpSwagger.WrapHandler,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.HTTP.Timeout,
		WriteTimeout:      cfg.HTTP.Timeout,
		IdleTimeout:       2 * cfg.HTTP.Timeout,
	}

	go startHTTPServer(httpServer, stop)
	go startGRPCServer(ctx, app.GRPC, cfg.GRPC.Port, stop)

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down servers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	app.GRPC.Stop()

	logger.Logger.Info().Msg("Servers stopped")
}

func startHTTPServer(server *http.Server, stop context.CancelFunc) {
	logger.Logger.Info().
		Str("addr", server.Addr).
		Str("metrics_endpoint", "/metrics").
		Str("swagger", "/swagger/index.html").
		Msg("HTTP server started")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Logger.Error().Err(err).Msg("Failed to start HTTP server")
		stop()
	}
}

func startGRPCServer(ctx context.Context, server *grpcDelivery.Server, port string, stop context.CancelFunc) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Logger.Error().Err(err).Str("port", port).Msg("Failed to listen")
		stop()
		return
	}

	go server.Watch(ctx, grpcDelivery.DefaultCheckInterval)

	if err := server.Serve(lis); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to start gRPC server")
		stop()
	}
}
