package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordermanagement/cmd"
	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/kafka"
	"ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/core/ports"
	_ "ordermanagement/internal/generated/docs"
	"ordermanagement/internal/pkg/logging"
	"ordermanagement/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, configs.LogLevel, configs.LogFormat)
	slog.SetDefault(logger)

	if err = run(configs, logger); err != nil {
		logger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, logger *slog.Logger) error {
	level := logging.ParseLevel(configs.LogLevel)
	gormLogger := logging.NewGormLogger(
		logger.With("component", "gorm"),
		logging.GormLevel(level),
		logging.DefaultGormLoggerConfig(),
	)

	db, err := postgres.Open(configs.Database(), gormLogger)
	if err != nil {
		return err
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	publisher, closePublisher := newPublisher(configs, logger)
	defer func() {
		if err := closePublisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := cmd.NewCompositionRoot(configs, db, publisher, registry, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := newEcho(configs, &app, registry, level, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", configs.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newPublisher returns the Kafka publisher when brokers are configured and
// a logging no-op otherwise.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.OrderEventPublisher, io.Closer) {
	brokers := kafka.ParseBrokers(configs.KafkaBrokers)
	if len(brokers) == 0 {
		logger.Info("No Kafka brokers configured, order events are dropped")
		p := kafka.NewNoopPublisher(logger)
		return p, p
	}

	p := kafka.NewOrderEventPublisher(kafka.NewWriter(brokers, configs.KafkaOrderEventsTopic), logger)
	logger.Info("Publishing order events", "brokers", brokers, "topic", configs.KafkaOrderEventsTopic)
	return p, p
}

func newEcho(
	configs cmd.Config,
	app *cmd.CompositionRoot,
	registry *prometheus.Registry,
	level slog.Level,
	logger *slog.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(logging.EchoLevel(level))

	e.Use(middleware.RequestID())
	e.Use(httpin.RequestLogger(logger.With("component", "http")))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: configs.CORSAllowOrigins,
	}))
	if configs.RateLimitRPS > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(configs.RateLimitRPS),
				Burst:     configs.RateLimitBurst,
				ExpiresIn: 3 * time.Minute,
			}),
		}))
	}
	e.Use(metrics.NewServerMetrics(registry).Middleware())

	e.GET("/metrics", echo.WrapHandler(metrics.Handler(registry)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if err := httpin.Mount(e, app.CreateServer()); err != nil {
		return nil, fmt.Errorf("mount api: %w", err)
	}
	return e, nil
}
