// Package main is the entry point for the todo service. It wires all
// dependencies using samber/do v2, creates the schema, starts the HTTP server,
// and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-service/configs"
	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/adapters/storage"
	"github.com/jsamuelsen11/todo-service/internal/app"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/database"
	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	migrateTimeout        = 30 * time.Second

	// writeTimeoutMargin leaves room for the timeout envelope to reach the
	// client before the server's write deadline.
	writeTimeoutMargin = time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry. Configuration is read from the
	// embedded YAML unless a directory on disk is named explicitly.
	loadOpt := config.WithFS(configs.Files)
	if dir := os.Getenv("TODO_CONFIG_DIR"); dir != "" {
		loadOpt = config.WithConfigDir(dir)
	}
	cfg, err := config.Load(profile, loadOpt)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	tel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, including the
	// database connection and schema).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*storage.Repository](injector))

	if err := server.Listen(ctx); err != nil {
		closeDatabase(injector, logger)
		_ = tel.Shutdown(ctx)
		return err
	}

	// Serve in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeDatabase(injector, logger)
		_ = tel.Shutdown(ctx)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then release the database.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Serve() goroutine to return.
	<-serverErr

	closeDatabase(injector, logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := tel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// initTelemetry returns empty providers when telemetry is disabled so the
// rest of the graph runs with nil metrics.
func initTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Providers, error) {
	if !cfg.Telemetry.Enabled {
		return &telemetry.Providers{}, nil
	}
	return telemetry.Setup(ctx, telemetry.Options{
		ServiceName: cfg.Telemetry.ServiceName,
		Exporter:    cfg.Telemetry.Exporter,
		Endpoint:    cfg.Telemetry.Endpoint,
	})
}

// closeDatabase closes the pool. Only valid once the graph has resolved.
func closeDatabase(injector do.Injector, logger *slog.Logger) {
	db := do.MustInvoke[*gorm.DB](injector)
	if err := database.Close(db); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}
}

// requestTimeout derives the per-request deadline from the server write
// timeout.
func requestTimeout(writeTimeout time.Duration) time.Duration {
	if writeTimeout > 2*writeTimeoutMargin {
		return writeTimeout - writeTimeoutMargin
	}
	return writeTimeout
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*gorm.DB, error) {
		db, err := database.Open(cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
		defer cancel()
		if err := storage.Migrate(ctx, db); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("migrating schema: %w", err)
		}
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (*storage.Repository, error) {
		db := do.MustInvoke[*gorm.DB](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return storage.NewRepository(db, cfg.Database.CircuitBreaker, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		repo := do.MustInvoke[*storage.Repository](i)
		return app.NewTodoService(repo, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*prometheus.Registry, error) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		reg := do.MustInvoke[*prometheus.Registry](i)

		routes := adapthttp.Routes{Todo: todoH, Health: healthH}
		mws := []func(nethttp.Handler) nethttp.Handler{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
		}
		if cfg.Metrics.Enabled {
			routes.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
			routes.MetricsPath = cfg.Metrics.Path
			mws = append(mws, middleware.Prometheus(reg))
		}
		mws = append(mws,
			middleware.Logging(logger),
			middleware.Timeout(requestTimeout(cfg.Server.WriteTimeout)),
		)

		return adapthttp.NewRouter(routes, mws...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
