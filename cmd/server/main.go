// Package main is the entry point for the todo API. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"gorm.io/gorm"

	adapthttp "github.com/jsamuelsen11/todoapp/internal/adapters/http"
	"github.com/jsamuelsen11/todoapp/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todoapp/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todoapp/internal/adapters/persistence"
	"github.com/jsamuelsen11/todoapp/internal/app"
	"github.com/jsamuelsen11/todoapp/internal/platform/config"
	"github.com/jsamuelsen11/todoapp/internal/platform/database"
	"github.com/jsamuelsen11/todoapp/internal/platform/health"
	"github.com/jsamuelsen11/todoapp/internal/platform/logging"
	"github.com/jsamuelsen11/todoapp/internal/platform/metrics"
	"github.com/jsamuelsen11/todoapp/internal/platform/telemetry"
	"github.com/jsamuelsen11/todoapp/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// closeDatabase releases the pool on every exit path of run.
var closeDatabase = database.Close

func main() {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		fmt.Fprintln(os.Stderr, "error: APP_PROFILE environment variable is required (e.g. local, dev, prod)")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, profile)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run serves until ctx is canceled or the server fails.
func run(ctx context.Context, profile string, opts ...config.Option) error {
	// Bootstrap: config, logger, telemetry, database.
	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out, logFile := logging.Output(os.Stderr, logging.FileOptions{
		Path:       cfg.Log.File.Path,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	})
	defer func() { _ = logFile.Close() }()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, out)
	slog.SetDefault(logger)

	tel, err := telemetry.Setup(ctx, cfg.Telemetry, version)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	db, err := database.Open(ctx, &cfg.Database, logger)
	if err != nil {
		shutdownTelemetry(tel, logger)
		return fmt.Errorf("opening database: %w", err)
	}
	// Runs on every return path, after the server has drained.
	defer func() {
		if err := closeDatabase(db); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()
	defer shutdownTelemetry(tel, logger)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tel.Metrics)
	do.ProvideValue(injector, db)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if err := server.Listen(); err != nil {
		return err
	}
	logger.Info("todo API listening",
		slog.String("addr", server.Addr()),
		slog.String("version", version),
		slog.String("profile", profile),
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

// shutdownTelemetry flushes whatever telemetry.Setup started.
func shutdownTelemetry(tel *telemetry.Telemetry, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := tel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*metrics.Registry, error) {
		reg, err := metrics.New()
		if err != nil {
			return nil, err
		}

		sqlDB, err := do.MustInvoke[*gorm.DB](i).DB()
		if err != nil {
			return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
		}
		if err := reg.RegisterDB(cfg.Database.Driver, sqlDB); err != nil {
			return nil, fmt.Errorf("registering db stats: %w", err)
		}
		return reg, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoRepository, error) {
		db := do.MustInvoke[*gorm.DB](i)
		reg := do.MustInvoke[*metrics.Registry](i)

		repo := persistence.NewTodoRepository(db, reg.Store())
		if cfg.Database.AutoMigrate {
			if err := repo.Migrate(ctx); err != nil {
				return nil, err
			}
			logger.Info("database migrated from model", slog.String("driver", cfg.Database.Driver))
			return repo, nil
		}

		applied, err := database.Migrate(ctx, db, cfg.Database.Driver)
		if err != nil {
			return nil, fmt.Errorf("applying migrations: %w", err)
		}
		logger.Info("database migrations applied",
			slog.String("driver", cfg.Database.Driver),
			slog.Any("files", applied),
		)
		return repo, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		repo := do.MustInvoke[ports.TodoRepository](i)
		return app.NewTodoService(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(database.NewHealthChecker(do.MustInvoke[*gorm.DB](i)))
		return registry, nil
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
		otelMetrics := do.MustInvoke[*telemetry.Metrics](i)

		var metricsRoute *adapthttp.Metrics
		if cfg.Metrics.Enabled {
			reg := do.MustInvoke[*metrics.Registry](i)
			metricsRoute = &adapthttp.Metrics{Path: cfg.Metrics.Path, Handler: reg.Handler()}
		}

		return adapthttp.NewRouter(todoH, healthH, metricsRoute,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.CORS(cfg.CORS),
			middleware.OpenTelemetry(otelMetrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
