package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/server"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/store"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	stdoutHandler := logging.Setup(cfg.AppEnv)

	if cfg.StoreDriver == config.StorePostgres && cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required for the postgres store")
		os.Exit(1)
	}

	// Storage
	var (
		db           *gorm.DB
		recordStore  stylist.Store
		dbLogHandler *logging.DBHandler
		cleanupDone  = make(chan struct{})
	)
	if cfg.UsesSQL() {
		var err error
		db, err = database.Connect(cfg)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}

		if err := database.MigrateShared(db); err != nil {
			slog.Error("shared migration failed", "error", err)
			os.Exit(1)
		}

		// Database log handler (ERROR+ async batch)
		dbLogHandler = logging.NewDBHandler(db)
		slog.SetDefault(slog.New(logging.NewMultiHandler(stdoutHandler, dbLogHandler)))

		logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)
		recordStore = store.NewGormStore(db)
	} else {
		recordStore = store.NewMemoryStore()
		slog.Info("using in-memory store, records are lost on restart")
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	// AI providers
	providers := ai.NewProviders(context.Background(), cfg)

	// Register plugins
	stylistPlugin := stylist.New(recordStore, providers.Analyzer, providers.Responder, cfg)
	plugins := []apps.Plugin{stylistPlugin}

	// Migrate plugin models
	if db != nil {
		for _, p := range plugins {
			if models := p.Models(); len(models) > 0 {
				if err := database.MigrateModels(db, models); err != nil {
					slog.Error("plugin migration failed", "plugin", p.ID(), "error", err)
					os.Exit(1)
				}
				slog.Info("plugin migrated", "plugin", p.ID(), "models", len(models))
			}
		}
	}

	healthHandler := handlers.NewHealthHandler(recordStore, cfg.StoreDriver, providers.Analyzer.Len() > 0, providers.Responder.Len() > 0)
	app := server.New(cfg, healthHandler, plugins)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "store", cfg.StoreDriver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := providers.Close(); err != nil {
		slog.Error("ai provider close error", "error", err)
	}

	close(cleanupDone)
	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if db != nil {
		if err := database.Close(db); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}
