package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/halcyard/TradeCenter_Go/internal/config"
	"github.com/halcyard/TradeCenter_Go/internal/database"
	"github.com/halcyard/TradeCenter_Go/internal/database/postgres"
	"github.com/halcyard/TradeCenter_Go/internal/event"
	"github.com/halcyard/TradeCenter_Go/internal/handler"
	"github.com/halcyard/TradeCenter_Go/internal/item"
	"github.com/halcyard/TradeCenter_Go/internal/logger"
	"github.com/halcyard/TradeCenter_Go/internal/metrics"
	"github.com/halcyard/TradeCenter_Go/internal/notify"
	"github.com/halcyard/TradeCenter_Go/internal/profile"
	"github.com/halcyard/TradeCenter_Go/internal/server"
	"github.com/halcyard/TradeCenter_Go/internal/trade"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	ctx := context.Background()

	pool, err := database.NewPool(cfg.DatabaseURL(), 0, 0, 0)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	tradeRepo := postgres.NewTradeRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	inboxRepo := postgres.NewInboxRepository(pool)

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().RegisterHandlers(bus)

	inboxService := notify.NewService(inboxRepo)
	tradeService := trade.NewService(tradeRepo, itemRepo, feedbackRepo, notify.NewInboxSink(inboxRepo), bus)
	itemService := item.NewService(itemRepo)
	profileService := profile.NewService(tradeRepo, feedbackRepo)

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool,
		tradeService, itemService, inboxService, profileService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server stopped unexpectedly", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
