package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/merdeka-labs/penyata/internal/api"
	"github.com/merdeka-labs/penyata/internal/config"
	"github.com/merdeka-labs/penyata/internal/escalation"
	"github.com/merdeka-labs/penyata/internal/events"
	"github.com/merdeka-labs/penyata/internal/metrics"
	"github.com/merdeka-labs/penyata/internal/processor"
	"github.com/merdeka-labs/penyata/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("penyata starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected")

	bus, err := events.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer bus.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	pipeline := metrics.NewPipeline()
	esc := escalation.NewManager(db, bus, slog.Default())
	proc := processor.New(db, esc, bus, pipeline, slog.Default())

	if err := bus.Subscribe(events.SubjectDocumentExtracted, proc.HandleDocumentExtracted); err != nil {
		slog.Error("failed to subscribe to document events", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(cfg.Port, cfg.APIToken, db, esc, pipeline, cfg.SuggestionLimit, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("penyata ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("penyata stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
