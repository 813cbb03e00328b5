package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/chris/gateway-dashboard/pkg/config"
	"github.com/chris/gateway-dashboard/pkg/handlers"
	"github.com/chris/gateway-dashboard/pkg/service"
	"github.com/chris/gateway-dashboard/pkg/session"
	"github.com/chris/gateway-dashboard/pkg/storage/memory"
	"github.com/chris/gateway-dashboard/pkg/views"
	"github.com/chris/gateway-dashboard/pkg/websockets"
)

var configPath = kingpin.Flag("config", "Path to the application config file").Short('c').Default("config.yml").String()

func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.Logger.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.IsProdMode {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	hostname, _ := os.Hostname()
	return slog.New(h).With("service", cfg.Application, "host", hostname)
}

func main() {
	kingpin.Parse()

	cfg, k, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if !cfg.IsProdMode {
		k.Print()
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	store, err := memory.NewSeeded()
	if err != nil {
		logger.Error("cannot seed store", "error", err)
		os.Exit(1)
	}

	svc := service.New(store, cfg.Latency.Simulator(), logger)

	deps := handlers.Dependencies{
		Service: svc,
		Session: session.New(svc, logger),
		Loader:  views.NewLoader(svc, logger),
		Logger:  logger,
	}
	if cfg.Websocket.Enabled {
		hub := websockets.NewHub(logger)
		deps.Publisher = hub
		deps.Connections = hub
	}

	server := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handlers.NewRouter(deps),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", server.Addr, "latency", cfg.Latency.Enabled, "websocket", cfg.Websocket.Enabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
