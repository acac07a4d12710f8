package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"afternote/internal/platform/config"
	"afternote/internal/platform/httpserver"
	"afternote/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	configPath := pflag.String("config", "", "path to a YAML config file")
	migrate := pflag.Bool("migrate", true, "apply database migrations before serving")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("migrate") {
		cfg.Database.Migrate = *migrate
	}
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backends, err := openInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer backends.Close()

	services, err := buildApp(cfg, backends, log)
	if err != nil {
		return err
	}

	relayCtx, stopRelay := context.WithCancel(context.Background())
	relayDone := services.startRelay(relayCtx, cfg.Kafka)

	srv := httpserver.New(cfg.Server.Addr, newRouter(cfg, services, backends, log), cfg.Server.RequestTimeout)
	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting afternote", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			stopRelay()
			<-relayDone
			services.auditPublisher.Close()
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	stopRelay()
	<-relayDone
	services.auditPublisher.Close()
	log.Info("server stopped")
	return nil
}
