package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hockey-odds-service/internal/config"
	"hockey-odds-service/internal/logging"
	"hockey-odds-service/internal/server"
)

const (
	serviceName = "hockey-odds-service"
	appVersion  = "dev"
)

func main() {
	// Escape hatch so the binary can be exercised in tests without binding ports.
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger).Run(ctx); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
