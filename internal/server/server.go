// Package server assembles configuration, providers, metrics and the HTTP
// surface into a runnable process.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"hockey-odds-service/internal/config"
	apphttp "hockey-odds-service/internal/http"
	"hockey-odds-service/internal/logging"
	"hockey-odds-service/internal/metrics"
)

// Overridable in tests.
var metricsSetup = metrics.Setup

// Server owns the process lifecycle: one API listener, an optional metrics
// listener, and a graceful shutdown path.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Run starts the server and blocks until the context is canceled or a
// listener fails. Shutdown is graceful within shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	recorder, promHandler, shutdownMetrics, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      s.cfg.Metrics.Enabled,
		Port:         s.cfg.Metrics.Port,
		ServiceName:  s.cfg.Metrics.ServiceName,
		OtlpEndpoint: s.cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: s.cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("metrics setup: %w", err)
	}
	defer func() {
		if err := shutdownMetrics(context.Background()); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}()

	provider, closeProvider := buildProvider(s.cfg, s.logger, recorder)
	defer closeProvider()

	handler := apphttp.NewHandler(provider, s.logger, recorder)
	apiSrv := newHTTPServer(":"+s.cfg.Port, apphttp.WithMiddleware(apphttp.NewRouter(handler), s.logger, recorder))

	errCh := make(chan error, 2)
	go func() {
		logging.Info(s.logger, "api server listening", slog.String("port", s.cfg.Port), slog.String(logging.FieldProvider, s.cfg.Provider))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("api server: %w", err)
		}
	}()

	var metricsSrv httpServer
	if promHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promHandler)
		metricsSrv = newHTTPServer(":"+s.cfg.Metrics.Port, mux)
		go func() {
			logging.Info(s.logger, "metrics server listening", slog.String("port", s.cfg.Metrics.Port))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info(s.logger, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var firstErr error
	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		firstErr = err
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
