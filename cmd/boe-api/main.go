package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boe_gateway/internal/config"
	"boe_gateway/internal/httpapi"
	"boe_gateway/internal/logger"
	"boe_gateway/internal/service"
	"boe_gateway/internal/source/boe"
	"boe_gateway/internal/transport"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (defaults only when empty)")
	flag.Parse()

	log := logger.New("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log = logger.New(cfg.LogLevel)

	policy := transport.Policy{
		Timeout:       cfg.BOEAPI.Timeout(),
		MaxRetries:    cfg.BOEAPI.Retries(),
		BaseDelay:     cfg.BOEAPI.RetryDelay(),
		MaxConcurrent: cfg.BOEAPI.MaxConcurrentRequests,
	}
	httpClient := transport.NewHTTPClient(policy)
	tc := transport.New(httpClient, transport.Config{
		Policy:      policy,
		UserAgent:   cfg.BOEAPI.UserAgent,
		LogRequests: cfg.BOEAPI.LoggingEnabled(),
	}, log)

	upstream := boe.New(boe.Config{BaseURL: cfg.BOEAPI.BaseURL}, tc, log)

	handler := httpapi.NewHandler(
		service.NewLegislationService(upstream, log),
		service.NewSummaryService(upstream, log),
		service.NewAuxiliaryService(upstream, log),
		httpapi.Options{Version: version, RequestTimeout: cfg.Server.RequestTimeout},
		log,
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.RequestTimeout + 5*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("api server starting",
			"addr", cfg.Server.Addr,
			"upstream", cfg.BOEAPI.BaseURL,
			"max_retries", tc.Policy().MaxRetries,
			"max_concurrent", tc.Policy().MaxConcurrent,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
}
