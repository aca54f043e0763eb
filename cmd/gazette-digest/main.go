package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"boe_gateway/internal/config"
	"boe_gateway/internal/dedupe"
	"boe_gateway/internal/digest"
	"boe_gateway/internal/logger"
	"boe_gateway/internal/publisher"
	"boe_gateway/internal/scheduler"
	"boe_gateway/internal/service"
	"boe_gateway/internal/source/boe"
	"boe_gateway/internal/transport"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single digest and exit")
	flag.Parse()

	log := logger.New("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log = logger.New(cfg.LogLevel)

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, log)
	if err != nil {
		log.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	policy := transport.Policy{
		Timeout:       cfg.BOEAPI.Timeout(),
		MaxRetries:    cfg.BOEAPI.Retries(),
		BaseDelay:     cfg.BOEAPI.RetryDelay(),
		MaxConcurrent: cfg.BOEAPI.MaxConcurrentRequests,
	}
	tc := transport.New(transport.NewHTTPClient(policy), transport.Config{
		Policy:      policy,
		UserAgent:   cfg.BOEAPI.UserAgent,
		LogRequests: cfg.BOEAPI.LoggingEnabled(),
	}, log)

	upstream := boe.New(boe.Config{BaseURL: cfg.BOEAPI.BaseURL}, tc, log)

	digestService := digest.NewService(
		service.NewSummaryService(upstream, log),
		rabbitMQ,
		dedupe.NewCache(cfg.Digest.DedupeCapacity, cfg.Digest.DedupeTTL),
		digest.Config{
			Gazette:  cfg.Digest.Gazette,
			MaxItems: cfg.Digest.MaxItems,
			Location: cfg.Digest.Location(),
		},
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once {
		runCtx, cancel := context.WithTimeout(ctx, cfg.Digest.RunTimeout)
		defer cancel()
		if _, err := digestService.Run(runCtx); err != nil {
			log.Error("digest failed", "error", err)
			os.Exit(1)
		}
		return
	}

	log.Info("starting gazette digest",
		"gazette", cfg.Digest.Gazette,
		"interval", cfg.Digest.Interval,
		"timezone", cfg.Digest.Timezone,
	)

	sched := scheduler.NewScheduler(digestService, cfg.Digest.Interval, cfg.Digest.RunTimeout, log)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}
