package main

import (
	"context"
	"os/signal"
	"syscall"

	"demo-services/config"
	"demo-services/logging"
	"demo-services/middleware/metrics"
	"demo-services/server"
	"demo-services/service/greeting"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadGreeting()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}
	logger := logging.New("greeting-service", cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New("greeting")
	}

	h := server.NewHandler(ctx, greeting.Register, server.Options{
		Logger:  logger,
		Metrics: m,
		Limits:  cfg.Limits,
	})

	logger.Info().
		Bool("metrics", cfg.MetricsEnabled).
		Bool("rateLimit", cfg.Limits.RateEnabled).
		Bool("trustXFF", cfg.Limits.TrustXFF).
		Msg("greeting service configured")

	if err := server.Run(ctx, server.New(cfg.ListenAddr(), h), logger); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
