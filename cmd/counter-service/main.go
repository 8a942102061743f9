package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"demo-services/config"
	"demo-services/logging"
	"demo-services/middleware/metrics"
	"demo-services/server"
	"demo-services/service/counter"
	"demo-services/service/counter/application"
	"demo-services/service/counter/domain"
	"demo-services/service/counter/infra"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadCounter()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}
	logger := logging.New("counter-service", cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore := openStore(ctx, cfg, logger)
	defer closeStore()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New("counter")
	}

	svc := application.HitService{
		Counter: store,
		Key:     domain.Name(cfg.CounterKey),
		Timeout: cfg.StoreTimeout,
	}
	opts := []counter.Option{counter.WithIdentity(cfg.ServiceName)}
	if m != nil {
		opts = append(opts, counter.WithObserver(m))
	}

	h := server.NewHandler(ctx, counter.NewHandler(svc, opts...).Register, server.Options{
		Logger:  logger,
		Metrics: m,
		Limits:  cfg.Limits,
	})

	logger.Info().
		Str("store", cfg.Store).
		Str("counterKey", cfg.KeyPrefix+cfg.CounterKey).
		Dur("storeTimeout", cfg.StoreTimeout).
		Bool("metrics", cfg.MetricsEnabled).
		Bool("rateLimit", cfg.Limits.RateEnabled).
		Int("concurrencyMax", cfg.Limits.ConcurrencyMax).
		Msg("counter service configured")

	if err := server.Run(ctx, server.New(cfg.ListenAddr(), h), logger); err != nil {
		logger.Error().Err(err).Msg("server error")
		closeStore()
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg config.Counter, logger zerolog.Logger) (domain.Counter, func()) {
	if cfg.Store == config.StoreMemory {
		logger.Warn().Msg("using in-memory counter, value is lost on restart")
		return infra.NewMemoryCounter(), func() {}
	}

	rdb := infra.NewRedisClient(infra.RedisOptions{
		Addr:        cfg.RedisAddr(),
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: cfg.StoreTimeout,
	})
	store := infra.NewRedisCounter(rdb, infra.WithKeyPrefix(cfg.KeyPrefix))

	// store fora do ar na subida não impede o serviço: GET / responde 503
	// até ele voltar.
	pingCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Str("redis", cfg.RedisAddr()).Msg("redis ping failed, serving anyway")
	} else {
		logger.Info().Str("redis", cfg.RedisAddr()).Msg("redis reachable")
	}

	var once sync.Once
	return store, func() { once.Do(func() { _ = rdb.Close() }) }
}
