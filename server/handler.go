// Package server monta a pilha HTTP comum aos dois serviços (rotas de
// infraestrutura, métricas, proteção de tráfego, access log) e cuida do
// ciclo de vida do http.Server.
package server

import (
	"context"
	"net/http"
	"time"

	"demo-services/config"
	"demo-services/middleware/metrics"
	"demo-services/middleware/ratelimit"
	"demo-services/middleware/ratelimit/infra"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

const (
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

type Options struct {
	Logger zerolog.Logger
	// Metrics nil desliga /metrics e a instrumentação.
	Metrics *metrics.Metrics
	Limits  config.Limits
}

// NewHandler monta o handler final. register recebe o router das rotas do
// serviço; /healthz e /metrics ficam fora da proteção de tráfego e nunca
// dependem de recursos externos.
//
// ctx controla o janitor do rate limit.
func NewHandler(ctx context.Context, register func(*mux.Router), opts Options) http.Handler {
	router := mux.NewRouter()
	router.Use(opts.Metrics.Middleware)

	router.HandleFunc(HealthPath, Healthz).Methods(http.MethodGet, http.MethodHead)
	if opts.Metrics != nil {
		router.Handle(MetricsPath, opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	app := router.NewRoute().Subrouter()
	for _, mw := range trafficMiddlewares(ctx, opts) {
		app.Use(mw)
	}
	register(app)

	return accessLog(opts.Logger)(router)
}

func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// ordem: rate limit antes do limite de concorrência, para que clientes
// bloqueados não ocupem vaga.
func trafficMiddlewares(ctx context.Context, opts Options) []mux.MiddlewareFunc {
	l := opts.Limits
	onReject := func(r *http.Request, reason string) {
		opts.Metrics.Rejected(reason)
		hlog.FromRequest(r).Debug().Str("reason", reason).Msg("request rejected")
	}

	var mws []mux.MiddlewareFunc
	if l.RateEnabled {
		store := infra.NewBucketStore(l.RateRPS, l.RateBurst)
		store.StartJanitor(ctx)
		mws = append(mws, ratelimit.Middleware(ratelimit.Options{
			Store:               store,
			KeyHeader:           l.RateKeyHeader,
			TrustXForwardedFor:  l.TrustXFF,
			RetryAfter:          l.RetryAfter,
			AddRateLimitHeaders: l.AddHeaders,
			OnReject:            onReject,
		}))
	}
	mws = append(mws, ratelimit.ConcurrencyMiddleware(ratelimit.ConcurrencyOptions{
		Max:            l.ConcurrencyMax,
		AcquireTimeout: l.ConcurrencyTimeout,
		OnReject:       onReject,
	}))
	return mws
}

func accessLog(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		})(next)
		h = hlog.RemoteAddrHandler("remote_addr")(h)
		h = hlog.RequestIDHandler("req_id", "X-Request-Id")(h)
		return hlog.NewHandler(log)(h)
	}
}
