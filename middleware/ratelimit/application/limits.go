package application

import (
	"context"
	"time"

	"demo-services/middleware/ratelimit/domain"
)

const DefaultRetryAfter = 1 * time.Second

// RateService decide se o cliente pode seguir.
type RateService struct {
	Store      domain.LimiterStore
	RetryAfter time.Duration
}

func (s RateService) Decide(key domain.Key) domain.Decision {
	if s.Store == nil {
		return domain.Decision{Allowed: true}
	}
	lim := s.Store.Get(key)
	if lim == nil || lim.Allow() {
		return domain.Decision{Allowed: true}
	}

	retry := s.RetryAfter
	if retry <= 0 {
		retry = DefaultRetryAfter
	}
	return domain.Decision{Allowed: false, RetryAfter: retry}
}

// SlotService adquire uma vaga do pool.
//   - AcquireTimeout <= 0: espera até o ctx cancelar
//   - AcquireTimeout > 0: desiste depois do timeout
type SlotService struct {
	Pool           domain.SlotPool
	AcquireTimeout time.Duration
}

func (s SlotService) Acquire(ctx context.Context) (func(), bool) {
	if s.Pool == nil {
		return func() {}, true
	}
	if s.AcquireTimeout <= 0 {
		return s.Pool.Acquire(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, s.AcquireTimeout)
	defer cancel()
	return s.Pool.Acquire(ctx)
}
