package domain

import (
	"context"
	"time"
)

// Key identifica um cliente (IP, API key, ...).
type Key string

// Limiter decide se uma ação é permitida agora (ex: token bucket).
type Limiter interface {
	Allow() bool
}

// LimiterStore entrega o limiter de cada cliente.
type LimiterStore interface {
	Get(Key) Limiter
}

type Decision struct {
	Allowed bool
	// RetryAfter é a espera recomendada quando bloqueado. Zero quando permitido.
	RetryAfter time.Duration
}

// SlotPool é um recurso de capacidade finita.
//
// Acquire bloqueia até conseguir uma vaga ou até o ctx encerrar; o release
// retornado deve ser chamado exatamente uma vez.
type SlotPool interface {
	Acquire(ctx context.Context) (release func(), ok bool)
}
