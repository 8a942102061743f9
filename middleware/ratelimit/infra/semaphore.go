package infra

import (
	"context"
	"sync"

	"demo-services/middleware/ratelimit/domain"
)

// Semaphore limita requisições simultâneas a max vagas.
type Semaphore struct {
	slots chan struct{}
}

var _ domain.SlotPool = (*Semaphore)(nil)

func NewSemaphore(max int) *Semaphore {
	return &Semaphore{slots: make(chan struct{}, max)}
}

func (s *Semaphore) Acquire(ctx context.Context) (func(), bool) {
	select {
	case s.slots <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-s.slots }) }, true
	case <-ctx.Done():
		return nil, false
	}
}

// InUse retorna quantas vagas estão ocupadas.
func (s *Semaphore) InUse() int { return len(s.slots) }
