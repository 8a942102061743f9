package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"demo-services/service/counter/domain"
)

const (
	DefaultTimeout             = 2 * time.Second
	DefaultKey     domain.Name = "hits"
)

// HitService registra um acesso no contador.
type HitService struct {
	Counter domain.Counter
	// Key é o nome do contador no store. Se vazio, usa DefaultKey.
	Key domain.Name
	// Timeout limita a chamada ao store. Se <= 0, usa DefaultTimeout.
	Timeout time.Duration
}

// Hit faz exatamente uma tentativa de incremento.
// O valor retornado é o do próprio incremento atômico, não uma leitura posterior.
func (s HitService) Hit(ctx context.Context) (int64, error) {
	if s.Counter == nil {
		return 0, fmt.Errorf("%w: no counter configured", domain.ErrStoreUnavailable)
	}

	if s.Key == "" {
		s.Key = DefaultKey
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	n, err := s.Counter.Incr(ctx, s.Key)
	if err == nil {
		return n, nil
	}

	// timeout/cancelamento viram indisponibilidade mesmo que a implementação
	// não tenha classificado o erro.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			return 0, fmt.Errorf("%w: incr %s: %v", domain.ErrStoreUnavailable, s.Key, err)
		}
	}
	return 0, fmt.Errorf("incr %s: %w", s.Key, err)
}
