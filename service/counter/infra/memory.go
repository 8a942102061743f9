package infra

import (
	"context"
	"sync"
	"sync/atomic"

	"demo-services/service/counter/domain"
)

// MemoryCounter é um domain.Counter em memória.
//
// Não é compartilhado entre processos e não sobrevive a restart; não é indicado para produção.
type MemoryCounter struct {
	counters sync.Map // domain.Name -> *atomic.Int64
}

func NewMemoryCounter() *MemoryCounter { return &MemoryCounter{} }

func (m *MemoryCounter) Incr(ctx context.Context, name domain.Name) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	v, _ := m.counters.LoadOrStore(name, new(atomic.Int64))
	return v.(*atomic.Int64).Add(1), nil
}
