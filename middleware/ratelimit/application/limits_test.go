package application

import (
	"context"
	"testing"
	"time"

	"demo-services/middleware/ratelimit/domain"
)

type fakeLimiter bool

func (f fakeLimiter) Allow() bool { return bool(f) }

type fakeStore struct {
	lim  domain.Limiter
	keys []domain.Key
}

func (s *fakeStore) Get(k domain.Key) domain.Limiter {
	s.keys = append(s.keys, k)
	return s.lim
}

func TestRateService_AllowsWhenNoStore(t *testing.T) {
	dec := RateService{}.Decide("k")
	if !dec.Allowed || dec.RetryAfter != 0 {
		t.Fatalf("expected allowed without retry, got %+v", dec)
	}
}

func TestRateService_UsesKeyAndAllows(t *testing.T) {
	store := &fakeStore{lim: fakeLimiter(true)}
	dec := RateService{Store: store, RetryAfter: 5 * time.Second}.Decide("10.0.0.1")
	if !dec.Allowed {
		t.Fatalf("expected allowed")
	}
	if len(store.keys) != 1 || store.keys[0] != "10.0.0.1" {
		t.Fatalf("expected lookup by client key, got %v", store.keys)
	}
}

func TestRateService_BlocksWithDefaultRetryAfter(t *testing.T) {
	dec := RateService{Store: &fakeStore{lim: fakeLimiter(false)}}.Decide("k")
	if dec.Allowed {
		t.Fatalf("expected blocked")
	}
	if dec.RetryAfter != DefaultRetryAfter {
		t.Fatalf("expected %s, got %s", DefaultRetryAfter, dec.RetryAfter)
	}
}

func TestRateService_BlocksWithConfiguredRetryAfter(t *testing.T) {
	dec := RateService{Store: &fakeStore{lim: fakeLimiter(false)}, RetryAfter: 2500 * time.Millisecond}.Decide("k")
	if dec.Allowed || dec.RetryAfter != 2500*time.Millisecond {
		t.Fatalf("expected blocked with 2.5s, got %+v", dec)
	}
}

type blockingPool struct{}

func (blockingPool) Acquire(ctx context.Context) (func(), bool) {
	<-ctx.Done()
	return nil, false
}

type countingPool struct{ acquired int }

func (p *countingPool) Acquire(context.Context) (func(), bool) {
	p.acquired++
	return func() {}, true
}

func TestSlotService_AllowsWhenNoPool(t *testing.T) {
	release, ok := SlotService{}.Acquire(context.Background())
	if !ok {
		t.Fatalf("expected ok")
	}
	release()
}

func TestSlotService_GivesUpAfterTimeout(t *testing.T) {
	svc := SlotService{Pool: blockingPool{}, AcquireTimeout: 10 * time.Millisecond}
	if _, ok := svc.Acquire(context.Background()); ok {
		t.Fatalf("expected timeout and ok=false")
	}
}

func TestSlotService_NoTimeoutDelegatesToPool(t *testing.T) {
	pool := &countingPool{}
	if _, ok := (SlotService{Pool: pool}).Acquire(context.Background()); !ok {
		t.Fatalf("expected ok")
	}
	if pool.acquired != 1 {
		t.Fatalf("expected one Acquire, got %d", pool.acquired)
	}
}
