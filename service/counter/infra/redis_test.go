package infra

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"demo-services/service/counter/domain"

	"github.com/alicebob/miniredis/v2"
)

func newTestCounter(t *testing.T, opts ...RedisCounterOption) (*RedisCounter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(RedisOptions{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisCounter(rdb, opts...), mr
}

func TestRedisCounter_IncrementsByOne(t *testing.T) {
	c, mr := newTestCounter(t)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := c.Incr(ctx, "hits")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	v, err := mr.Get("hits")
	if err != nil {
		t.Fatalf("expected key in store: %v", err)
	}
	if v != "5" {
		t.Fatalf("expected store value 5, got %q", v)
	}
}

func TestRedisCounter_ContinuesFromExistingValue(t *testing.T) {
	c, mr := newTestCounter(t)
	if err := mr.Set("hits", "99"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := c.Incr(context.Background(), "hits")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestRedisCounter_UsesPrefix(t *testing.T) {
	c, mr := newTestCounter(t, WithKeyPrefix("demo:"))

	if _, err := c.Incr(context.Background(), "hits"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, err := mr.Get("demo:hits"); err != nil || v != "1" {
		t.Fatalf("expected demo:hits=1, got %q (%v)", v, err)
	}
}

func TestRedisCounter_ConcurrentIncrementsAreNotLost(t *testing.T) {
	c, mr := newTestCounter(t)

	const workers = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Incr(context.Background(), "hits"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, _ := mr.Get("hits"); v != "50" {
		t.Fatalf("expected 50, got %q", v)
	}
}

func TestRedisCounter_NonIntegerValueIsRejected(t *testing.T) {
	c, mr := newTestCounter(t)
	if err := mr.Set("hits", "not-a-number"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := c.Incr(context.Background(), "hits")
	if !errors.Is(err, domain.ErrStoreRejected) {
		t.Fatalf("expected ErrStoreRejected, got %v", err)
	}
}

func TestRedisCounter_UnreachableStoreIsUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	addr := mr.Addr()
	mr.Close()

	rdb := NewRedisClient(RedisOptions{Addr: addr, DialTimeout: 200 * time.Millisecond})
	defer func() { _ = rdb.Close() }()
	c := NewRedisCounter(rdb)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := c.Incr(ctx, "hits"); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if err := c.Ping(ctx); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ping ErrStoreUnavailable, got %v", err)
	}
}

func TestRedisCounter_PingOK(t *testing.T) {
	c, _ := newTestCounter(t)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
