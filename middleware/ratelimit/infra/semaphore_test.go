package infra

import (
	"context"
	"testing"
	"time"
)

func TestSemaphore_BlocksWhenFull(t *testing.T) {
	s := NewSemaphore(1)

	release, ok := s.Acquire(context.Background())
	if !ok {
		t.Fatalf("expected first acquire to succeed")
	}
	if s.InUse() != 1 {
		t.Fatalf("expected 1 slot in use, got %d", s.InUse())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, ok := s.Acquire(ctx); ok {
		t.Fatalf("expected second acquire to fail while full")
	}

	release()
	if _, ok := s.Acquire(context.Background()); !ok {
		t.Fatalf("expected acquire after release")
	}
}

func TestSemaphore_ReleaseIsIdempotent(t *testing.T) {
	s := NewSemaphore(2)

	r1, _ := s.Acquire(context.Background())
	_, _ = s.Acquire(context.Background())
	r1()
	r1()

	if s.InUse() != 1 {
		t.Fatalf("expected double release to free one slot only, got %d in use", s.InUse())
	}
}
