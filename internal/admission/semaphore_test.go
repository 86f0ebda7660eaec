package admission

import (
	"context"
	"testing"
	"time"
)

func TestAcquireBlocksAtCapacity(t *testing.T) {
	s := New(1)
	if err := s.Acquire(context.Background()); err != nil {
		t.Fatalf("first Acquire should succeed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := s.Acquire(ctx); err == nil {
		t.Fatal("second Acquire should block and time out at capacity 1")
	}
}

func TestReleaseUnblocksWaiter(t *testing.T) {
	s := New(1)
	if err := s.Acquire(context.Background()); err != nil {
		t.Fatalf("first Acquire should succeed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Acquire(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	s.Release()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("second Acquire should succeed after Release, got: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Release did not unblock the waiting Acquire")
	}
}

func TestResizeShrinkBelowInUseStopsAdmittingUntilReleased(t *testing.T) {
	s := New(2)
	s.Acquire(context.Background())
	s.Acquire(context.Background())

	s.Resize(1)
	if got := s.Capacity(); got != 1 {
		t.Fatalf("Capacity() = %d, want 1", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := s.Acquire(ctx); err == nil {
		t.Fatal("Acquire should still block: inUse (2) exceeds shrunk capacity (1)")
	}

	s.Release()
	s.Release()
	if err := s.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire should succeed once inUse drops under the new capacity: %v", err)
	}
}

func TestResizeGrowWakesBlockedAcquire(t *testing.T) {
	s := New(1)
	s.Acquire(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Acquire(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	s.Resize(2)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Acquire should succeed after growing capacity, got: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Resize(grow) did not wake the blocked Acquire")
	}
}
