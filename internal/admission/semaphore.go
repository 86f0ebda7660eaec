// Package admission implements the server's in-process admission
// controller: a resizable counting semaphore bounding how many requests
// are being worked on concurrently (spec.md §4.5's `workers` token).
//
// golang.org/x/sync/semaphore.Weighted cannot shrink below the number of
// outstanding acquisitions, which a config reload that lowers max_workers
// requires, so this is a small hand-rolled semaphore instead — the
// teacher's api.Executor.Resize contract is the model this follows.
package admission

import (
	"context"
	"sync"
)

// Semaphore is a counting semaphore whose capacity can grow or shrink at
// runtime, implementing the api.Executor-style Resize contract against a
// token count instead of a goroutine count.
type Semaphore struct {
	mu       sync.Mutex
	cond     *sync.Cond
	capacity int
	inUse    int
}

// New creates a semaphore with the given initial capacity.
func New(capacity int) *Semaphore {
	s := &Semaphore{capacity: capacity}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Acquire blocks until a token is available or ctx is done.
func (s *Semaphore) Acquire(ctx context.Context) error {
	done := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		close(done)
		s.cond.Broadcast()
	})
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for s.inUse >= s.capacity {
		select {
		case <-done:
			return ctx.Err()
		default:
		}
		s.cond.Wait()
	}
	s.inUse++
	return nil
}

// Release returns one token.
func (s *Semaphore) Release() {
	s.mu.Lock()
	s.inUse--
	s.mu.Unlock()
	s.cond.Broadcast()
}

// InUse reports how many tokens are currently held, for debug/metrics
// probes.
func (s *Semaphore) InUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inUse
}

// Resize changes the capacity. Growing wakes any blocked Acquire callers
// immediately. Shrinking below the current in-use count is allowed: it
// simply stops admitting new requests until enough Release calls bring
// inUse back under the new capacity, reconciling with the reload
// semantics of spec.md §4.5 ("future acquisitions observe the new
// limit").
func (s *Semaphore) Resize(newCapacity int) {
	s.mu.Lock()
	s.capacity = newCapacity
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Capacity returns the current capacity.
func (s *Semaphore) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capacity
}
