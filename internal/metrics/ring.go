package metrics

import (
	"sync"

	"github.com/bmpfilterd/bmpfilterd/api"
)

// ringBuffer is a bounded circular buffer implementing api.Ring[T], adapted
// from internal/concurrency/ring.go: the teacher's version uses atomic
// head/tail counters for a hot single-producer/single-consumer I/O path,
// but the completions log below is written once per finished request and
// read once per debug snapshot, so a plain mutex is the simpler, equally
// correct fit here.
type ringBuffer[T any] struct {
	mu   sync.Mutex
	data []T
	head int
	size int
}

func newRingBuffer[T any](capacity int) *ringBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ringBuffer[T]{data: make([]T, capacity)}
}

// Enqueue implements api.Ring[T].
func (r *ringBuffer[T]) Enqueue(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.size == len(r.data) {
		return false
	}
	tail := (r.head + r.size) % len(r.data)
	r.data[tail] = item
	r.size++
	return true
}

// Dequeue implements api.Ring[T].
func (r *ringBuffer[T]) Dequeue() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.size == 0 {
		var zero T
		return zero, false
	}
	item := r.data[r.head]
	r.head = (r.head + 1) % len(r.data)
	r.size--
	return item, true
}

// Len implements api.Ring[T].
func (r *ringBuffer[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Cap implements api.Ring[T].
func (r *ringBuffer[T]) Cap() int {
	return len(r.data)
}

var _ api.Ring[int] = (*ringBuffer[int])(nil)
