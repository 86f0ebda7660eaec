// Package api
// Author: momentics
//
// In-process ring buffer contract, used wherever a bounded FIFO of
// already-decoded values needs to move between goroutines without a lock.
// The cross-process request ring (shared memory, futex-guarded) has its
// own concrete type in internal/ipc and does not implement this interface:
// its slots must be addressable by raw byte offset from another process.

package api

// Ring contract for a single-producer/single-consumer in-process FIFO.
type Ring[T any] interface {
    // Enqueue adds item, returns false if buffer full.
    Enqueue(item T) bool

    // Dequeue removes and returns the oldest item, false if buffer empty.
    Dequeue() (T, bool)

    // Len returns number of items currently in buffer.
    Len() int

    // Cap returns fixed buffer capacity.
    Cap() int
}
