package main

import (
	"bytes"
	"sync"

	"github.com/bmpfilterd/bmpfilterd/api"
)

// syncObjectPool wraps sync.Pool for generic reuse, adapted from
// pool.SyncPool. reexecLauncher uses one to reuse the *bytes.Buffer it
// gob-encodes each worker's request into, since Launch runs once per
// accepted request on the dispatcher's hot path.
type syncObjectPool[T any] struct {
	pool *sync.Pool
}

func newSyncObjectPool[T any](create func() T) *syncObjectPool[T] {
	return &syncObjectPool[T]{pool: &sync.Pool{New: func() any { return create() }}}
}

// Get implements api.ObjectPool[T].
func (p *syncObjectPool[T]) Get() T { return p.pool.Get().(T) }

// Put implements api.ObjectPool[T].
func (p *syncObjectPool[T]) Put(obj T) { p.pool.Put(obj) }

var _ api.ObjectPool[*bytes.Buffer] = (*syncObjectPool[*bytes.Buffer])(nil)

var stdinBufferPool = newSyncObjectPool(func() *bytes.Buffer { return new(bytes.Buffer) })
