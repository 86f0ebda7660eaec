package ipc

import "github.com/bmpfilterd/bmpfilterd/api"

// chunkBufferPool is a fixed-capacity byte-slice pool implementing
// api.BytePool, adapted from pool.SimpleBytePool: a channel of
// pre-sized buffers with a fallback allocation when the channel is
// drained. It backs WriteChunked's per-chunk buffer below so a busy
// worker reusing the same response-FIFO write path doesn't allocate
// ChunkSize bytes on every call.
type chunkBufferPool struct {
	bufs chan []byte
	size int
}

func newChunkBufferPool(capacity, size int) *chunkBufferPool {
	p := &chunkBufferPool{bufs: make(chan []byte, capacity), size: size}
	for i := 0; i < capacity; i++ {
		p.bufs <- make([]byte, size)
	}
	return p
}

// Acquire implements api.BytePool.
func (p *chunkBufferPool) Acquire(n int) []byte {
	select {
	case b := <-p.bufs:
		if cap(b) >= n {
			return b[:n]
		}
		return make([]byte, n)
	default:
		return make([]byte, n)
	}
}

// Release implements api.BytePool.
func (p *chunkBufferPool) Release(buf []byte) {
	buf = buf[:cap(buf)]
	select {
	case p.bufs <- buf:
	default:
	}
}

var _ api.BytePool = (*chunkBufferPool)(nil)

// chunkPool is the package-level pool every WriteChunked call draws from.
var chunkPool = newChunkBufferPool(4, ChunkSize)
