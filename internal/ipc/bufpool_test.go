package ipc

import "testing"

func TestChunkBufferPoolAcquireReturnsRequestedLength(t *testing.T) {
	p := newChunkBufferPool(2, 1024)
	buf := p.Acquire(100)
	if len(buf) != 100 {
		t.Fatalf("Acquire(100) returned length %d, want 100", len(buf))
	}
}

func TestChunkBufferPoolAcquireBeyondPooledSizeAllocatesFresh(t *testing.T) {
	p := newChunkBufferPool(1, 16)
	buf := p.Acquire(64)
	if len(buf) != 64 {
		t.Fatalf("Acquire(64) on a 16-byte pool returned length %d, want 64", len(buf))
	}
}

func TestChunkBufferPoolReleaseThenAcquireReusesBuffer(t *testing.T) {
	p := newChunkBufferPool(1, 32)
	buf := p.Acquire(32)
	p.Release(buf)

	reused := p.Acquire(32)
	if len(reused) != 32 {
		t.Fatalf("Acquire after Release returned length %d, want 32", len(reused))
	}
}
