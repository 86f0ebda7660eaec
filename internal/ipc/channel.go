package ipc

import (
	"context"
	"fmt"
)

// RingChannel is the cross-process request channel (C1): a bounded
// circular buffer of Request records in shared memory, guarded by the
// three-semaphore producer/consumer protocol of spec.md §4.1.
type RingChannel struct {
	seg     *Segment
	empty   *FutexSem // tokens of free slots, initial RingCap
	full    *FutexSem // tokens of pending requests, initial 0
	writeMu *FutexSem // binary, serializes concurrent producers

	readIndex uint32 // server-private consumer cursor; never touched by producers
}

// CreateRingChannel creates the ring segment and its three semaphores with
// exclusive-create semantics. A collision on any one of them means another
// server instance owns the names (spec.md §4.5 step 6/9); partially
// created objects are torn down before returning the error.
func CreateRingChannel() (*RingChannel, error) {
	seg, err := CreateSegment(RingSegmentName)
	if err != nil {
		return nil, fmt.Errorf("create ring segment: %w", err)
	}
	empty, err := CreateFutexSem(SemEmptyName, RingCap)
	if err != nil {
		seg.Close()
		UnlinkSegment(RingSegmentName)
		return nil, fmt.Errorf("create empty semaphore: %w", err)
	}
	full, err := CreateFutexSem(SemFullName, 0)
	if err != nil {
		empty.Close()
		UnlinkFutexSem(SemEmptyName)
		seg.Close()
		UnlinkSegment(RingSegmentName)
		return nil, fmt.Errorf("create full semaphore: %w", err)
	}
	writeMu, err := CreateFutexSem(SemWriteName, 1)
	if err != nil {
		full.Close()
		UnlinkFutexSem(SemFullName)
		empty.Close()
		UnlinkFutexSem(SemEmptyName)
		seg.Close()
		UnlinkSegment(RingSegmentName)
		return nil, fmt.Errorf("create write semaphore: %w", err)
	}
	return &RingChannel{seg: seg, empty: empty, full: full, writeMu: writeMu}, nil
}

// OpenRingChannel opens the existing ring objects. ENOENT on the first
// lookup is reported as api.ErrServerNotRunning by the underlying open
// calls — the server isn't running (spec.md §4.1 "Failure").
func OpenRingChannel() (*RingChannel, error) {
	seg, err := OpenSegment(RingSegmentName)
	if err != nil {
		return nil, err
	}
	empty, err := OpenFutexSem(SemEmptyName)
	if err != nil {
		seg.Close()
		return nil, err
	}
	full, err := OpenFutexSem(SemFullName)
	if err != nil {
		empty.Close()
		seg.Close()
		return nil, err
	}
	writeMu, err := OpenFutexSem(SemWriteName)
	if err != nil {
		full.Close()
		empty.Close()
		seg.Close()
		return nil, err
	}
	return &RingChannel{seg: seg, empty: empty, full: full, writeMu: writeMu}, nil
}

// Produce implements the producer protocol: acquire empty, acquire the
// write mutex, write the slot and advance the cursor, release the write
// mutex, then release full. Releasing full strictly after the mutex
// unlock is what guarantees the consumer never observes a half-written
// slot (spec.md §4.1).
func (c *RingChannel) Produce(ctx context.Context, req Request) error {
	if err := c.empty.Acquire(ctx); err != nil {
		return fmt.Errorf("acquire empty: %w", err)
	}
	if err := c.writeMu.Acquire(ctx); err != nil {
		c.empty.Release()
		return fmt.Errorf("acquire write-mutex: %w", err)
	}
	ring := c.seg.Ring()
	idx := ring.WriteIndex
	ring.Slots[idx] = req
	ring.WriteIndex = (idx + 1) % RingCap
	if err := c.writeMu.Release(); err != nil {
		return fmt.Errorf("release write-mutex: %w", err)
	}
	if err := c.full.Release(); err != nil {
		return fmt.Errorf("release full: %w", err)
	}
	return nil
}

// Consume implements the consumer protocol: acquire full, copy the slot
// at the private read cursor, advance it, release empty. It is
// server-only and must never be called from more than one goroutine — the
// ring is single-consumer by construction (spec.md §3).
//
// Per spec.md §4.5's dispatcher pseudocode, the shutdown check happens
// strictly between acquiring full and touching a ring slot: the token
// PostShutdownWakeup posts is a pure wakeup sentinel, not a real request,
// so if ctx is already done when Consume wakes it must return without
// reading a slot or releasing empty.
func (c *RingChannel) Consume(ctx context.Context) (Request, error) {
	if err := c.full.Acquire(ctx); err != nil {
		var zero Request
		return zero, err
	}
	if ctx.Err() != nil {
		var zero Request
		return zero, ctx.Err()
	}
	ring := c.seg.Ring()
	req := ring.Slots[c.readIndex]
	c.readIndex = (c.readIndex + 1) % RingCap
	if err := c.empty.Release(); err != nil {
		return req, fmt.Errorf("release empty: %w", err)
	}
	return req, nil
}

// PostShutdownWakeup posts one full token so a consumer blocked in
// Consume unblocks and can observe that shutdown was requested, per
// spec.md §4.1's shutdown wake-up mechanism.
func (c *RingChannel) PostShutdownWakeup() error {
	return c.full.Release()
}

// EmptyTokens and FullTokens expose the current semaphore values for
// debug/metrics probes and for the invariant empty+full==RingCap.
func (c *RingChannel) EmptyTokens() int32 { return c.empty.Value() }
func (c *RingChannel) FullTokens() int32  { return c.full.Value() }

// Close unmaps the segment and closes the semaphores without unlinking
// the named objects (client side, or a server that will resume later).
func (c *RingChannel) Close() error {
	var firstErr error
	for _, closer := range []interface{ Close() error }{c.writeMu, c.full, c.empty, c.seg} {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Unlink removes all four named objects. Only the owning server calls
// this, during its own shutdown sequence.
func (c *RingChannel) Unlink() error {
	var firstErr error
	for _, err := range []error{
		UnlinkFutexSem(SemWriteName),
		UnlinkFutexSem(SemFullName),
		UnlinkFutexSem(SemEmptyName),
		UnlinkSegment(RingSegmentName),
	} {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
