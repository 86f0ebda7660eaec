//go:build !linux

// File: internal/ipc/futexsem_other.go
// Stub implementation for unsupported platforms: this service's named
// semaphores require futex(2), which is Linux-specific. Matches the
// teacher corpus's convention of a hard "not supported" stub rather than
// faking cross-process semantics with process-local primitives.
package ipc

import (
	"context"
	"errors"
)

// ErrPlatformNotSupported is returned by every FutexSem constructor on a
// non-Linux GOOS.
var ErrPlatformNotSupported = errors.New("ipc: named semaphores require linux")

// FutexSem is the unsupported-platform stand-in for the Linux futex-backed
// semaphore.
type FutexSem struct{}

func CreateFutexSem(name string, initial int32) (*FutexSem, error) {
	return nil, ErrPlatformNotSupported
}

func OpenFutexSem(name string) (*FutexSem, error) {
	return nil, ErrPlatformNotSupported
}

func (s *FutexSem) Acquire(ctx context.Context) error { return ErrPlatformNotSupported }
func (s *FutexSem) Release() error                    { return ErrPlatformNotSupported }
func (s *FutexSem) Value() int32                      { return 0 }
func (s *FutexSem) Close() error                      { return nil }

func UnlinkFutexSem(name string) error { return nil }
