package ipc

import (
	"errors"
	"syscall"
)

// retryEINTR runs fn until it succeeds or fails with an error other than
// EINTR, mirroring original_source/shared/full_io.c's safe_read/safe_write
// retry-on-interrupt loops.
func retryEINTR(fn func() (int, error)) (int, error) {
	for {
		n, err := fn()
		if err != nil && errors.Is(err, syscall.EINTR) {
			continue
		}
		return n, err
	}
}
