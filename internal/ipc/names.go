// Package ipc implements the cross-process request channel (C1), the
// per-request response FIFO (C2), and the server's single-instance pidfile
// lock. Every named object here corresponds to a kernel object named in
// spec.md §6: a shared-memory ring, three named counting semaphores, and
// one FIFO per in-flight request.
package ipc

import (
	"strconv"
	"time"
)

const (
	// PathCap bounds the byte length of a request's path field. Fixed so
	// ring slots are addressable by offset across independently-mapped
	// processes.
	PathCap = 4096

	// RingCap is the number of request slots held by the ring at once.
	RingCap = 10

	// MaxFileSize is the largest input image the worker will map.
	MaxFileSize = 100 << 20

	// WriteTimeout bounds a single response-FIFO chunk write. A client
	// that vanishes mid-read must not pin a worker forever.
	WriteTimeout = 5 * time.Second

	// ChunkSize is the platform's atomic pipe-write size (PIPE_BUF on
	// Linux). The worker streams its response in chunks of this size.
	ChunkSize = 4096
)

// Named kernel objects, global namespace (spec.md §6).
const (
	RingSegmentName  = "filter_request_fifo"
	SemEmptyName     = "mutex_empty"
	SemFullName      = "mutex_full"
	SemWriteName     = "mutex_write"
	ServerPIDFile    = "/tmp/bmp_server.pid"
	ResponseFIFOBase = "/tmp/fifo_rep_"
)

// ResponseFIFOPath composes the per-client response FIFO path.
func ResponseFIFOPath(clientID int32) string {
	return ResponseFIFOBase + strconv.Itoa(int(clientID))
}
