// Package worker implements the per-request worker (C4): the state
// machine that maps an input file, runs the filter engine across a row-
// partitioned goroutine pool, and streams the result back over the
// response FIFO, per spec.md §4.4.
package worker

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/bmpfilterd/bmpfilterd/api"
	"github.com/bmpfilterd/bmpfilterd/internal/bmp"
	"github.com/bmpfilterd/bmpfilterd/internal/config"
	"github.com/bmpfilterd/bmpfilterd/internal/filter"
	"github.com/bmpfilterd/bmpfilterd/internal/ipc"
)

// State names the worker's position in its state machine, exposed only
// for logging/debug probes — spec.md §4.4's Opening → MappingInput →
// Filtering → Responding → Done/Failing sequence.
type State int

const (
	StateOpening State = iota
	StateMappingInput
	StateFiltering
	StateResponding
	StateDone
	StateFailing
)

func (s State) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateMappingInput:
		return "mapping-input"
	case StateFiltering:
		return "filtering"
	case StateResponding:
		return "responding"
	case StateDone:
		return "done"
	case StateFailing:
		return "failing"
	default:
		return "unknown"
	}
}

// Request is everything the worker needs, decoded from the ring slot it
// was launched with.
type Request struct {
	ClientID int32
	Path     string
	FilterID filter.ID
}

// Run executes the full worker sequence for one request: open the
// response FIFO, map and validate the input, dispatch the filter across
// goroutines, and stream the response. Every exit path — success or
// failure — writes exactly one status word if the FIFO was successfully
// opened, matching spec.md §4.4's "any step may transition directly to
// Failing" rule.
func Run(ctx context.Context, req Request, cfg config.Config, log *zap.SugaredLogger) error {
	state := StateOpening
	log = log.With("client_id", req.ClientID, "filter_id", req.FilterID)
	log.Debugw("worker starting", "state", state)

	fifoFile, err := openResponseFIFOForWrite(ctx, req.ClientID)
	if err != nil {
		// No FIFO to report through; nothing to do but surface the error
		// to the server loop for logging.
		return fmt.Errorf("open response fifo: %w", err)
	}
	defer fifoFile.Close()

	fail := func(state State, statusErr error) error {
		log.Warnw("worker failing", "state", StateFailing, "cause", statusErr)
		_ = ipc.WriteStatus(fifoFile, api.StatusOf(statusErr))
		return statusErr
	}

	state = StateMappingInput
	info, err := os.Stat(req.Path)
	if err != nil {
		return fail(state, fmt.Errorf("%w: stat %s: %v", api.ErrNotFound, req.Path, err))
	}
	if info.Size() > ipc.MaxFileSize {
		return fail(state, fmt.Errorf("%w: %s is %d bytes, max is %d", api.ErrFileTooLarge, req.Path, info.Size(), ipc.MaxFileSize))
	}

	img, err := bmp.Load(req.Path)
	if err != nil {
		return fail(state, fmt.Errorf("%w: %v", api.ErrInvalidArgument, err))
	}
	defer img.Close()

	entry, ok := filter.ByID(req.FilterID)
	if !ok {
		return fail(state, fmt.Errorf("%w: unknown filter id %d", api.ErrInvalidArgument, req.FilterID))
	}

	state = StateFiltering
	threadCount := cfg.ThreadCount(info.Size(), ipc.MaxFileSize)
	log.Debugw("dispatching filter", "state", state, "filter", entry.Name, "thread_count", threadCount)

	var reference []byte
	if entry.Kind == filter.KindConvolution {
		reference = img.Reference()
	}
	height := img.DIBHeader.Height
	if height < 0 {
		height = -height
	}
	dispatchErr := filter.Dispatch(threadCount, height, func(startRow, endRow int32) {
		entry.Func(filter.ThreadArgs{
			Image:     img,
			StartRow:  startRow,
			EndRow:    endRow,
			Height:    height,
			Reference: reference,
		})
	})
	if dispatchErr != nil {
		return fail(state, fmt.Errorf("%w: %v", api.ErrInternal, dispatchErr))
	}

	state = StateResponding
	if err := ipc.WriteStatus(fifoFile, api.StatusOK); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	if err := writeImageBody(fifoFile, img); err != nil {
		return fmt.Errorf("write response body: %w", err)
	}

	state = StateDone
	log.Debugw("worker finished", "state", state)
	return nil
}

// openResponseFIFOForWrite opens the FIFO in a goroutine and races it
// against ctx, so a shutdown (or a client that created its FIFO and then
// vanished before opening it for read) doesn't pin a worker process
// forever blocked in open(2) — the original C worker has no such guard,
// but leaving a Go process stuck in an uninterruptible blocking syscall
// with no cancellation path is not acceptable here.
func openResponseFIFOForWrite(ctx context.Context, clientID int32) (*os.File, error) {
	type result struct {
		f   *os.File
		err error
	}
	done := make(chan result, 1)
	go func() {
		f, err := ipc.OpenResponseFIFOForWrite(clientID)
		done <- result{f, err}
	}()
	select {
	case r := <-done:
		return r.f, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// writeImageBody streams the filtered bytes back to the client straight
// out of the worker's own copy-on-write mapping. The mapping is
// MAP_PRIVATE (internal/bmp.Load), so the mutated pixels live only in
// this process's private pages; re-reading the path here would see the
// original, unfiltered file.
func writeImageBody(fifoFile *os.File, img *bmp.Image) error {
	return ipc.WriteChunked(fifoFile, bytes.NewReader(img.Mapping))
}
