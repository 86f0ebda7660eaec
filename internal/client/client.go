// Package client implements the client stub (C7): produce one request,
// open the response FIFO, and write the filtered bytes to the output
// path, per spec.md §4.6.
package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bmpfilterd/bmpfilterd/api"
	"github.com/bmpfilterd/bmpfilterd/internal/filter"
	"github.com/bmpfilterd/bmpfilterd/internal/ipc"
)

// Run executes the full client sequence and returns the status the
// server reported. A non-nil error other than a non-OK status means the
// request never reached the server at all (e.g. it isn't running).
func Run(ctx context.Context, inputPath, outputPath string, filterID filter.ID) (api.StatusCode, error) {
	ring, err := ipc.OpenRingChannel()
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer ring.Close()

	clientID := int32(os.Getpid())

	respFIFO, err := ipc.CreateResponseFIFO(clientID)
	if err != nil {
		return 0, fmt.Errorf("create response fifo: %w", err)
	}
	defer respFIFO.Unlink()

	var req ipc.Request
	req.ClientID = clientID
	req.SetPath(inputPath)
	req.FilterID = ipc.FilterID(filterID)

	if err := ring.Produce(ctx, req); err != nil {
		return 0, fmt.Errorf("produce request: %w", err)
	}

	readFile, err := respFIFO.OpenRead()
	if err != nil {
		return 0, fmt.Errorf("open response fifo for read: %w", err)
	}
	defer readFile.Close()

	status, err := ipc.ReadStatus(readFile)
	if err != nil {
		return 0, fmt.Errorf("read response status: %w", err)
	}
	if status != api.StatusOK {
		return status, nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return status, fmt.Errorf("stat %s: %w", inputPath, err)
	}

	out, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return status, fmt.Errorf("create %s: %w", outputPath, err)
	}
	defer out.Close()

	// The client's expected-response-length contract: every filter in
	// this repository preserves the input's on-disk byte length, so
	// reading exactly info.Size() bytes is correct (spec.md §9).
	if _, err := io.CopyN(out, readFile, info.Size()); err != nil {
		return status, fmt.Errorf("write %s: %w", outputPath, err)
	}
	return status, nil
}
