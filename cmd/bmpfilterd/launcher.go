package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/bmpfilterd/bmpfilterd/internal/ipc"
	"github.com/bmpfilterd/bmpfilterd/internal/worker"
)

// reexecLauncher implements serverloop.Launcher by re-exec'ing the
// running binary into the hidden "runworker" subcommand, the Go-native
// substitute for fork()+exec() (SPEC_FULL.md §1). The accepted request
// is encoded onto the child's stdin instead of relying on an inherited
// shared-memory mapping, since a re-exec'd process starts with a clean
// address space.
type reexecLauncher struct {
	log *zap.SugaredLogger
}

func (l *reexecLauncher) Launch(ctx context.Context, req ipc.Request) (*exec.Cmd, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable path: %w", err)
	}

	buf := stdinBufferPool.Get()
	buf.Reset()
	if err := worker.EncodeRequest(buf, worker.Request{
		ClientID: req.ClientID,
		Path:     req.PathString(),
		FilterID: filterIDOf(req.FilterID),
	}); err != nil {
		stdinBufferPool.Put(buf)
		return nil, err
	}
	// Copy out before returning buf to the pool: cmd.Stdin must stay valid
	// for the lifetime of the child process, well past this function.
	payload := bytes.NewReader(append([]byte(nil), buf.Bytes()...))
	stdinBufferPool.Put(buf)

	cmd := exec.Command(exe, "runworker")
	cmd.Stdin = payload
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start worker process: %w", err)
	}
	return cmd, nil
}
