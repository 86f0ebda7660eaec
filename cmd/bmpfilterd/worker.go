package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/bmpfilterd/bmpfilterd/internal/config"
	"github.com/bmpfilterd/bmpfilterd/internal/filter"
	"github.com/bmpfilterd/bmpfilterd/internal/ipc"
	"github.com/bmpfilterd/bmpfilterd/internal/logging"
	"github.com/bmpfilterd/bmpfilterd/internal/worker"
)

func filterIDOf(id ipc.FilterID) filter.ID { return filter.ID(id) }

// runWorker is the hidden runworker subcommand body: decode the request
// the parent wrote to our stdin, then execute the full worker state
// machine (internal/worker.Run).
func runWorker(ctx context.Context) error {
	req, err := worker.DecodeRequest(os.Stdin)
	if err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	log, _, err := logging.New(zapcore.InfoLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := config.LoadFirstAvailable()
	return worker.Run(ctx, req, cfg, log)
}
