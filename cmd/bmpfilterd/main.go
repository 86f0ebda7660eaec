// Command bmpfilterd is the BMP filter service's server: the admission
// controller and dispatcher (C5/C6) of spec.md §4.5, wired from
// internal/serverloop. Following sakateka-yanet2's cmd layout, the
// cobra root carries global flags and a hidden internal subcommand.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/bmpfilterd/bmpfilterd/internal/admission"
	"github.com/bmpfilterd/bmpfilterd/internal/config"
	"github.com/bmpfilterd/bmpfilterd/internal/daemon"
	"github.com/bmpfilterd/bmpfilterd/internal/ipc"
	"github.com/bmpfilterd/bmpfilterd/internal/logging"
	"github.com/bmpfilterd/bmpfilterd/internal/metrics"
	"github.com/bmpfilterd/bmpfilterd/internal/serverloop"
)

var (
	foreground bool
	reexeced   bool
)

var rootCmd = &cobra.Command{
	Use:   "bmpfilterd",
	Short: "BMP image filter service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

// runWorkerCmd is the hidden re-exec target the server loop launches per
// accepted request, replacing fork()+exec() with a subprocess entry
// point that reads its assignment off stdin (see internal/worker/wire.go).
var runWorkerCmd = &cobra.Command{
	Use:    "runworker",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorker(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&foreground, "foreground", "f", false, "run in the foreground instead of daemonizing")
	rootCmd.AddCommand(runWorkerCmd)
}

func main() {
	args := os.Args[1:]
	if isDaemon, rest := daemon.IsReexecedDaemon(args); isDaemon {
		reexeced = true
		args = rest
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bmpfilterd: %v\n", err)
		os.Exit(1)
	}
}

func runServer(ctx context.Context) error {
	if !foreground && !reexeced {
		return daemon.Daemonize(os.Args[1:]...)
	}

	log, err := newServerLogger(foreground)
	if err != nil {
		return err
	}
	defer log.Sync()

	pidFile, err := ipc.AcquirePIDFile()
	if err != nil {
		return fmt.Errorf("acquire pidfile: %w", err)
	}
	defer pidFile.Release()

	cfg := config.LoadFirstAvailable()
	store := config.NewStore(cfg)
	log.Infow("configuration loaded", "max_workers", cfg.MaxWorkers, "min_threads", cfg.MinThreads, "max_threads", cfg.MaxThreads)

	ring, err := ipc.CreateRingChannel()
	if err != nil {
		return fmt.Errorf("create ring channel: %w", err)
	}
	defer ring.Close()
	defer ring.Unlink()

	adm := admission.New(cfg.MaxWorkers)
	reg := metrics.New()
	metrics.RegisterPlatformProbes(reg)

	launcher := &reexecLauncher{log: log}
	loop := serverloop.New(ring, adm, store, launcher, log)
	loop.RegisterProbes(reg)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	ownCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	wg, runCtx := errgroup.WithContext(ownCtx)
	wg.Go(func() error { return loop.Run(runCtx) })
	wg.Go(func() error { return handleSignals(runCtx, cancel, sigCh, loop, store, log) })

	log.Infow("server ready")
	return wg.Wait()
}

// handleSignals reloads configuration on SIGHUP and triggers shutdown on
// SIGINT/SIGTERM. Shutdown cancels the context shared with loop.Run (so a
// blocked admission.Acquire returns) and posts the ring's wakeup token (so
// a blocked ring.Consume returns).
func handleSignals(ctx context.Context, cancel context.CancelFunc, sigCh <-chan os.Signal, loop *serverloop.Loop, store *config.Store, log *zap.SugaredLogger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigCh:
			switch sig {
			case syscall.SIGHUP:
				log.Infow("reload signal received")
				next, err := config.Load(config.LocalConfigPath)
				if err != nil {
					next, err = config.Load(config.SystemConfigPath)
				}
				if err != nil {
					log.Warnw("reload failed, keeping previous configuration", "error", err)
					continue
				}
				store.Set(next)
			case syscall.SIGINT, syscall.SIGTERM:
				log.Infow("shutdown signal received")
				cancel()
				if err := loop.Shutdown(); err != nil {
					log.Warnw("shutdown wakeup failed", "error", err)
				}
				return nil
			}
		}
	}
}

func newServerLogger(foreground bool) (*zap.SugaredLogger, error) {
	if foreground {
		l, _, err := logging.New(zapcore.InfoLevel)
		return l, err
	}
	sink, err := logging.NewSyslogSink("bmpfilterd")
	if err != nil {
		return nil, fmt.Errorf("open syslog sink: %w", err)
	}
	l, _, err := logging.NewDaemon(zapcore.InfoLevel, sink)
	return l, err
}
