// Package serverloop implements the server's main dispatcher (C6): the
// single-threaded acquire/fork loop of spec.md §4.5, wired to the
// admission controller, the ring channel, and the worker re-exec.
package serverloop

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/bmpfilterd/bmpfilterd/api"
	"github.com/bmpfilterd/bmpfilterd/internal/admission"
	"github.com/bmpfilterd/bmpfilterd/internal/config"
	"github.com/bmpfilterd/bmpfilterd/internal/filter"
	"github.com/bmpfilterd/bmpfilterd/internal/ipc"
	"github.com/bmpfilterd/bmpfilterd/internal/metrics"
)

// Launcher starts one worker process per accepted request. cmd/bmpfilterd
// supplies the concrete implementation (re-exec of the running binary
// with a hidden subcommand), keeping this package free of any
// os.Executable()/exec.Command wiring detail beyond the interface.
type Launcher interface {
	Launch(ctx context.Context, req ipc.Request) (*exec.Cmd, error)
}

// Loop is the server's main dispatcher.
type Loop struct {
	ring      *ipc.RingChannel
	admission *admission.Semaphore
	store     *config.Store
	launcher  Launcher
	log       *zap.SugaredLogger
	recent    *metrics.RecentLog
}

// New builds a Loop wired to its collaborators.
func New(ring *ipc.RingChannel, adm *admission.Semaphore, store *config.Store, launcher Launcher, log *zap.SugaredLogger) *Loop {
	l := &Loop{ring: ring, admission: adm, store: store, launcher: launcher, log: log, recent: metrics.NewRecentLog(32)}
	store.OnReload(l.reconcileAdmission)
	return l
}

// RegisterProbes wires the dispatcher's live state into reg: admission
// tokens in use/capacity, the ring's empty/full token counts (so a debug
// dump always reflects the invariant `empty + full == RING_CAP`), and the
// last 32 completed requests.
func (l *Loop) RegisterProbes(reg *metrics.Registry) {
	reg.RegisterProbe("admission.in_use", func() any { return l.admission.InUse() })
	reg.RegisterProbe("admission.capacity", func() any { return l.admission.Capacity() })
	reg.RegisterProbe("ring.empty_tokens", func() any { return l.ring.EmptyTokens() })
	reg.RegisterProbe("ring.full_tokens", func() any { return l.ring.FullTokens() })
	l.recent.RegisterOn(reg, "requests.recent")
}

// reconcileAdmission implements spec.md §4.5's reload reconciliation:
// the admission semaphore's capacity simply tracks the new max_workers;
// Semaphore.Resize already handles both the grow and shrink cases.
func (l *Loop) reconcileAdmission(old, next config.Config) {
	if old.MaxWorkers == next.MaxWorkers {
		return
	}
	l.log.Infow("reconciling admission capacity", "old_max_workers", old.MaxWorkers, "new_max_workers", next.MaxWorkers)
	l.admission.Resize(next.MaxWorkers)
}

// Run executes the dispatcher until ctx is cancelled (the shutdown
// signal handler both cancels ctx and posts a wakeup full token so a
// blocked Consume returns promptly).
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.admission.Acquire(ctx); err != nil {
			return nil
		}
		req, err := l.ring.Consume(ctx)
		if err != nil {
			// Either the shutdown sentinel woke us (ctx is done) or the
			// semaphore itself failed; either way, release the admission
			// token we never put to use and stop.
			l.admission.Release()
			return nil
		}
		l.dispatch(ctx, req)
	}
}

func (l *Loop) dispatch(ctx context.Context, req ipc.Request) {
	entry, ok := filter.ByID(filter.ID(req.FilterID))
	name := "unknown"
	if ok {
		name = entry.Name
	}
	log := l.log.With("client_id", req.ClientID, "filter", name)

	started := time.Now()
	cmd, err := l.launcher.Launch(ctx, req)
	if err != nil {
		log.Errorw("failed to launch worker", "error", err)
		l.admission.Release()
		l.recent.Record(metrics.Completion{ClientID: req.ClientID, Filter: name, Status: "launch-failed", Duration: time.Since(started)})
		return
	}
	go func() {
		defer l.admission.Release()
		status := "ok"
		if err := cmd.Wait(); err != nil {
			log.Warnw("worker exited with error", "error", err)
			status = "worker-error"
		} else {
			log.Debugw("worker exited")
		}
		l.recent.Record(metrics.Completion{ClientID: req.ClientID, Filter: name, Status: status, Duration: time.Since(started)})
	}()
}

var _ api.GracefulShutdown = (*Loop)(nil)

// Shutdown marks the loop for exit. Callers cancel the context passed to
// Run and then call this to post the ring wakeup token, matching spec.md
// §4.5's "post one full token to unblock the loop".
func (l *Loop) Shutdown() error {
	if err := l.ring.PostShutdownWakeup(); err != nil {
		return fmt.Errorf("post shutdown wakeup: %w", err)
	}
	return nil
}
