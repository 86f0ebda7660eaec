//go:build linux

// Package daemon implements the server's daemonization step: re-exec of
// the running binary into a new session with stdio redirected, the
// Go-native substitute for the classic double-fork (spec.md §4.5 step 2;
// SPEC_FULL.md §1's Go-native realization table).
package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// ReexecInternalFlag is the hidden argument inserted ahead of the
// caller's own arguments to mark the re-executed process as already
// daemonized, so it does not try to daemonize itself again.
const ReexecInternalFlag = "--internal-daemonized"

// Daemonize re-execs the current binary with ReexecInternalFlag prepended
// to the existing arguments, detaches it into a new session, redirects
// stdio to /dev/null, and chdirs to "/". The parent exits 0 immediately
// after a successful launch; callers never observe Daemonize returning
// in the parent process.
func Daemonize(extraArgs ...string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	args := append([]string{ReexecInternalFlag}, extraArgs...)
	cmd := exec.Command(exe, args...)
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull
	cmd.Dir = "/"
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start daemonized process: %w", err)
	}
	os.Exit(0)
	return nil
}

// IsReexecedDaemon reports whether args carries ReexecInternalFlag as its
// first element, and returns the remaining arguments.
func IsReexecedDaemon(args []string) (bool, []string) {
	if len(args) > 0 && args[0] == ReexecInternalFlag {
		return true, args[1:]
	}
	return false, args
}
