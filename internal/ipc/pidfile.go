package ipc

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bmpfilterd/bmpfilterd/api"
)

// PIDFile is the server's single-instance lock at ServerPIDFile. Its
// presence (and an owning process that still answers to its recorded PID)
// is what spec.md §9 means by "the server is already running".
type PIDFile struct {
	path string
}

// AcquirePIDFile exclusively creates the pidfile and writes the current
// process's PID into it. EEXIST is reported as api.ErrServerAlreadyRunning.
func AcquirePIDFile() (*PIDFile, error) {
	f, err := os.OpenFile(ServerPIDFile, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, api.ErrServerAlreadyRunning
		}
		return nil, fmt.Errorf("create pidfile %s: %w", ServerPIDFile, err)
	}
	defer f.Close()
	if _, err := f.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		os.Remove(ServerPIDFile)
		return nil, fmt.Errorf("write pidfile: %w", err)
	}
	return &PIDFile{path: ServerPIDFile}, nil
}

// ReadPIDFile returns the PID recorded in ServerPIDFile, or
// api.ErrServerNotRunning if no pidfile exists.
func ReadPIDFile() (int, error) {
	data, err := os.ReadFile(ServerPIDFile)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, api.ErrServerNotRunning
		}
		return 0, fmt.Errorf("read pidfile: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse pidfile %s: %w", ServerPIDFile, err)
	}
	return pid, nil
}

// Release removes the pidfile. Called once during the server's own
// shutdown sequence, never by anyone else.
func (p *PIDFile) Release() error {
	err := os.Remove(p.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
