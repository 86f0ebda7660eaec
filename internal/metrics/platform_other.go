//go:build !linux

package metrics

import "runtime"

// RegisterPlatformProbes mirrors the Linux probe set using only portable
// runtime introspection, since this repository's IPC layer doesn't
// support non-Linux platforms anyway (see internal/ipc's stub files).
func RegisterPlatformProbes(r *Registry) {
	r.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	r.RegisterProbe("platform.goroutines", func() any {
		return runtime.NumGoroutine()
	})
}
