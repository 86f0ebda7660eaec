//go:build linux

package metrics

import "runtime"

// RegisterPlatformProbes installs the CPU-count probe, following the
// teacher's control.RegisterPlatformProbes.
func RegisterPlatformProbes(r *Registry) {
	r.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	r.RegisterProbe("platform.goroutines", func() any {
		return runtime.NumGoroutine()
	})
}
