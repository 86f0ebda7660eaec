//go:build !linux

package logging

import "errors"

// syslogWriter is the unsupported-platform stand-in; log/syslog only
// dials a local syslog daemon on unix-like systems.
type syslogWriter struct{}

// NewSyslogSink is unavailable on non-unix platforms.
func NewSyslogSink(tag string) (*syslogWriter, error) {
	return nil, errors.New("logging: syslog sink requires a unix-like platform")
}

func (s *syslogWriter) Write(p []byte) (int, error) { return len(p), nil }
func (s *syslogWriter) Sync() error                 { return nil }
