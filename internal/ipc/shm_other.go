//go:build !linux

package ipc

// Segment is the unsupported-platform stand-in for the Linux mmap-backed
// ring segment (see futexsem_other.go).
type Segment struct{}

func CreateSegment(name string) (*Segment, error) { return nil, ErrPlatformNotSupported }
func OpenSegment(name string) (*Segment, error)   { return nil, ErrPlatformNotSupported }
func (s *Segment) Ring() *Ring                    { return nil }
func (s *Segment) Close() error                   { return nil }
func UnlinkSegment(name string) error             { return nil }
