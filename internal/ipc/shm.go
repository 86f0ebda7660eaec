//go:build linux

package ipc

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/bmpfilterd/bmpfilterd/api"
)

// shmDir mirrors what shm_open(3) uses under the hood on Linux: a tmpfs
// mount shared by every process on the host.
const shmDir = "/dev/shm"

func shmPath(name string) string {
	return filepath.Join(shmDir, name)
}

// createNamed opens a named object under shmDir with exclusive-create
// semantics and truncates it to size bytes. EEXIST is reported as
// api.ErrServerAlreadyRunning: per spec.md §9 this is the server's
// single-instance lock, and a collision must never be force-unlinked.
func createNamed(name string, size int) (fd int, err error) {
	path := shmPath(name)
	fd, err = unix.Open(path, unix.O_CREAT|unix.O_EXCL|unix.O_RDWR, 0666)
	if err != nil {
		if err == unix.EEXIST {
			return -1, api.ErrServerAlreadyRunning
		}
		return -1, fmt.Errorf("open %s: %w", path, err)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		unix.Unlink(path)
		return -1, fmt.Errorf("ftruncate %s: %w", path, err)
	}
	return fd, nil
}

// openNamed opens an existing named object. ENOENT is reported as
// api.ErrServerNotRunning: the server hasn't created its IPC objects yet.
func openNamed(name string) (fd int, err error) {
	path := shmPath(name)
	fd, err = unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		if err == unix.ENOENT {
			return -1, api.ErrServerNotRunning
		}
		return -1, fmt.Errorf("open %s: %w", path, err)
	}
	return fd, nil
}

func mmapFD(fd, size int) ([]byte, error) {
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("mmap: %w", err)
	}
	return data, nil
}

func unlinkNamed(name string) error {
	err := unix.Unlink(shmPath(name))
	if err == unix.ENOENT {
		return nil
	}
	return err
}

// Segment is a named, process-shared memory mapping sized to hold exactly
// one Ring. It is the Go-native stand-in for shm_open+mmap: golang.org/x/sys/unix
// gives us the same three syscalls (open, ftruncate, mmap) without cgo.
type Segment struct {
	fd   int
	data []byte
	ring *Ring
}

// CreateSegment creates the named ring segment with exclusive-create
// semantics (see createNamed).
func CreateSegment(name string) (*Segment, error) {
	size := int(unsafe.Sizeof(Ring{}))
	fd, err := createNamed(name, size)
	if err != nil {
		return nil, err
	}
	return mapSegment(fd, size)
}

// OpenSegment opens an existing ring segment (client side).
func OpenSegment(name string) (*Segment, error) {
	size := int(unsafe.Sizeof(Ring{}))
	fd, err := openNamed(name)
	if err != nil {
		return nil, err
	}
	return mapSegment(fd, size)
}

func mapSegment(fd, size int) (*Segment, error) {
	data, err := mmapFD(fd, size)
	if err != nil {
		return nil, err
	}
	return &Segment{
		fd:   fd,
		data: data,
		// The Ring's field layout is identical across every process built
		// from this module, so a direct reinterpretation of the mapped
		// bytes is sound. This is the one place the repository reaches
		// for unsafe pointer arithmetic: the ring must be addressable by
		// raw byte offset from a second, independently-launched process.
		ring: (*Ring)(unsafe.Pointer(&data[0])),
	}, nil
}

// Ring returns the mapped Ring value. Callers must only mutate it while
// holding the appropriate semaphore per the producer/consumer protocol.
func (s *Segment) Ring() *Ring {
	return s.ring
}

// Close unmaps and closes the segment's file descriptor without removing
// the underlying named object.
func (s *Segment) Close() error {
	if s.data != nil {
		if err := unix.Munmap(s.data); err != nil {
			return fmt.Errorf("munmap shm segment: %w", err)
		}
		s.data = nil
	}
	if s.fd >= 0 {
		err := unix.Close(s.fd)
		s.fd = -1
		return err
	}
	return nil
}

// UnlinkSegment removes the named segment from the filesystem. Only the
// owning server calls this, and only during its own shutdown.
func UnlinkSegment(name string) error {
	return unlinkNamed(name)
}
