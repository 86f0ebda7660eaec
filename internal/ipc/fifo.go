package ipc

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bmpfilterd/bmpfilterd/api"
)

// ResponseFIFO is the per-request response channel (C2): a real named
// pipe at /tmp/fifo_rep_<client_id>, carrying a 4-byte status word
// followed, on success, by the filtered image bytes.
type ResponseFIFO struct {
	path string
}

// CreateResponseFIFO creates the named pipe with mode 0666 (masked by the
// process umask), matching spec.md §4.2. The client creates this before
// producing its request so the worker always finds it ready.
func CreateResponseFIFO(clientID int32) (*ResponseFIFO, error) {
	path := ResponseFIFOPath(clientID)
	if err := unix.Mkfifo(path, 0666); err != nil {
		return nil, fmt.Errorf("mkfifo %s: %w", path, err)
	}
	return &ResponseFIFO{path: path}, nil
}

// Path returns the FIFO's filesystem path.
func (f *ResponseFIFO) Path() string { return f.path }

// OpenRead opens the FIFO for reading. This blocks until a writer (the
// worker) opens the other end, exactly like a real FIFO's open(2).
func (f *ResponseFIFO) OpenRead() (*os.File, error) {
	return os.OpenFile(f.path, os.O_RDONLY, 0)
}

// OpenWrite opens an existing FIFO for writing, failing if it doesn't
// exist or no reader has opened it yet (the worker side; the client must
// already have created and be reading from it).
func OpenResponseFIFOForWrite(clientID int32) (*os.File, error) {
	path := ResponseFIFOPath(clientID)
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s for write: %w", path, err)
	}
	return f, nil
}

// Unlink removes the FIFO from the filesystem. The client owns and
// unlinks its own FIFO once it has read the full response.
func (f *ResponseFIFO) Unlink() error {
	err := os.Remove(f.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// WriteStatus writes the 4-byte little-endian status word.
func WriteStatus(w io.Writer, status api.StatusCode) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(int32(status)))
	return fullWrite(w, buf[:])
}

// ReadStatus reads the 4-byte little-endian status word.
func ReadStatus(r io.Reader) (api.StatusCode, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return api.StatusCode(int32(binary.LittleEndian.Uint32(buf[:]))), nil
}

// fullWrite writes all of buf, retrying on EINTR, mirroring
// original_source/shared/full_io.c's full_write.
func fullWrite(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n, err := retryEINTR(func() (int, error) { return w.Write(buf) })
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("full write: %w", io.ErrShortWrite)
		}
		buf = buf[n:]
	}
	return nil
}

// WriteChunked streams src's remaining bytes to w in ChunkSize pieces,
// each guarded by a WriteTimeout deadline. A stuck chunk write (a client
// that vanished mid-read) aborts the whole transfer: this is the Go-native
// equivalent of the original worker's per-chunk alarm(2)/SIGALRM guard —
// a goroutine performs the write while the caller races it against
// time.After, and on timeout the file descriptor is closed to unstick the
// write, exactly as SIGALRM would interrupt a blocked write(2) call.
func WriteChunked(f *os.File, src io.Reader) error {
	buf := chunkPool.Acquire(ChunkSize)
	defer chunkPool.Release(buf)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if err := writeChunkWithTimeout(f, buf[:n]); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return rerr
		}
	}
}

func writeChunkWithTimeout(f *os.File, chunk []byte) error {
	done := make(chan error, 1)
	go func() {
		done <- fullWrite(f, chunk)
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(WriteTimeout):
		f.Close()
		return fmt.Errorf("%w: response fifo write timed out after %s", api.ErrIO, WriteTimeout)
	}
}
