//go:build linux

package bmp

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Image is a bitmap mapped copy-on-write from its backing file: filters
// mutate pixels in place with no separate output buffer, but per spec.md
// §3/§4.4 those mutations are thread-local and must never reach the
// client's original input file on disk.
type Image struct {
	FileHeader FileHeader
	DIBHeader  DIBHeader
	Mapping    []byte // the full mmap'd file, mutated in place
	Pixels     []byte // Mapping[PixelArrayOffset:], the mutable pixel array
}

// Load mmaps path PROT_READ|PROT_WRITE/MAP_PRIVATE and parses its headers.
// MAP_PRIVATE gives the worker a copy-on-write mapping: filter writes land
// on private pages the kernel allocates on first write and are never
// flushed back through the page cache to the file, so the input file on
// disk is left untouched no matter what the selected filter does. The
// file descriptor is closed immediately after mapping; the mapping itself
// keeps the pages valid, and the filtered bytes live only in this
// mapping until writeImageBody streams them to the response FIFO.
func Load(path string) (*Image, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	size := int(info.Size())
	if size < FileHeaderSize+DIBHeaderSize {
		return nil, ErrTruncated
	}

	mapping, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	fh, err := ParseFileHeader(mapping)
	if err != nil {
		unix.Munmap(mapping)
		return nil, err
	}
	dh, err := ParseDIBHeader(mapping[FileHeaderSize:])
	if err != nil {
		unix.Munmap(mapping)
		return nil, err
	}
	if int(fh.PixelArrayOffset) > size {
		unix.Munmap(mapping)
		return nil, ErrTruncated
	}

	return &Image{
		FileHeader: fh,
		DIBHeader:  dh,
		Mapping:    mapping,
		Pixels:     mapping[fh.PixelArrayOffset:],
	}, nil
}

// Reference returns a read-only heap copy of just the pixel array,
// resolving spec.md §9's open question: the copy holds only the pixel
// array, not the full file mapping, since every filter only ever reads
// neighbor pixels through the reference image, never header fields.
func (img *Image) Reference() []byte {
	ref := make([]byte, len(img.Pixels))
	copy(ref, img.Pixels)
	return ref
}

// Close unmaps the backing file.
func (img *Image) Close() error {
	if img.Mapping == nil {
		return nil
	}
	err := unix.Munmap(img.Mapping)
	img.Mapping = nil
	img.Pixels = nil
	return err
}

// RowStride is the image's own padded row width.
func (img *Image) RowStride() int32 {
	return RowStride(img.DIBHeader.Width)
}
