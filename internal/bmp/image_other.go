//go:build !linux

package bmp

import "errors"

// ErrPlatformNotSupported mirrors internal/ipc's stub policy: mmap-based
// image loading is Linux-only in this repository.
var ErrPlatformNotSupported = errors.New("bmp: mmap-based image loading requires linux")

// Image is the unsupported-platform stand-in for the mmap-backed image.
type Image struct{}

func Load(path string) (*Image, error) { return nil, ErrPlatformNotSupported }
func (img *Image) Reference() []byte   { return nil }
func (img *Image) Close() error        { return nil }
func (img *Image) RowStride() int32    { return 0 }
