// Package filter implements the filter engine (C3): the point-filter and
// convolution-filter catalogue, the generic convolution kernel, and the
// row-range task dispatcher used by the worker to run a filter across
// goroutines.
package filter

import "github.com/bmpfilterd/bmpfilterd/internal/bmp"

// ID is the wire-level filter identifier. Its ordinal is a contract
// shared between every client and server build of this repository: point
// filters first, then convolution filters, in the exact order
// original_source/include/filters.h declares them.
type ID int32

const (
	Identity ID = iota
	BlackAndWhite
	Red
	Green
	Blue
	Cyan
	Magenta
	Yellow
	Sepia
	Invert

	Blur
	GaussianBlur
	GaussianBlur5x5
	Sharpen
	SharpenIntense
	EdgeDetect
	SobelHorizontal
	SobelVertical
	Laplacian
	Emboss
	EmbossIntense
	MotionBlur
	MotionBlurHorizontal
	MotionBlurVertical
	OilPainting
	Crosshatch

	numFilters
)

// ThreadArgs is the argument passed to every Func, covering the row range
// [StartRow, EndRow) a single goroutine owns. Reference is nil for point
// filters, which never read neighbor pixels. Height is the image's
// absolute row count: DIBHeader.Height is negative for top-down bitmaps,
// but a convolution's border clamp needs a positive row limit regardless
// of storage order, so the caller resolves the sign once and threads the
// result through here instead of every filter re-deriving it.
type ThreadArgs struct {
	Image     *bmp.Image
	StartRow  int32
	EndRow    int32
	Height    int32
	Reference []byte
}

// Func is the common filter interface: a callable over a row range,
// matching original_source's void*(void*) thread entry points but typed.
type Func func(args ThreadArgs)

// Kind distinguishes point filters (no reference image needed) from
// convolution filters (need an immutable reference copy of the pixels).
type Kind int

const (
	KindPoint Kind = iota
	KindConvolution
)

// Entry is one row of the filter catalogue: everything needed to both
// run a filter and describe it on the CLI.
type Entry struct {
	ID          ID
	Name        string
	ShortFlag   string
	LongFlag    string
	Description string
	Kind        Kind
	Func        Func
}
