package filter

import (
	"testing"

	"github.com/bmpfilterd/bmpfilterd/internal/bmp"
)

// newUniformImage builds a width x height solid-color image so that any
// normalized convolution kernel's output must equal the input everywhere
// (border clamping still samples the same constant color).
func newUniformImage(width, height int32, b, g, r byte) *bmp.Image {
	stride := bmp.RowStride(width)
	pixels := make([]byte, int(stride)*int(height))
	for y := int32(0); y < height; y++ {
		row := pixels[y*stride : y*stride+stride]
		for x := int32(0); x < width; x++ {
			row[x*3], row[x*3+1], row[x*3+2] = b, g, r
		}
	}
	return &bmp.Image{
		DIBHeader: bmp.DIBHeader{Width: width, Height: height, BitCount: 24},
		Pixels:    pixels,
	}
}

func TestBoxBlurOnUniformImageIsNoOp(t *testing.T) {
	img := newUniformImage(4, 4, 50, 100, 150)
	ref := img.Reference()

	ApplyConvolution(ThreadArgs{Image: img, StartRow: 0, EndRow: 4, Height: 4, Reference: ref}, boxBlurKernel)

	stride := img.RowStride()
	for y := int32(0); y < 4; y++ {
		row := img.Pixels[y*stride : y*stride+stride]
		for x := int32(0); x < 4; x++ {
			if row[x*3] != 50 || row[x*3+1] != 100 || row[x*3+2] != 150 {
				t.Fatalf("uniform image changed under box blur at (%d,%d): got b=%d g=%d r=%d", x, y, row[x*3], row[x*3+1], row[x*3+2])
			}
		}
	}
}

func TestApplyConvolutionZeroSumKernelSkipsNormalization(t *testing.T) {
	// A kernel whose weights sum to zero (e.g. an edge-detector shape)
	// must not be divided by its weight sum, per
	// original_source's generic_convolution_filter.
	k := matrix(3,
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	)
	img := newUniformImage(3, 3, 10, 10, 10)
	ref := img.Reference()

	ApplyConvolution(ThreadArgs{Image: img, StartRow: 0, EndRow: 3, Height: 3, Reference: ref}, k)

	// On a uniform image every weighted sum is exactly zero regardless of
	// normalization, so every output pixel must clamp to zero.
	stride := img.RowStride()
	center := img.Pixels[1*stride+1*3]
	if center != 0 {
		t.Fatalf("zero-sum kernel on uniform image should produce 0, got %d", center)
	}
}

func TestApplyConvolutionHandlesTopDownNegativeHeight(t *testing.T) {
	// A top-down bitmap stores a negative DIBHeader.Height; ApplyConvolution
	// must clamp against the caller-supplied absolute Height, never the
	// signed header field, or border sampling indexes negatively and
	// panics on otherwise valid input.
	img := newUniformImage(3, 3, 10, 10, 10)
	img.DIBHeader.Height = -3
	ref := img.Reference()

	ApplyConvolution(ThreadArgs{Image: img, StartRow: 0, EndRow: 3, Height: 3, Reference: ref}, boxBlurKernel)

	stride := img.RowStride()
	for y := int32(0); y < 3; y++ {
		row := img.Pixels[y*stride : y*stride+stride]
		for x := int32(0); x < 3; x++ {
			if row[x*3] != 10 || row[x*3+1] != 10 || row[x*3+2] != 10 {
				t.Fatalf("top-down uniform image changed under box blur at (%d,%d): got b=%d g=%d r=%d", x, y, row[x*3], row[x*3+1], row[x*3+2])
			}
		}
	}
}

func TestClampCoordBorderBehavior(t *testing.T) {
	if got := clampCoord(-1, 5); got != 0 {
		t.Errorf("clampCoord(-1, 5) = %d, want 0", got)
	}
	if got := clampCoord(5, 5); got != 4 {
		t.Errorf("clampCoord(5, 5) = %d, want 4", got)
	}
	if got := clampCoord(2, 5); got != 2 {
		t.Errorf("clampCoord(2, 5) = %d, want 2", got)
	}
}
