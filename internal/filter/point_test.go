package filter

import (
	"testing"

	"github.com/bmpfilterd/bmpfilterd/internal/bmp"
)

// newTestImage builds a 2x1 BGR image (one row, two pixels, no row
// padding needed since stride for width=2 is already a multiple of 4)
// directly from its pixel bytes, bypassing bmp.Load's mmap path.
func newTestImage(pixels []byte, width int32) *bmp.Image {
	return &bmp.Image{
		DIBHeader: bmp.DIBHeader{Width: width, Height: 1, BitCount: 24},
		Pixels:    pixels,
	}
}

func TestInvertFilterRoundTrip(t *testing.T) {
	img := newTestImage([]byte{10, 20, 30, 200, 150, 100}, 2)
	original := append([]byte(nil), img.Pixels...)

	args := ThreadArgs{Image: img, StartRow: 0, EndRow: 1}
	invertFilter(args)
	invertFilter(args)

	for i, b := range img.Pixels {
		if b != original[i] {
			t.Fatalf("invert-twice did not round trip at byte %d: got %d want %d", i, b, original[i])
		}
	}
}

func TestBlackAndWhiteFilterGraysOutChannels(t *testing.T) {
	img := newTestImage([]byte{10, 20, 30}, 1)
	blackAndWhiteFilter(ThreadArgs{Image: img, StartRow: 0, EndRow: 1})

	b, g, r := img.Pixels[0], img.Pixels[1], img.Pixels[2]
	if b != g || g != r {
		t.Fatalf("grayscale pixel channels must be equal, got b=%d g=%d r=%d", b, g, r)
	}
}

func TestRedFilterZeroesBlueAndGreen(t *testing.T) {
	img := newTestImage([]byte{10, 20, 30}, 1)
	redFilter(ThreadArgs{Image: img, StartRow: 0, EndRow: 1})

	if img.Pixels[0] != 0 || img.Pixels[1] != 0 {
		t.Fatalf("red filter must zero blue and green, got b=%d g=%d", img.Pixels[0], img.Pixels[1])
	}
	if img.Pixels[2] != 30 {
		t.Fatalf("red filter must keep the red channel untouched, got %d", img.Pixels[2])
	}
}

func TestIdentityFilterLeavesPixelsUntouched(t *testing.T) {
	pixels := []byte{1, 2, 3, 4, 5, 6}
	img := newTestImage(append([]byte(nil), pixels...), 2)
	identityFilter(ThreadArgs{Image: img, StartRow: 0, EndRow: 1})

	for i, b := range img.Pixels {
		if b != pixels[i] {
			t.Fatalf("identity filter modified byte %d: got %d want %d", i, b, pixels[i])
		}
	}
}

func TestClampByte(t *testing.T) {
	cases := []struct {
		in   float64
		want byte
	}{
		{-10, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{300, 255},
	}
	for _, c := range cases {
		if got := clampByte(c.in); got != c.want {
			t.Errorf("clampByte(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
