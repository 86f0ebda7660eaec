package bmp

import (
	"encoding/binary"
	"testing"
)

func buildFileHeader(sig uint16, fileSize uint32, offset uint32) []byte {
	b := make([]byte, FileHeaderSize)
	binary.LittleEndian.PutUint16(b[0:2], sig)
	binary.LittleEndian.PutUint32(b[2:6], fileSize)
	binary.LittleEndian.PutUint32(b[10:14], offset)
	return b
}

func buildDIBHeader(width, height int32, bitCount uint16, compression uint32) []byte {
	b := make([]byte, DIBHeaderSize)
	binary.LittleEndian.PutUint32(b[0:4], DIBHeaderSize)
	binary.LittleEndian.PutUint32(b[4:8], uint32(width))
	binary.LittleEndian.PutUint32(b[8:12], uint32(height))
	binary.LittleEndian.PutUint16(b[12:14], 1)
	binary.LittleEndian.PutUint16(b[14:16], bitCount)
	binary.LittleEndian.PutUint32(b[16:20], compression)
	return b
}

func TestParseFileHeaderRejectsBadSignature(t *testing.T) {
	b := buildFileHeader(0x1234, 100, 54)
	if _, err := ParseFileHeader(b); err != ErrNotBMP {
		t.Fatalf("expected ErrNotBMP, got %v", err)
	}
}

func TestParseFileHeaderRejectsTruncated(t *testing.T) {
	if _, err := ParseFileHeader(make([]byte, 5)); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestParseFileHeaderAcceptsValid(t *testing.T) {
	b := buildFileHeader(Signature, 1000, 54)
	h, err := ParseFileHeader(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.FileSize != 1000 || h.PixelArrayOffset != 54 {
		t.Fatalf("unexpected header fields: %+v", h)
	}
}

func TestParseDIBHeaderRejectsUnsupportedFormat(t *testing.T) {
	cases := []struct {
		name        string
		bitCount    uint16
		compression uint32
	}{
		{"wrong bit depth", 8, 0},
		{"compressed", 24, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := buildDIBHeader(10, 10, c.bitCount, c.compression)
			if _, err := ParseDIBHeader(b); err != ErrUnsupportedFormat {
				t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestParseDIBHeaderAcceptsValid(t *testing.T) {
	b := buildDIBHeader(100, 50, 24, 0)
	d, err := ParseDIBHeader(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Width != 100 || d.Height != 50 {
		t.Fatalf("unexpected dimensions: %+v", d)
	}
}

func TestRowStridePadsToFourByteBoundary(t *testing.T) {
	cases := []struct {
		width int32
		want  int32
	}{
		{1, 4},  // 3 bytes -> padded to 4
		{4, 12}, // 12 bytes -> already aligned
		{5, 16}, // 15 bytes -> padded to 16
	}
	for _, c := range cases {
		if got := RowStride(c.width); got != c.want {
			t.Errorf("RowStride(%d) = %d, want %d", c.width, got, c.want)
		}
	}
}
