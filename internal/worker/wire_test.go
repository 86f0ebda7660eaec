package worker

import (
	"bytes"
	"testing"

	"github.com/bmpfilterd/bmpfilterd/internal/filter"
)

func TestEncodeDecodeRequestRoundTrip(t *testing.T) {
	want := Request{ClientID: 42, Path: "/tmp/image.bmp", FilterID: filter.Invert}

	var buf bytes.Buffer
	if err := EncodeRequest(&buf, want); err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}

	got, err := DecodeRequest(&buf)
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestDecodeRequestOnEmptyReaderFails(t *testing.T) {
	if _, err := DecodeRequest(bytes.NewReader(nil)); err == nil {
		t.Fatal("expected an error decoding an empty stream")
	}
}
