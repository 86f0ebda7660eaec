package worker

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/bmpfilterd/bmpfilterd/internal/filter"
)

func filterIDFromInt(v int32) filter.ID { return filter.ID(v) }

// wireRequest is the record the server loop hands to a freshly re-exec'd
// worker process on its stdin, replacing the inherited-shared-memory
// handoff a real fork() would give a C child (SPEC_FULL.md §1's
// Go-native realization note). encoding/gob is the standard library's
// own self-describing binary codec; no third-party serialization library
// appears anywhere in the example pack, and this format is purely an
// internal implementation detail never observed outside this process
// pair, so there is nothing it would be worth pulling a dependency in
// for.
type wireRequest struct {
	ClientID int32
	Path     string
	FilterID int32
}

// EncodeRequest writes req to w for a child process to read on its stdin.
func EncodeRequest(w io.Writer, req Request) error {
	wr := wireRequest{ClientID: req.ClientID, Path: req.Path, FilterID: int32(req.FilterID)}
	if err := gob.NewEncoder(w).Encode(wr); err != nil {
		return fmt.Errorf("encode worker request: %w", err)
	}
	return nil
}

// DecodeRequest reads a Request written by EncodeRequest.
func DecodeRequest(r io.Reader) (Request, error) {
	var wr wireRequest
	if err := gob.NewDecoder(r).Decode(&wr); err != nil {
		return Request{}, fmt.Errorf("decode worker request: %w", err)
	}
	return Request{ClientID: wr.ClientID, Path: wr.Path, FilterID: filterIDFromInt(wr.FilterID)}, nil
}
