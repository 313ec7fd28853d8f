// Package source turns resolved inputs into the byte buffers the digest
// engine consumes.
//
// Text inputs yield their UTF-8 bytes; file inputs are read fully into
// memory (inputs are small, bounded buffers — there is no streaming). In
// hex mode the content of either origin is interpreted as a hex-literal
// string and decoded before hashing.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/asingingbird/hashcli/hexenc"
	"github.com/asingingbird/hashcli/input"
	"github.com/asingingbird/hashcli/iox"
)

// ErrUnreadable indicates a file input that could not be opened or read.
// Use errors.Is(err, ErrUnreadable) for typed assertions.
var ErrUnreadable = errors.New("unreadable source")

// SourceError wraps a file read failure with the path involved.
// It preserves the underlying error in the chain for inspection.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("cannot read file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chain traversal.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches ErrUnreadable.
func (e *SourceError) Is(target error) bool {
	return target == ErrUnreadable
}

// Resolver produces byte buffers from inputs.
type Resolver struct {
	// HexMode interprets each input's content as whitespace/comma-separated
	// 0xNN tokens instead of raw bytes.
	HexMode bool
}

// Bytes resolves one input to its byte buffer.
// File read failures wrap ErrUnreadable; hex decode failures propagate the
// hexenc token error unchanged. A failed input never yields partial bytes.
func (r Resolver) Bytes(in input.Input) ([]byte, error) {
	switch in.Kind {
	case input.KindFile:
		data, err := readAll(in.Value)
		if err != nil {
			return nil, err
		}
		if r.HexMode {
			return hexenc.Decode(string(data))
		}
		return data, nil

	default:
		if r.HexMode {
			return hexenc.Decode(in.Value)
		}
		return []byte(in.Value), nil
	}
}

// readAll reads the whole file into memory.
func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer iox.DiscardClose(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return data, nil
}
