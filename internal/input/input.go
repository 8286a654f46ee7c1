// Package input describes one unit of clipboard work: a file named on the
// command line, or the stdin stream.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.klb.dev/wslclip/internal/sigtable"
)

// StdinSource is the Source value of the stdin descriptor.
const StdinSource = "stdin"

// Descriptor is one input to an invocation. Source and Ext are fixed at
// construction; the sniffed header is read lazily, at most once.
type Descriptor struct {
	Source    string // file path, or StdinSource
	Ext       string // lowercase extension without the dot, "" if none
	SizeKnown bool   // false for stdin

	sniffed bool
	header  []byte
}

// UnreadableError reports an input file that could not be opened or sniffed.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("unreadable input %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

// NewFile returns a descriptor for a file path.
func NewFile(path string) *Descriptor {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return &Descriptor{Source: path, Ext: ext, SizeKnown: true}
}

// NewStdin returns the descriptor for the stdin stream.
func NewStdin() *Descriptor {
	return &Descriptor{Source: StdinSource}
}

// IsStdin reports whether the descriptor is the stdin stream.
func (d *Descriptor) IsStdin() bool { return d.Source == StdinSource }

// Header returns the first sigtable.SniffLen bytes of the file, reading them
// on first call and caching the result. Stdin is never sniffed: it is a
// single-consumption stream, so the header stays nil. A zero-byte file yields
// an empty header, not an error.
func (d *Descriptor) Header() ([]byte, error) {
	if d.sniffed {
		return d.header, nil
	}
	if d.IsStdin() {
		d.sniffed = true
		return nil, nil
	}

	f, err := os.Open(d.Source)
	if err != nil {
		return nil, &UnreadableError{Path: d.Source, Err: err}
	}
	defer f.Close()

	buf := make([]byte, sigtable.SniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, &UnreadableError{Path: d.Source, Err: err}
	}

	d.header = buf[:n]
	d.sniffed = true
	return d.header, nil
}

// Open returns the descriptor's content stream. The caller owns the closer;
// for stdin, Close is a no-op.
func (d *Descriptor) Open() (io.ReadCloser, error) {
	if d.IsStdin() {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(d.Source)
	if err != nil {
		return nil, &UnreadableError{Path: d.Source, Err: err}
	}
	return f, nil
}
