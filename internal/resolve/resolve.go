// Package resolve decides the single output mode for an invocation.
//
// Precedence: an explicit user override always wins and skips all sniffing;
// bare stdin is text; otherwise each file is classified by magic bytes and
// the per-file results are merged into one invocation-wide mode. The merge is
// commutative over input order: all-image stays Image, all-text stays Text,
// and any other member forces FileObject (a heterogeneous batch is always
// safest as a drop list).
package resolve

import (
	"bytes"
	"errors"
	"log/slog"

	"go.klb.dev/wslclip/internal/input"
	"go.klb.dev/wslclip/internal/sigtable"
)

// Mode is the output encoding for the whole invocation. Resolved once, never
// changed afterwards.
type Mode int

const (
	Text Mode = iota
	Image
	FileObject
	Path
)

func (m Mode) String() string {
	switch m {
	case Text:
		return "text"
	case Image:
		return "image"
	case FileObject:
		return "file-object"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// ErrNoInput is returned when no files are given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass file arguments or pipe data on stdin")

// binaryExts are extensions forced to FileObject even without a signature
// match: assets, archives and executables that would paste as garbage text.
var binaryExts = map[string]struct{}{
	"dxf": {}, "obj": {}, "stl": {}, "ply": {}, "gcode": {},
	"svg": {}, "eps": {}, "ai": {}, "psd": {}, "pdf": {},
	"zip": {}, "7z": {}, "tar": {}, "gz": {}, "rar": {}, "iso": {},
	"dll": {}, "bin": {}, "exe": {}, "jar": {}, "class": {},
}

// per-file resolution outcome, before the invocation-wide merge.
type kind int

const (
	kindText kind = iota
	kindImage
	kindObject
)

// Resolve returns the invocation-wide mode. An explicit override is returned
// unchanged without any header I/O. Path mode is only ever reached through
// the override.
func Resolve(inputs []*input.Descriptor, override *Mode) (Mode, error) {
	if override != nil {
		return *override, nil
	}
	if len(inputs) == 0 {
		return Text, ErrNoInput
	}

	var images, objects, texts int
	for _, d := range inputs {
		k, err := classify(d)
		if err != nil {
			return Text, err
		}
		switch k {
		case kindImage:
			images++
		case kindObject:
			objects++
		default:
			texts++
		}
	}

	switch {
	case objects > 0, images > 0 && texts > 0:
		return FileObject, nil
	case images > 0:
		return Image, nil
	default:
		return Text, nil
	}
}

func classify(d *input.Descriptor) (kind, error) {
	// A live byte stream with no backing file is text; a non-seekable
	// single-consumption stream cannot be sniffed.
	if d.IsStdin() {
		return kindText, nil
	}

	header, err := d.Header()
	if err != nil {
		return kindText, err
	}

	cat := sigtable.Classify(header)
	slog.Debug("classified input", "path", d.Source, "category", cat.String())

	switch cat {
	case sigtable.Image:
		return kindImage, nil
	case sigtable.Document, sigtable.Archive, sigtable.Asset3D:
		// Assets always travel as file objects, whatever the extension says.
		return kindObject, nil
	}

	// No signature matched. NUL bytes mean binary; then the extension
	// denylist; everything else is text.
	if bytes.IndexByte(header, 0) >= 0 {
		slog.Debug("null bytes in header, treating as binary", "path", d.Source)
		return kindObject, nil
	}
	if _, ok := binaryExts[d.Ext]; ok {
		slog.Debug("extension denylist hit", "path", d.Source, "ext", d.Ext)
		return kindObject, nil
	}
	return kindText, nil
}
