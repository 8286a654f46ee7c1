// Package payload assembles the clipboard payload for a resolved mode.
//
// Non-text modes reduce to translated host paths: a single image path, an
// ordered deduplicated drop list, or one bare path string. Text mode streams
// every input through a fresh sanitizer, inserting per-file headers and
// markdown fences where configured. No payload mixes content from different
// modes, and any per-file error aborts the whole invocation; a partial or
// mixed clipboard state is never produced.
package payload

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.klb.dev/wslclip/internal/input"
	"go.klb.dev/wslclip/internal/sanitize"
)

// Translator converts a POSIX path into the string the host clipboard can
// address. On WSL this shells out to wslpath; elsewhere it resolves to an
// absolute local path.
type Translator func(path string) (string, error)

// Image is the payload for image mode: one translated file path. The setter
// reads the pixels itself; nothing is copied at this layer.
type Image struct {
	Path string
}

// FileObjects is the drop-list payload: translated paths, deduplicated,
// preserving command-line order.
type FileObjects struct {
	Paths []string
}

// PathString is the payload for path mode: the translated path itself is the
// clipboard text.
type PathString struct {
	Path string
}

// AssembleImage builds the image payload for one file.
func AssembleImage(d *input.Descriptor, translate Translator) (Image, error) {
	p, err := translate(d.Source)
	if err != nil {
		return Image{}, err
	}
	return Image{Path: p}, nil
}

// AssembleFileObjects translates every input into a host path. Duplicates
// (after translation, so ./a and a collapse) keep their first position.
func AssembleFileObjects(inputs []*input.Descriptor, translate Translator) (FileObjects, error) {
	seen := make(map[string]struct{}, len(inputs))
	paths := make([]string, 0, len(inputs))
	for _, d := range inputs {
		p, err := translate(d.Source)
		if err != nil {
			return FileObjects{}, err
		}
		if _, dup := seen[p]; dup {
			slog.Debug("dropping duplicate file object", "path", p)
			continue
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	return FileObjects{Paths: paths}, nil
}

// AssemblePath builds the path payload for one file.
func AssemblePath(d *input.Descriptor, translate Translator) (PathString, error) {
	p, err := translate(d.Source)
	if err != nil {
		return PathString{}, err
	}
	return PathString{Path: p}, nil
}

// timeNow is stubbed in tests; headers carry a read timestamp.
var timeNow = time.Now

// WriteText streams each input through its own sanitizer into w, in
// command-line order. With more than one file and EmitFileHeaders set, each
// file is introduced by a header line and the batch closes with a footer
// naming everything sent. WrapCodeFence fences each file in a markdown block
// tagged with its extension. Each file gets a fresh sanitizer state, so an
// unterminated escape sequence cannot bleed across files.
func WriteText(w io.Writer, inputs []*input.Descriptor, cfg sanitize.Config) error {
	stamp := timeNow().UTC().Format(time.RFC3339)
	headers := cfg.EmitFileHeaders && len(inputs) > 1

	sent := make([]string, 0, len(inputs))
	for _, d := range inputs {
		if headers {
			if err := writeLine(w, cfg, "# FILE: "+d.Source+" READ: "+stamp); err != nil {
				return err
			}
		}
		if cfg.WrapCodeFence {
			if err := writeLine(w, cfg, "```"+d.Ext); err != nil {
				return err
			}
		}

		if err := streamFile(w, d, cfg, headers); err != nil {
			return err
		}

		if cfg.WrapCodeFence {
			if err := writeLine(w, cfg, "```"); err != nil {
				return err
			}
		}
		if headers {
			// spacer between files
			if err := writeLine(w, cfg, ""); err != nil {
				return err
			}
		}
		sent = append(sent, d.Source)
	}

	if headers {
		return writeLine(w, cfg, "# End of FILES. SENT: "+strings.Join(sent, " "))
	}
	return nil
}

// streamFile copies one sanitized input into w. When structural lines follow
// (fences or headers), content that does not end in a newline gets one so the
// next line starts fresh.
func streamFile(w io.Writer, d *input.Descriptor, cfg sanitize.Config, headers bool) error {
	rc, err := d.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	tail := &tailWriter{w: w}
	if _, err := sanitize.Process(tail, rc, cfg); err != nil {
		return fmt.Errorf("sanitize %s: %w", d.Source, err)
	}

	if (cfg.WrapCodeFence || headers) && tail.wrote && tail.last != '\n' {
		return writeLine(w, cfg, "")
	}
	return nil
}

// writeLine emits s with the configured line ending.
func writeLine(w io.Writer, cfg sanitize.Config, s string) error {
	ending := "\n"
	if cfg.ConvertCRLF {
		ending = "\r\n"
	}
	_, err := io.WriteString(w, s+ending)
	return err
}

// tailWriter remembers the last byte that passed through.
type tailWriter struct {
	w     io.Writer
	wrote bool
	last  byte
}

func (t *tailWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		t.wrote = true
		t.last = p[len(p)-1]
	}
	return t.w.Write(p)
}
