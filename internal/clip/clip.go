// Package clip performs the host-side clipboard set operation.
//
// Two backends exist:
//
//	wsl.go    — Windows host plumbing: clip.exe for streamed text,
//	            powershell.exe (parameterized, never interpolated) for
//	            images and file drop lists
//	native.go — golang.design/x/clipboard fallback for hosts without the
//	            WSL interop layer; text and PNG images only
//
// The setter receives its payload atomically: nothing reaches the host
// clipboard until the full payload is assembled (or, for streamed text,
// until the stream is closed cleanly).
package clip

import (
	"fmt"
	"io"

	"go.klb.dev/wslclip/internal/winpath"
)

// TextStream feeds streamed text to the host clipboard. Close commits the
// accumulated content; Abort discards it so a failed stream never leaves a
// truncated payload behind.
type TextStream interface {
	io.Writer
	Close() error
	Abort()
}

// Setter is the external clipboard boundary. Exactly one set operation runs
// per invocation; failures are fatal and never retried (a blind retry could
// duplicate a drop-list entry or re-trigger a host dialog).
type Setter interface {
	Name() string

	// TextStream returns a writer feeding the host clipboard. Nothing is
	// committed until Close returns nil.
	TextStream() (TextStream, error)

	// SetText places a one-shot string on the clipboard (path mode).
	SetText(s string) error

	// SetImage places the pixels of the image at the given host-native path.
	SetImage(path string) error

	// SetFileDropList places the files as a drop list, pasted as if dragged
	// from a file manager. Paths are host-native, order is preserved.
	SetFileDropList(paths []string) error
}

// SetterError reports a failed host clipboard operation.
type SetterError struct {
	Op  string
	Err error
}

func (e *SetterError) Error() string {
	return fmt.Sprintf("clipboard %s: %v", e.Op, e.Err)
}

func (e *SetterError) Unwrap() error { return e.Err }

// New picks the backend for this host: WSL interop when available, the
// native clipboard otherwise.
func New() Setter {
	if winpath.IsWSL() {
		return wslSetter{}
	}
	return newNative()
}
