//go:build !wslclip_headless

package clip

import (
	"bytes"
	"errors"
	"log/slog"
	"os"

	"golang.design/x/clipboard"
)

// newNative returns the golang.design/x/clipboard backend, or an
// unavailable stub if the display environment cannot be initialized (e.g. a
// headless server without X11 or Wayland).
func newNative() Setter {
	if err := clipboard.Init(); err != nil {
		slog.Warn("native clipboard unavailable", "err", err)
		return unavailableSetter{err: err}
	}
	return nativeSetter{}
}

type nativeSetter struct{}

func (nativeSetter) Name() string { return "native" }

// nativeText buffers the stream; the native clipboard API has no streaming
// write, so commit happens wholesale on Close. The WSL backend is the one
// that keeps text O(1); this fallback trades that for working at all.
type nativeText struct {
	buf bytes.Buffer
}

func (t *nativeText) Write(p []byte) (int, error) { return t.buf.Write(p) }

func (t *nativeText) Close() error {
	clipboard.Write(clipboard.FmtText, t.buf.Bytes())
	return nil
}

// Abort drops the buffered content without touching the clipboard.
func (t *nativeText) Abort() { t.buf.Reset() }

func (nativeSetter) TextStream() (TextStream, error) {
	return &nativeText{}, nil
}

func (nativeSetter) SetText(s string) error {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

func (nativeSetter) SetImage(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &SetterError{Op: "set image", Err: err}
	}
	// FmtImage expects PNG bytes; other formats are passed through and may
	// be rejected by the window system.
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

func (nativeSetter) SetFileDropList([]string) error {
	return &SetterError{
		Op:  "set file drop list",
		Err: errors.New("file objects need the WSL host clipboard"),
	}
}
