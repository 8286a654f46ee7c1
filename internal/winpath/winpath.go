// Package winpath translates POSIX paths into host-native path strings.
//
// On WSL the translation is done by wslpath, the utility the distro ships;
// it is the one external collaborator for path concerns. Outside WSL the
// "host" is the local machine and translation degrades to absolute-path
// resolution.
package winpath

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TranslateError reports a path the host cannot address. Fatal for the entry
// that produced it.
type TranslateError struct {
	Path string
	Err  error
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("translate %s: %v", e.Path, e.Err)
}

func (e *TranslateError) Unwrap() error { return e.Err }

// ToWindows resolves path (following symlinks, so the host sees the real
// file) and converts it with `wslpath -w`.
func ToWindows(path string) (string, error) {
	abs, err := canonical(path)
	if err != nil {
		return "", &TranslateError{Path: path, Err: err}
	}

	out, err := exec.Command("wslpath", "-w", abs).Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			err = errors.New(string(bytes.TrimSpace(ee.Stderr)))
		}
		return "", &TranslateError{Path: path, Err: err}
	}

	win := strings.TrimSpace(string(out))
	slog.Debug("translated path", "posix", abs, "windows", win)
	return win, nil
}

// ToLocal is the non-WSL translator: the canonical absolute path itself.
func ToLocal(path string) (string, error) {
	abs, err := canonical(path)
	if err != nil {
		return "", &TranslateError{Path: path, Err: err}
	}
	return abs, nil
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// IsWSL reports whether the Windows host plumbing (wslpath, clip.exe,
// powershell.exe) can be expected to work.
func IsWSL() bool {
	if os.Getenv("WSL_DISTRO_NAME") != "" || os.Getenv("WSL_INTEROP") != "" {
		return true
	}
	_, err := exec.LookPath("wslpath")
	return err == nil
}
