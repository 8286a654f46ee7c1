package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileExtension(t *testing.T) {
	tests := []struct{ path, want string }{
		{"report.PDF", "pdf"},
		{"archive.tar.gz", "gz"},
		{"README", ""},
		{"/tmp/.hidden", "hidden"},
	}
	for _, tt := range tests {
		if got := NewFile(tt.path).Ext; got != tt.want {
			t.Errorf("NewFile(%q).Ext = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestHeaderReadOnce(t *testing.T) {
	p := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(p, []byte("before"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := NewFile(p)
	first, err := d.Header()
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	if string(first) != "before" {
		t.Fatalf("header = %q", first)
	}

	// The file changes on disk; the cached sniff must not.
	if err := os.WriteFile(p, []byte("after!"), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := d.Header()
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	if string(second) != "before" {
		t.Errorf("second sniff re-read the file: %q", second)
	}
}

func TestHeaderEmptyFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := NewFile(p).Header()
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	if len(h) != 0 {
		t.Errorf("header = %q, want empty", h)
	}
}

func TestHeaderMissingFile(t *testing.T) {
	d := NewFile(filepath.Join(t.TempDir(), "gone"))
	_, err := d.Header()
	var ue *UnreadableError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnreadableError", err)
	}
}

func TestStdinNeverSniffed(t *testing.T) {
	d := NewStdin()
	if !d.IsStdin() || d.SizeKnown {
		t.Fatalf("stdin descriptor = %+v", d)
	}
	h, err := d.Header()
	if err != nil || h != nil {
		t.Errorf("Header() = %v, %v; want nil, nil", h, err)
	}
}
