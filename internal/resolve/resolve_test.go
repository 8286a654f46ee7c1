package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.klb.dev/wslclip/internal/input"
)

var (
	pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 24)...)
	pdfBytes = []byte("%PDF-1.7\nfake body\n")
	stlBytes = []byte("solid cube\n facet normal 0 0 1\nendsolid cube\n")
)

func fixture(t *testing.T, dir, name string, content []byte) *input.Descriptor {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return input.NewFile(p)
}

func TestResolveOverrideWins(t *testing.T) {
	// The file does not exist: an override must short-circuit before any
	// header read could fail.
	missing := input.NewFile("/nonexistent/screenshot.png")
	for _, m := range []Mode{Text, Image, FileObject, Path} {
		got, err := Resolve([]*input.Descriptor{missing}, &m)
		if err != nil {
			t.Fatalf("override %v: unexpected error %v", m, err)
		}
		if got != m {
			t.Errorf("override %v: got %v", m, got)
		}
	}
}

func TestResolveNoInput(t *testing.T) {
	_, err := Resolve(nil, nil)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want ErrNoInput", err)
	}
}

func TestResolveStdinIsText(t *testing.T) {
	got, err := Resolve([]*input.Descriptor{input.NewStdin()}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != Text {
		t.Errorf("got %v, want Text", got)
	}
}

func TestResolveSingleImage(t *testing.T) {
	// screenshot.png scenario: PNG magic plus .png extension resolves Image.
	d := fixture(t, t.TempDir(), "screenshot.png", pngBytes)
	got, err := Resolve([]*input.Descriptor{d}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != Image {
		t.Errorf("got %v, want Image", got)
	}
}

func TestResolveMagicBeatsExtension(t *testing.T) {
	// PNG bytes behind a .txt name still resolve Image.
	d := fixture(t, t.TempDir(), "sneaky.txt", pngBytes)
	got, err := Resolve([]*input.Descriptor{d}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != Image {
		t.Errorf("got %v, want Image", got)
	}
}

func TestResolveAssetsForceFileObject(t *testing.T) {
	// model.stl + report.pdf: a 3D asset and a document both classify
	// outside text, so the batch is a drop list.
	dir := t.TempDir()
	stl := fixture(t, dir, "model.stl", stlBytes)
	pdf := fixture(t, dir, "report.pdf", pdfBytes)

	got, err := Resolve([]*input.Descriptor{stl, pdf}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != FileObject {
		t.Errorf("got %v, want FileObject", got)
	}
}

func TestResolveMixedImageAndText(t *testing.T) {
	dir := t.TempDir()
	img := fixture(t, dir, "a.png", pngBytes)
	txt := fixture(t, dir, "b.txt", []byte("hello\n"))

	got, err := Resolve([]*input.Descriptor{img, txt}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != FileObject {
		t.Errorf("got %v, want FileObject", got)
	}
}

func TestResolveMixedImageAndDocument(t *testing.T) {
	dir := t.TempDir()
	img := fixture(t, dir, "a.png", pngBytes)
	doc := fixture(t, dir, "r.pdf", pdfBytes)

	got, err := Resolve([]*input.Descriptor{img, doc}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != FileObject {
		t.Errorf("got %v, want FileObject", got)
	}
}

func TestResolveAllImagesStayImage(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir, "a.png", pngBytes)
	b := fixture(t, dir, "b.png", pngBytes)

	got, err := Resolve([]*input.Descriptor{a, b}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != Image {
		t.Errorf("got %v, want Image", got)
	}
}

func TestResolveAllTextConcatenates(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir, "a.txt", []byte("alpha\n"))
	b := fixture(t, dir, "b.txt", []byte("beta\n"))

	got, err := Resolve([]*input.Descriptor{a, b}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != Text {
		t.Errorf("got %v, want Text", got)
	}
}

// Resolution must be commutative over input order for a fixed set of files.
func TestResolveCommutative(t *testing.T) {
	dir := t.TempDir()
	img := fixture(t, dir, "a.png", pngBytes)
	txt := fixture(t, dir, "b.txt", []byte("hello\n"))
	pdf := fixture(t, dir, "c.pdf", pdfBytes)

	sets := [][]*input.Descriptor{
		{img, txt, pdf},
		{pdf, img, txt},
		{txt, pdf, img},
		{pdf, txt, img},
	}
	first, err := Resolve(sets[0], nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, s := range sets[1:] {
		got, err := Resolve(s, nil)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got != first {
			t.Errorf("order-dependent resolution: %v vs %v", got, first)
		}
	}
}

func TestResolveEmptyFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	empty := fixture(t, dir, "empty.txt", nil)

	got, err := Resolve([]*input.Descriptor{empty}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != Text {
		t.Errorf("empty .txt: got %v, want Text", got)
	}

	// A zero-byte file with a denylisted extension still forces FileObject.
	emptyBin := fixture(t, dir, "empty.dll", nil)
	got, err = Resolve([]*input.Descriptor{emptyBin}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != FileObject {
		t.Errorf("empty .dll: got %v, want FileObject", got)
	}
}

func TestResolveDenylistedExtension(t *testing.T) {
	// Content with no recognizable magic, extension on the denylist.
	d := fixture(t, t.TempDir(), "payload.bin", []byte{0x10, 0x20, 0x30, 0x40})
	got, err := Resolve([]*input.Descriptor{d}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != FileObject {
		t.Errorf("got %v, want FileObject", got)
	}
}

func TestResolveNullByteHeuristic(t *testing.T) {
	// No signature, harmless extension, but a NUL in the header.
	d := fixture(t, t.TempDir(), "data.txt", []byte{'a', 0x00, 'b'})
	got, err := Resolve([]*input.Descriptor{d}, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != FileObject {
		t.Errorf("got %v, want FileObject", got)
	}
}

func TestResolveUnreadableFileAborts(t *testing.T) {
	missing := input.NewFile(filepath.Join(t.TempDir(), "gone.txt"))
	_, err := Resolve([]*input.Descriptor{missing}, nil)
	var ue *input.UnreadableError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnreadableError", err)
	}
}
