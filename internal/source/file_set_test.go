package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("top.il", []byte("module \\a\nend\n"), 0)
	id2 := fs.Add("top.il", []byte("module \\b\nend\n"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("unexpected ids: %d %d", id1, id2)
	}

	latest, ok := fs.GetLatest("top.il")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "module \\a\nend\n" {
		t.Errorf("first version lost: %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestPositionAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.il", []byte("module \\x\n  wire \\a\nend"))
	f := fs.Get(id)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{9, LineCol{1, 10}}, // the newline itself
		{10, LineCol{2, 1}},
		{12, LineCol{2, 3}},
		{20, LineCol{3, 1}},
		{23, LineCol{3, 4}}, // EOF
	}
	for _, tc := range cases {
		if got := f.Position(tc.off); got != tc.want {
			t.Errorf("Position(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}

	if got := f.GetLine(2); got != "  wire \\a" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "end" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
	if got := f.Text(Span{File: id, Start: 2, End: 8}); got != "dule \\" {
		t.Errorf("Text = %q", got)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.il", []byte("a\nbc\n"))
	start, end := fs.Resolve(Span{File: id, Start: 2, End: 4})
	if start != (LineCol{2, 1}) || end != (LineCol{2, 3}) {
		t.Fatalf("Resolve = %+v %+v", start, end)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.il")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("module \\m\r\nend\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "module \\m\nend\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
	if _, err := fs.Load(filepath.Join(dir, "missing.il")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Errorf("cross-file Cover changed span: %v", got)
	}
	if !a.Cover(b).Contains(a) {
		t.Error("cover must contain its inputs")
	}
	if z := a.ZeroideToEnd(); !z.Empty() || z.Start != 8 {
		t.Errorf("ZeroideToEnd = %v", z)
	}
}

func TestRelativePathOutsideBase(t *testing.T) {
	base := t.TempDir()
	outside := filepath.Join(filepath.Dir(base), "other.il")
	got, err := RelativePath(outside, base)
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(filepath.FromSlash(got)) {
		t.Errorf("expected absolute fallback, got %q", got)
	}
	inside := filepath.Join(base, "sub", "a.il")
	if got, _ := RelativePath(inside, base); got != "sub/a.il" {
		t.Errorf("RelativePath inside = %q", got)
	}
}
