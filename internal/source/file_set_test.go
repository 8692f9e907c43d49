package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetReservesZeroID(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.yapl", []byte("x"))
	if id == NoFileID {
		t.Fatalf("first file must not receive NoFileID")
	}
	if fs.Get(NoFileID) != nil {
		t.Fatalf("NoFileID must not resolve to a file")
	}
	if fs.Len() != 1 {
		t.Fatalf("expected 1 file, got %d", fs.Len())
	}
}

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()
	id1 := fs.Add("test.yapl", []byte("hello world"), 0)
	id2 := fs.Add("test.yapl", []byte("hello universe"), 0)
	if id1 == id2 {
		t.Fatalf("re-adding a path must allocate a new FileID")
	}
	latest, ok := fs.GetLatest("test.yapl")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest: got %d ok=%v, want %d", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Fatalf("old version lost, got %q", got)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.yapl", []byte("first\nsecond\nthird"))
	f := fs.Get(id)
	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.yapl")
	content := []byte("\xEF\xBB\xBFa\r\nb\r\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if f.GetLine(2) != "b" {
		t.Fatalf("line 2: got %q", f.GetLine(2))
	}
}

func TestRelativePath(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "base")
	inside := filepath.Join(base, "src", "main.yapl")
	outside := filepath.Join(tmp, "other", "main.yapl")

	if got := RelativePath(inside, base); got != "src/main.yapl" {
		t.Fatalf("inside base: got %q", got)
	}
	if got := RelativePath(outside, base); got != normalizePath(outside) {
		t.Fatalf("outside base must fall back to absolute path, got %q", got)
	}
}

func TestPosOrdering(t *testing.T) {
	a := Pos{Line: 2, Col: 5}
	b := Pos{Line: 2, Col: 7}
	c := Pos{Line: 3, Col: 1}
	if !a.Before(b) || !b.Before(c) || c.Before(a) {
		t.Fatalf("unexpected ordering")
	}
	if (Pos{}).IsValid() {
		t.Fatalf("zero Pos must be invalid")
	}
	if a.String() != "2:5" {
		t.Fatalf("String: got %q", a.String())
	}
}
