package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func testFS(t *testing.T) (*FS, string) {
	t.Helper()
	dir := t.TempDir()
	f, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return f, dir
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewFS_MissingDir(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestList_OnlyMarkdown(t *testing.T) {
	f, root := testFS(t)
	writeFile(t, root, "a.md", "# A")
	writeFile(t, root, "sub/b.md", "# B")
	writeFile(t, root, "ignore.txt", "nope")

	metas, err := f.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("len(metas) = %d, want 2", len(metas))
	}
	paths := map[string]bool{}
	for _, m := range metas {
		paths[m.Path] = true
		if m.Checksum == "" {
			t.Errorf("missing checksum for %s", m.Path)
		}
	}
	if !paths["a.md"] || !paths["sub/b.md"] {
		t.Errorf("paths = %v, want forward-slash relative paths", paths)
	}
}

func TestRead(t *testing.T) {
	f, root := testFS(t)
	writeFile(t, root, "sub/note.md", "content here")

	data, err := f.Read("sub/note.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "content here" {
		t.Errorf("data = %q", data)
	}
}

func TestRead_TraversalRejected(t *testing.T) {
	f, _ := testFS(t)
	if _, err := f.Read("../outside.md"); err == nil {
		t.Error("expected traversal to be rejected")
	}
	if _, err := f.Read("/etc/passwd"); err == nil {
		t.Error("expected absolute path to be rejected")
	}
}

func TestRead_NotFound(t *testing.T) {
	f, _ := testFS(t)
	if _, err := f.Read("missing.md"); err == nil {
		t.Error("expected error for missing file")
	}
}
