package vault

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/ansuz/internal/storage"
)

func TestFromFile_FrontmatterID(t *testing.T) {
	data := []byte("---\nid: custom-id\ntype: bibtex_entry\ncitation_key: smith2024\nproject: research\n---\nbody")
	obj, err := FromFile("refs/smith.md", data)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if obj.ID != "custom-id" {
		t.Errorf("id = %q, want custom-id", obj.ID)
	}
	if obj.CitationKey != "smith2024" || obj.Type != "bibtex_entry" || obj.Project != "research" {
		t.Errorf("obj = %+v", obj)
	}
	if obj.Checksum == "" {
		t.Error("missing checksum")
	}
}

func TestFromFile_PathFallbackID(t *testing.T) {
	obj, err := FromFile("notes/daily/2026-08-25.md", []byte("no frontmatter"))
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if obj.ID != "notes/daily/2026-08-25" {
		t.Errorf("id = %q, want path without extension", obj.ID)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"a.md":     "---\ntitle: A\n---\n[[b]]",
		"sub/b.md": "# B",
	}
	for rel, content := range files {
		if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(rel)), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}

	objs, err := Load(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(objs) != 2 {
		t.Fatalf("len(objs) = %d, want 2", len(objs))
	}
	byID := map[string]bool{}
	for _, o := range objs {
		byID[o.ID] = true
	}
	if !byID["a"] || !byID["sub/b"] {
		t.Errorf("ids = %v", byID)
	}
}
