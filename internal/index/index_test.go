package index

import (
	"os"
	"testing"
	"time"

	"github.com/starford/ansuz/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "ansuz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testObject(path, id string) *models.Object {
	return &models.Object{
		Path:      path,
		ID:        id,
		Checksum:  "cs-" + id,
		Tags:      []string{},
		UpdatedAt: time.Now(),
	}
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM objects`).Scan(&count); err != nil {
		t.Fatalf("objects table missing: %v", err)
	}
}

func TestUpsertAndGetChecksum(t *testing.T) {
	db := testDB(t)
	o := &models.Object{
		Path:        "refs/smith.md",
		ID:          "smith",
		Title:       "Smith 2024",
		Type:        models.TypeBibtexEntry,
		Project:     "research",
		CitationKey: "smith2024",
		Tags:        []string{"paper"},
		Body:        "A bibliographic entry.",
		Checksum:    "abc123",
		UpdatedAt:   time.Now(),
	}
	if err := db.UpsertObject(o); err != nil {
		t.Fatalf("UpsertObject: %v", err)
	}
	cs, err := db.GetChecksum("refs/smith.md")
	if err != nil {
		t.Fatalf("GetChecksum: %v", err)
	}
	if cs != "abc123" {
		t.Errorf("checksum = %q, want %q", cs, "abc123")
	}
}

func TestAllObjects_Snapshot(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertObject(&models.Object{Path: "b.md", ID: "b", Body: "[[a]]", Checksum: "1", UpdatedAt: time.Now()})
	_ = db.UpsertObject(&models.Object{Path: "a.md", ID: "a", Body: "[[b]]", Checksum: "2", UpdatedAt: time.Now()})

	objs, err := db.AllObjects()
	if err != nil {
		t.Fatalf("AllObjects: %v", err)
	}
	if len(objs) != 2 {
		t.Fatalf("len(objs) = %d, want 2", len(objs))
	}
	// Deterministic path order.
	if objs[0].Path != "a.md" || objs[1].Path != "b.md" {
		t.Errorf("order = [%s %s], want [a.md b.md]", objs[0].Path, objs[1].Path)
	}
	if objs[0].Body != "[[b]]" {
		t.Errorf("body = %q, snapshot must include bodies", objs[0].Body)
	}
}

func TestDeleteObject(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertObject(testObject("del.md", "del"))

	if err := db.DeleteObject("del.md"); err != nil {
		t.Fatalf("DeleteObject: %v", err)
	}
	cs, _ := db.GetChecksum("del.md")
	if cs != "" {
		t.Errorf("deleted object still has checksum %q", cs)
	}
}

func TestUpsertUpdatesExisting(t *testing.T) {
	db := testDB(t)
	first := testObject("up.md", "up")
	first.Title = "Old"
	_ = db.UpsertObject(first)

	second := testObject("up.md", "up")
	second.Title = "New"
	second.Checksum = "2"
	_ = db.UpsertObject(second)

	cs, _ := db.GetChecksum("up.md")
	if cs != "2" {
		t.Errorf("checksum = %q, want %q", cs, "2")
	}
	objs, _ := db.AllObjects()
	if len(objs) != 1 || objs[0].Title != "New" {
		t.Errorf("objs = %+v, want single updated row", objs)
	}
}

func TestGetChecksum_NotFound(t *testing.T) {
	db := testDB(t)
	cs, err := db.GetChecksum("nonexistent.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs != "" {
		t.Errorf("expected empty checksum, got %q", cs)
	}
}

func TestListObjects_FilterAndTotal(t *testing.T) {
	db := testDB(t)
	for _, o := range []*models.Object{
		{Path: "a.md", ID: "a", Project: "main", Type: "note", Checksum: "1", UpdatedAt: time.Now()},
		{Path: "b.md", ID: "b", Project: "main", Type: models.TypeBibtexEntry, Checksum: "2", UpdatedAt: time.Now()},
		{Path: "c.md", ID: "c", Project: "side", Type: "note", Checksum: "3", UpdatedAt: time.Now()},
	} {
		if err := db.UpsertObject(o); err != nil {
			t.Fatal(err)
		}
	}

	objs, total, err := db.ListObjects(10, 0, "main", "", "path")
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if total != 2 || len(objs) != 2 {
		t.Errorf("total = %d, len = %d, want 2/2", total, len(objs))
	}

	objs, total, err = db.ListObjects(10, 0, "", models.TypeBibtexEntry, "")
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if total != 1 || len(objs) != 1 || objs[0].ID != "b" {
		t.Errorf("type filter: total = %d, objs = %+v", total, objs)
	}
}

func TestListObjects_Pagination(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertObject(testObject("a.md", "a"))
	_ = db.UpsertObject(testObject("b.md", "b"))
	_ = db.UpsertObject(testObject("c.md", "c"))

	objs, total, err := db.ListObjects(2, 2, "", "", "path")
	if err != nil {
		t.Fatalf("ListObjects: %v", err)
	}
	if total != 3 || len(objs) != 1 || objs[0].Path != "c.md" {
		t.Errorf("page = %+v, total = %d", objs, total)
	}
}

func TestSearch_Basic(t *testing.T) {
	db := testDB(t)
	o := testObject("s.md", "s")
	o.Title = "Search Me"
	o.Body = "uniqueword appears here"
	_ = db.UpsertObject(o)

	results, err := db.Search("uniqueword", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Path != "s.md" {
		t.Errorf("search results = %+v, want 1 hit for s.md", results)
	}
}
