package crossref

import (
	"reflect"
	"testing"

	"github.com/starford/ansuz/internal/models"
)

func obj(id, path, body string) models.Object {
	return models.Object{ID: id, Path: path, Body: body}
}

func TestBuildObjectIndex_IDAndFallback(t *testing.T) {
	objs := []models.Object{
		obj("alpha", "notes/alpha-note.md", ""),
		obj("beta", "beta.md", ""),
	}
	idx := BuildObjectIndex(objs)
	if idx["alpha"] == nil || idx["alpha"].ID != "alpha" {
		t.Error("missing id registration for alpha")
	}
	if idx["alpha-note"] == nil || idx["alpha-note"].ID != "alpha" {
		t.Error("missing filename fallback for alpha")
	}
	if idx["beta"] == nil || idx["beta"].ID != "beta" {
		t.Error("missing id registration for beta")
	}
}

func TestBuildObjectIndex_DuplicateIDFirstWins(t *testing.T) {
	objs := []models.Object{
		obj("dup", "first.md", ""),
		obj("dup", "second.md", ""),
	}
	idx := BuildObjectIndex(objs)
	if idx["dup"].Path != "first.md" {
		t.Errorf("idx[dup].Path = %q, want first.md", idx["dup"].Path)
	}
}

func TestBuildObjectIndex_ExplicitIDBeatsFallback(t *testing.T) {
	// The fallback key of the first object collides with the explicit id of
	// the second. The explicit id must win even though the fallback owner
	// is scanned first.
	objs := []models.Object{
		obj("other", "dir/shared.md", ""),
		obj("shared", "elsewhere.md", ""),
	}
	idx := BuildObjectIndex(objs)
	if idx["shared"].ID != "shared" {
		t.Errorf("idx[shared].ID = %q, want explicit id to take priority", idx["shared"].ID)
	}
}

func TestBuildCitationKeyIndex(t *testing.T) {
	objs := []models.Object{
		{ID: "paper", Path: "refs/paper.md", Type: models.TypeBibtexEntry, CitationKey: "smith2024"},
		{ID: "note", Path: "note.md", CitationKey: "ignored"}, // wrong type
		{ID: "empty", Path: "refs/empty.md", Type: models.TypeBibtexEntry},
	}
	idx := BuildCitationKeyIndex(objs)
	if len(idx) != 1 {
		t.Fatalf("len(idx) = %d, want 1", len(idx))
	}
	if idx["smith2024"] == nil || idx["smith2024"].ID != "paper" {
		t.Errorf("idx = %v", idx)
	}
}

func TestOutgoing_WikilinksThenCitations(t *testing.T) {
	o := obj("a", "a.md", "[@cite1] then [[link1]] and [[link2]] and [@cite1] again")
	out := Outgoing(&o)
	var got []string
	for _, l := range out {
		got = append(got, string(l.Type)+":"+l.TargetID)
	}
	want := []string{"wikilink:link1", "wikilink:link2", "citation:cite1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("outgoing = %v, want %v", got, want)
	}
}

func TestComputeAllCrossRefs_Backlinks(t *testing.T) {
	objs := []models.Object{
		{ID: "a", Title: "A", Path: "a.md", Body: "links to [[b]]"},
		obj("b", "b.md", "links back to [[a]]"),
		obj("c", "c.md", "also [[b]] and [[b]] twice"),
	}
	refs := ComputeAllCrossRefs(objs)

	b := refs["b"]
	if b == nil {
		t.Fatal("missing refs for b")
	}
	if len(b.Backlinks) != 2 {
		t.Fatalf("b backlinks = %+v, want 2", b.Backlinks)
	}
	if b.Backlinks[0].SourceID != "a" || b.Backlinks[1].SourceID != "c" {
		t.Errorf("backlink order = [%s %s], want [a c]", b.Backlinks[0].SourceID, b.Backlinks[1].SourceID)
	}
	if b.Backlinks[0].SourceTitle != "A" || b.Backlinks[0].SourcePath != "a.md" {
		t.Errorf("backlink source fields = %+v", b.Backlinks[0])
	}
	if b.Backlinks[0].Type != models.LinkTypeWikilink {
		t.Errorf("backlink type = %q", b.Backlinks[0].Type)
	}
}

func TestComputeAllCrossRefs_SelfLinkExcluded(t *testing.T) {
	objs := []models.Object{
		obj("self", "self.md", "I link to [[self]] and [[self.md|me]]"),
	}
	refs := ComputeAllCrossRefs(objs)
	r := refs["self"]
	if len(r.Outgoing) != 2 {
		t.Errorf("outgoing = %+v, want 2 links", r.Outgoing)
	}
	if len(r.Backlinks) != 0 {
		t.Errorf("backlinks = %+v, want none for self-link", r.Backlinks)
	}
}

func TestComputeAllCrossRefs_FilenameFallbackBacklink(t *testing.T) {
	objs := []models.Object{
		obj("target-id", "dir/target-file.md", ""),
		obj("src", "src.md", "see [[target-file]]"),
	}
	refs := ComputeAllCrossRefs(objs)
	bl := refs["target-id"].Backlinks
	if len(bl) != 1 || bl[0].SourceID != "src" {
		t.Errorf("backlinks = %+v, want one from src via filename fallback", bl)
	}
}

func TestComputeAllCrossRefs_CitationBacklink(t *testing.T) {
	objs := []models.Object{
		{ID: "paper", Path: "refs/paper.md", Type: models.TypeBibtexEntry, CitationKey: "smith2024"},
		obj("note", "note.md", "as argued in [@smith2024]"),
	}
	refs := ComputeAllCrossRefs(objs)
	bl := refs["paper"].Backlinks
	if len(bl) != 1 {
		t.Fatalf("backlinks = %+v, want 1", bl)
	}
	if bl[0].SourceID != "note" || bl[0].Type != models.LinkTypeCitation {
		t.Errorf("backlink = %+v", bl[0])
	}
}

func TestComputeAllCrossRefs_WikilinkBacklinksPrecedeCitations(t *testing.T) {
	objs := []models.Object{
		{ID: "paper", Path: "paper.md", Type: models.TypeBibtexEntry, CitationKey: "key1"},
		obj("citing", "citing.md", "[@key1]"),
		obj("linking", "linking.md", "[[paper]]"),
	}
	refs := ComputeAllCrossRefs(objs)
	bl := refs["paper"].Backlinks
	if len(bl) != 2 {
		t.Fatalf("backlinks = %+v, want 2", bl)
	}
	if bl[0].Type != models.LinkTypeWikilink || bl[1].Type != models.LinkTypeCitation {
		t.Errorf("backlink types = [%s %s], want wikilinks first", bl[0].Type, bl[1].Type)
	}
}

func TestComputeAllCrossRefs_OneBacklinkPerSourcePair(t *testing.T) {
	objs := []models.Object{
		obj("t", "t.md", ""),
		obj("s", "s.md", "[[t]] mentioned [[t]] twice and by file [[t.md]]"),
	}
	refs := ComputeAllCrossRefs(objs)
	if len(refs["t"].Backlinks) != 1 {
		t.Errorf("backlinks = %+v, want a single entry per source", refs["t"].Backlinks)
	}
}

func TestComputeAllCrossRefs_Idempotent(t *testing.T) {
	objs := []models.Object{
		{ID: "paper", Path: "paper.md", Type: models.TypeBibtexEntry, CitationKey: "k"},
		obj("a", "a.md", "[[b]] and [@k]"),
		obj("b", "b.md", "[[a]]"),
	}
	first := ComputeAllCrossRefs(objs)
	second := ComputeAllCrossRefs(objs)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated computation on the same snapshot differs")
	}
}

func TestObjectCrossRefs_MatchesBulk(t *testing.T) {
	objs := []models.Object{
		obj("a", "a.md", "[[b]]"),
		obj("b", "b.md", "[[a]] and [@missing]"),
	}
	bulk := ComputeAllCrossRefs(objs)
	for i := range objs {
		single := ObjectCrossRefs(&objs[i], objs)
		if !reflect.DeepEqual(single, bulk[objs[i].ID]) {
			t.Errorf("single-object refs for %s diverge from bulk", objs[i].ID)
		}
	}
}

func TestComputeAllCrossRefs_UnresolvedTargetsAreKept(t *testing.T) {
	// Outgoing links are reported even when nothing resolves them; only
	// backlinks require resolution.
	objs := []models.Object{obj("a", "a.md", "[[nowhere]]")}
	refs := ComputeAllCrossRefs(objs)
	if len(refs["a"].Outgoing) != 1 {
		t.Errorf("outgoing = %+v", refs["a"].Outgoing)
	}
}
