// Package crossref resolves wikilink and citation references between vault
// objects: identifier indexes, per-object outgoing links, and all-pairs
// backlink computation.
//
// Every entry point takes a full in-memory snapshot and returns freshly
// allocated results. Malformed input degrades to fewer results, never to an
// error.
package crossref

import (
	"github.com/starford/ansuz/internal/models"
)

// BuildObjectIndex maps identifiers to objects. Each object is registered
// under its explicit id (first writer wins on collision), and under the
// basename of its path with any trailing .md stripped. Explicit id
// registrations always take priority over filename fallbacks, regardless of
// scan order.
func BuildObjectIndex(objs []models.Object) map[string]*models.Object {
	idx := make(map[string]*models.Object, len(objs)*2)
	for i := range objs {
		o := &objs[i]
		if _, taken := idx[o.ID]; !taken {
			idx[o.ID] = o
		}
	}
	for i := range objs {
		o := &objs[i]
		if key := o.FallbackKey(); key != "" {
			if _, taken := idx[key]; !taken {
				idx[key] = o
			}
		}
	}
	return idx
}

// BuildCitationKeyIndex maps citation keys to objects. Only bibliographic
// entries (type "bibtex_entry" with a non-empty citation key) are
// registered; first writer wins on duplicate keys.
func BuildCitationKeyIndex(objs []models.Object) map[string]*models.Object {
	idx := make(map[string]*models.Object)
	for i := range objs {
		o := &objs[i]
		if !o.IsBibtexEntry() {
			continue
		}
		if _, taken := idx[o.CitationKey]; !taken {
			idx[o.CitationKey] = o
		}
	}
	return idx
}
