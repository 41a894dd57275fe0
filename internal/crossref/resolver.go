package crossref

import (
	"github.com/starford/ansuz/internal/extract"
	"github.com/starford/ansuz/internal/models"
)

// Outgoing extracts an object's outgoing links: wikilinks in document order
// followed by deduplicated citations in first-occurrence order.
func Outgoing(o *models.Object) []models.Link {
	links := extract.ParseWikiLinks(o.Body)
	return append(links, extract.ParseCitations(o.Body)...)
}

// ObjectCrossRefs computes the cross-references of a single object against
// the full snapshot. Semantically equivalent to the obj entry of
// ComputeAllCrossRefs(all).
func ObjectCrossRefs(obj *models.Object, all []models.Object) *models.CrossRefs {
	outgoing := make([][]models.Link, len(all))
	for i := range all {
		outgoing[i] = Outgoing(&all[i])
	}
	return &models.CrossRefs{
		ID:        obj.ID,
		Outgoing:  Outgoing(obj),
		Backlinks: backlinksFor(obj, all, outgoing),
	}
}

// ComputeAllCrossRefs computes cross-references for every object in the
// snapshot, parsing each body exactly once. The result maps object id to
// CrossRefs; on duplicate ids the first object in snapshot order wins.
//
// The backlink pass is O(n*m) over (target, source) pairs; there is no
// incremental path, the full snapshot is recomputed on every call.
func ComputeAllCrossRefs(all []models.Object) map[string]*models.CrossRefs {
	outgoing := make([][]models.Link, len(all))
	for i := range all {
		outgoing[i] = Outgoing(&all[i])
	}

	refs := make(map[string]*models.CrossRefs, len(all))
	for i := range all {
		target := &all[i]
		if _, taken := refs[target.ID]; taken {
			continue
		}
		refs[target.ID] = &models.CrossRefs{
			ID:        target.ID,
			Outgoing:  outgoing[i],
			Backlinks: backlinksFor(target, all, outgoing),
		}
	}
	return refs
}

// backlinksFor collects inbound references to target in source iteration
// order: wikilink backlinks first, then citation backlinks. An object never
// backlinks itself, even when its body links to its own id or filename.
func backlinksFor(target *models.Object, all []models.Object, outgoing [][]models.Link) []models.Backlink {
	backlinks := []models.Backlink{}
	fallback := target.FallbackKey()

	for i := range all {
		source := &all[i]
		if source.ID == target.ID {
			continue
		}
		for _, link := range outgoing[i] {
			if link.Type != models.LinkTypeWikilink {
				continue
			}
			if link.TargetID != target.ID && link.TargetID != fallback {
				continue
			}
			backlinks = append(backlinks, models.Backlink{
				SourceID:    source.ID,
				SourceTitle: source.Title,
				SourcePath:  source.Path,
				Context:     link.Context,
				Type:        models.LinkTypeWikilink,
			})
			break
		}
	}

	if target.IsBibtexEntry() {
		for i := range all {
			source := &all[i]
			if source.ID == target.ID {
				continue
			}
			for _, link := range outgoing[i] {
				if link.Type != models.LinkTypeCitation || link.TargetID != target.CitationKey {
					continue
				}
				backlinks = append(backlinks, models.Backlink{
					SourceID:    source.ID,
					SourceTitle: source.Title,
					SourcePath:  source.Path,
					Context:     link.Context,
					Type:        models.LinkTypeCitation,
				})
			}
		}
	}

	return backlinks
}
