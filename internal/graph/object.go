// Package graph projects vault objects and project profiles into node/edge
// structures for visualization.
package graph

import (
	"github.com/starford/ansuz/internal/crossref"
	"github.com/starford/ansuz/internal/extract"
	"github.com/starford/ansuz/internal/models"
)

// BuildObjectGraph returns one node per object and one edge per resolved
// (source, target) wikilink pair. Unresolved links produce no edge. Edges
// are a set: repeated links between the same pair collapse to one edge, in
// first-occurrence order. Self-edges appear only when the wikilink resolves
// back to its own object.
func BuildObjectGraph(objs []models.Object) *models.Graph {
	idx := crossref.BuildObjectIndex(objs)

	nodes := make([]models.GraphNode, 0, len(objs))
	edges := []models.GraphEdge{}
	seen := make(map[string]struct{})

	for i := range objs {
		o := &objs[i]
		links := extract.ParseWikiLinks(o.Body)

		title := o.Title
		if title == "" {
			title = o.ID
		}
		nodes = append(nodes, models.GraphNode{
			ID:        o.ID,
			Title:     title,
			Type:      o.Type,
			Project:   o.Project,
			Path:      o.Path,
			LinkCount: len(links),
		})

		for _, link := range links {
			target, ok := idx[link.TargetID]
			if !ok {
				continue
			}
			key := o.ID + "->" + target.ID
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, models.GraphEdge{
				Source: o.ID,
				Target: target.ID,
			})
		}
	}

	return &models.Graph{Nodes: nodes, Edges: edges}
}
