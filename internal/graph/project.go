package graph

import (
	"github.com/starford/ansuz/internal/models"
)

// BuildProjectDependencyGraph builds the dependency graph over declared
// project profiles. Nodes follow declaration order; object counts tally the
// documents whose project field names the profile (objects in undeclared
// projects are excluded). Each includes entry yields one directed edge when
// it names an existing profile; dangling includes are skipped. Cycles and
// self-loops are preserved for the consumer to render.
func BuildProjectDependencyGraph(profiles []models.ProjectProfile, objs []models.Object) *models.ProjectGraph {
	counts := make(map[string]int, len(profiles))
	for i := range objs {
		counts[objs[i].Project]++
	}

	declared := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		declared[p.Name] = struct{}{}
	}

	nodes := make([]models.ProjectGraphNode, 0, len(profiles))
	edges := []models.GraphEdge{}
	for _, p := range profiles {
		nodes = append(nodes, models.ProjectGraphNode{
			ID:          p.Name,
			Title:       p.Name,
			ObjectCount: counts[p.Name],
		})
		for _, inc := range p.Includes {
			if _, ok := declared[inc]; !ok {
				continue
			}
			edges = append(edges, models.GraphEdge{
				Source:   p.Name,
				Target:   inc,
				Directed: true,
			})
		}
	}

	return &models.ProjectGraph{
		Type:  models.ProjectGraphType,
		Nodes: nodes,
		Edges: edges,
	}
}
