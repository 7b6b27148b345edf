package layout

import (
	"github.com/seekerlabs/missiongraph/pkg/plan"
)

// ResolveDependencies performs the second pass over each objective's
// tactics, inferring producer→consumer edges wherever a tactic's declared
// dependency names a sibling tactic's expected artifact. Matching is exact
// and objective-scoped: an artifact produced in another objective never
// yields an edge. Dependencies that match nothing refer to external
// resources and are dropped without error.
//
// The returned edges are for the caller to append; composition edges are
// never touched.
func ResolveDependencies(doc *plan.Document, g *Graph) []Edge {
	var edges []Edge
	seen := make(map[string]bool)

	for i := range doc.Strategy {
		obj := &doc.Strategy[i]

		// Index this objective's producers by artifact name.
		producers := make(map[string]string, len(obj.Tactics))
		for t := range obj.Tactics {
			if a := obj.Tactics[t].ExpectedArtifact; a != "" {
				producers[a] = obj.Tactics[t].ID
			}
		}

		for t := range obj.Tactics {
			consumer := &obj.Tactics[t]
			for _, dep := range consumer.Dependencies {
				producerID, ok := producers[dep]
				if !ok || producerID == consumer.ID {
					// External resource, or a tactic listing its own
					// output: no edge either way.
					continue
				}

				source := tacticNodeID(obj.ID, producerID)
				target := tacticNodeID(obj.ID, consumer.ID)
				id := dependencyEdgeID(source, target)
				if seen[id] {
					continue
				}
				seen[id] = true

				edges = append(edges, Edge{
					ID:     id,
					Source: source,
					Target: target,
					Kind:   EdgeDependency,
					Label:  truncate(dep, edgeLabelLimit),
				})
			}
		}
	}

	return edges
}
