package layout

import (
	"github.com/seekerlabs/missiongraph/pkg/plan"
)

// Compile walks a canonical document and produces the positioned node-link
// graph with all composition edges. It is a total, pure function: a
// well-formed document always compiles, and the same document always
// yields the same positions (validation is the normalizer's job).
func Compile(doc *plan.Document, cfg Config) *Graph {
	g := &Graph{}

	// First pass: vertical extent. Each objective claims a block of
	// height proportional to its child count so crowded objectives never
	// overlap their neighbors.
	heights := make([]float64, len(doc.Strategy))
	var total float64
	for i := range doc.Strategy {
		heights[i] = blockHeight(&doc.Strategy[i], cfg)
		total += heights[i]
	}

	// Root sits at the vertical midpoint of the objective column.
	g.Nodes = append(g.Nodes, Node{
		ID:       rootNodeID,
		Kind:     NodeRoot,
		Position: Position{X: cfg.ColumnRoot, Y: total / 2},
		Label:    truncate(doc.QueryContext, nodeLabelLimit),
		Details:  doc.QueryContext,
		Style:    kindStyles[NodeRoot],
	})

	var offset float64
	for i := range doc.Strategy {
		obj := &doc.Strategy[i]
		objY := offset + heights[i]/2
		objID := objectiveNodeID(obj.ID)

		g.Nodes = append(g.Nodes, Node{
			ID:       objID,
			Kind:     NodeObjective,
			Position: Position{X: cfg.ColumnObjective, Y: objY},
			Label:    truncate(obj.Description, nodeLabelLimit),
			Details:  obj.Description,
			Style:    kindStyles[NodeObjective],
		})
		g.Edges = append(g.Edges, Edge{
			ID:     compositionEdgeID(rootNodeID, objID),
			Source: rootNodeID,
			Target: objID,
			Kind:   EdgeComposition,
		})

		// Queries then tactics form a single stack centered on the
		// objective's own y.
		childCount := obj.ChildCount()
		childY := objY - float64(childCount-1)*cfg.ItemGap/2

		for _, q := range obj.Queries {
			qID := queryNodeID(obj.ID, q.ID)
			g.Nodes = append(g.Nodes, Node{
				ID:       qID,
				Kind:     NodeQuery,
				Position: Position{X: cfg.ColumnQuery, Y: childY},
				Label:    truncate(q.Description, nodeLabelLimit),
				Details:  q.Description,
				Style:    kindStyles[NodeQuery],
			})
			g.Edges = append(g.Edges, Edge{
				ID:     compositionEdgeID(objID, qID),
				Source: objID,
				Target: qID,
				Kind:   EdgeComposition,
			})
			childY += cfg.ItemGap
		}

		if len(obj.Queries) > 0 && len(obj.Tactics) > 0 {
			childY += cfg.GroupSeparatorGap
		}

		for t := range obj.Tactics {
			tac := &obj.Tactics[t]
			tID := tacticNodeID(obj.ID, tac.ID)
			g.Nodes = append(g.Nodes, Node{
				ID:       tID,
				Kind:     NodeTactic,
				Position: Position{X: cfg.ColumnTactic, Y: childY},
				Label:    truncate(tac.Description, nodeLabelLimit),
				Details:  tac.Description,
				Style:    kindStyles[NodeTactic],
			})
			g.Edges = append(g.Edges, Edge{
				ID:     compositionEdgeID(objID, tID),
				Source: objID,
				Target: tID,
				Kind:   EdgeComposition,
			})
			childY += cfg.ItemGap
		}

		offset += heights[i]
	}

	return g
}

// blockHeight is the vertical space one objective occupies: at least the
// base objective gap, expanding with the child stack plus one item gap of
// padding so adjacent stacks stay apart.
func blockHeight(obj *plan.Objective, cfg Config) float64 {
	span := childSpan(obj, cfg)
	if span == 0 {
		return cfg.ObjectiveGap
	}
	if h := span + cfg.ItemGap; h > cfg.ObjectiveGap {
		return h
	}
	return cfg.ObjectiveGap
}

// childSpan is the distance from the first to the last stacked child,
// including the separator between the query and tactic sub-groups.
func childSpan(obj *plan.Objective, cfg Config) float64 {
	n := obj.ChildCount()
	if n == 0 {
		return 0
	}
	span := float64(n-1) * cfg.ItemGap
	if len(obj.Queries) > 0 && len(obj.Tactics) > 0 {
		span += cfg.GroupSeparatorGap
	}
	return span
}
