package layout

// Graph is the compiled node-link diagram. It is a plain value object; the
// interactive renderer consumes it as-is.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeByID returns the node with the given id, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// NodeCounts reports how many nodes exist per kind.
func (g *Graph) NodeCounts() map[NodeKind]int {
	counts := make(map[NodeKind]int)
	for i := range g.Nodes {
		counts[g.Nodes[i].Kind]++
	}
	return counts
}

// EdgeCounts reports how many edges exist per kind.
func (g *Graph) EdgeCounts() map[EdgeKind]int {
	counts := make(map[EdgeKind]int)
	for i := range g.Edges {
		counts[g.Edges[i].Kind]++
	}
	return counts
}

// EdgesFrom returns all edges whose source is the given node id.
func (g *Graph) EdgesFrom(id string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}
