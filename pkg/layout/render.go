package layout

import (
	"fmt"
	"strings"
)

// ToMermaid generates a Mermaid diagram of the compiled graph. Composition
// edges are solid, dependency edges dashed and labeled with the matched
// artifact.
func (g *Graph) ToMermaid() string {
	var lines []string
	lines = append(lines, "graph LR")

	for _, n := range g.Nodes {
		lines = append(lines, fmt.Sprintf("  %s[\"%s\"]:::%s", mermaidID(n.ID), mermaidEscape(n.Label), n.Kind))
	}

	for _, e := range g.Edges {
		src, tgt := mermaidID(e.Source), mermaidID(e.Target)
		if e.Kind == EdgeDependency {
			lines = append(lines, fmt.Sprintf("  %s -.->|%s| %s", src, mermaidEscape(e.Label), tgt))
		} else {
			lines = append(lines, fmt.Sprintf("  %s --> %s", src, tgt))
		}
	}

	lines = append(lines, "  classDef root fill:#6e56cf,color:#fff,stroke:#333;")
	lines = append(lines, "  classDef objective fill:#0f766e,color:#fff,stroke:#333;")
	lines = append(lines, "  classDef query fill:#b45309,color:#fff,stroke:#333;")
	lines = append(lines, "  classDef tactic fill:#1d4ed8,color:#fff,stroke:#333;")

	return strings.Join(lines, "\n")
}

// ToDOT generates a Graphviz representation. Node positions are emitted as
// pos attributes so neato-style renderers reproduce the compiled layout.
func (g *Graph) ToDOT() string {
	var buf strings.Builder

	buf.WriteString("digraph mission {\n")
	buf.WriteString("    rankdir=LR;\n")
	buf.WriteString("    node [shape=box, style=\"rounded,filled\"];\n\n")

	for _, n := range g.Nodes {
		buf.WriteString(fmt.Sprintf("    \"%s\" [label=\"%s\", fillcolor=\"%s\", pos=\"%g,%g\"];\n",
			n.ID, dotEscape(n.Label), n.Style.Color, n.Position.X, -n.Position.Y))
	}

	buf.WriteString("\n")

	for _, e := range g.Edges {
		if e.Kind == EdgeDependency {
			buf.WriteString(fmt.Sprintf("    \"%s\" -> \"%s\" [style=dashed, label=\"%s\"];\n",
				e.Source, e.Target, dotEscape(e.Label)))
		} else {
			buf.WriteString(fmt.Sprintf("    \"%s\" -> \"%s\";\n", e.Source, e.Target))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func mermaidID(id string) string {
	id = strings.ReplaceAll(id, "-", "_")
	return strings.ReplaceAll(id, ".", "_")
}

func mermaidEscape(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "|", "/")
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
