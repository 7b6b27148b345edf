package layout

import (
	"strings"
	"testing"
)

func compiledTestGraph(t *testing.T) *Graph {
	t.Helper()
	doc := testDocument()
	g := Compile(doc, testConfig())
	g.Edges = append(g.Edges, ResolveDependencies(doc, g)...)
	return g
}

func TestToMermaid(t *testing.T) {
	out := compiledTestGraph(t).ToMermaid()

	if !strings.HasPrefix(out, "graph LR") {
		t.Error("expected mermaid output to start with 'graph LR'")
	}
	if !strings.Contains(out, "obj_O1") {
		t.Error("expected sanitized node ids")
	}
	if !strings.Contains(out, "-->") {
		t.Error("expected composition edges")
	}
	if !strings.Contains(out, "-.->|A.md|") {
		t.Error("expected labeled dashed dependency edge")
	}
	if !strings.Contains(out, "classDef objective") {
		t.Error("expected style definitions")
	}
}

func TestToDOT(t *testing.T) {
	out := compiledTestGraph(t).ToDOT()

	if !strings.HasPrefix(out, "digraph mission {") {
		t.Error("expected dot output to start with 'digraph mission'")
	}
	if !strings.Contains(out, "\"tactic-O1-t1\" -> \"tactic-O1-t2\" [style=dashed") {
		t.Error("expected dashed dependency edge")
	}
	if !strings.Contains(out, "pos=") {
		t.Error("expected node positions in dot output")
	}
}
