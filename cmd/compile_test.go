package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekerlabs/missiongraph/pkg/layout"
)

const scenarioPlan = `{
  "query_context": "placeholder",
  "strategy": [
    {
      "O1": "objective one",
      "queries": {"Q1": "find X"},
      "tactics": [
        {"t1": "produce the source survey", "expected_artifact": "A.md"},
        {"t2": "synthesize the findings", "dependencies": ["A.md"], "expected_artifact": "B.md"}
      ]
    }
  ]
}`

func writeScenarioPlan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(scenarioPlan), 0644))
	return path
}

func TestCompileCommandEndToEnd(t *testing.T) {
	planPath := writeScenarioPlan(t)
	outPath := filepath.Join(filepath.Dir(planPath), "graph.json")

	cmd := NewCompileCmd()
	cmd.SetArgs([]string{planPath, "-o", outPath, "--question", "test"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var g layout.Graph
	require.NoError(t, json.Unmarshal(data, &g))

	// root + objective + query + two tactics; four composition edges plus
	// the inferred t1→t2 dependency.
	assert.Len(t, g.Nodes, 5)
	assert.Len(t, g.Edges, 5)

	root := g.NodeByID("root")
	require.NotNil(t, root)
	assert.Equal(t, "test", root.Details, "the --question flag should replace the placeholder context")

	var dep *layout.Edge
	for i := range g.Edges {
		if g.Edges[i].Kind == layout.EdgeDependency {
			require.Nil(t, dep, "expected exactly one dependency edge")
			dep = &g.Edges[i]
		}
	}
	require.NotNil(t, dep)
	assert.Equal(t, "tactic-O1-t1", dep.Source)
	assert.Equal(t, "tactic-O1-t2", dep.Target)
	assert.Equal(t, "A.md", dep.Label)
}

func TestCompileCommandLayoutOverrides(t *testing.T) {
	planPath := writeScenarioPlan(t)
	dir := filepath.Dir(planPath)
	layoutPath := filepath.Join(dir, "layout.yml")
	outPath := filepath.Join(dir, "graph.json")
	require.NoError(t, os.WriteFile(layoutPath, []byte("column_tactic: 999\n"), 0644))

	cmd := NewCompileCmd()
	cmd.SetArgs([]string{planPath, "-o", outPath, "--layout-config", layoutPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var g layout.Graph
	require.NoError(t, json.Unmarshal(data, &g))

	n := g.NodeByID("tactic-O1-t1")
	require.NotNil(t, n)
	assert.Equal(t, float64(999), n.Position.X)
}

func TestCompileCommandMalformedPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"query_context":"no strategy"}`), 0644))

	cmd := NewCompileCmd()
	cmd.SetArgs([]string{path, "-o", filepath.Join(t.TempDir(), "out.json")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed plan")
}

func TestValidateCommand(t *testing.T) {
	cmd := NewValidateCmd()
	cmd.SetArgs([]string{writeScenarioPlan(t)})
	require.NoError(t, cmd.Execute())
}

func TestValidateCommandDuplicateObjectives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yml")
	raw := "strategy:\n  - O1: first\n  - O1: again\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cmd := NewValidateCmd()
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
