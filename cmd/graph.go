package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/seekerlabs/missiongraph/pkg/layout"
	"github.com/seekerlabs/missiongraph/pkg/plan"
)

var (
	graphFormat string
	graphOutput string
	graphLayout string
)

func NewGraphCmd() *cobra.Command {
	graphCmd := &cobra.Command{
		Use:   "graph [plan-file]",
		Short: "Render the compiled plan graph",
		Long: `Compile a raw mission plan and render the resulting graph as mermaid,
dot, or a styled ascii tree.

Examples:
  # Mermaid diagram on stdout
  missiongraph graph plan.json

  # Graphviz file
  missiongraph graph plan.json -f dot -o plan.dot`,
		Args: cobra.ExactArgs(1),
		RunE: runGraph,
	}
	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", "mermaid", "Output format: mermaid, dot, ascii")
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "Output file (stdout if not specified)")
	graphCmd.Flags().StringVar(&graphLayout, "layout-config", "", "YAML file with layout constant overrides")
	return graphCmd
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := resolveLayoutConfig(graphLayout)
	if err != nil {
		return err
	}

	doc, err := plan.LoadDocument(args[0], "")
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	graph := layout.Compile(doc, cfg)
	graph.Edges = append(graph.Edges, layout.ResolveDependencies(doc, graph)...)

	var output string
	switch graphFormat {
	case "mermaid":
		output = graph.ToMermaid()
	case "dot":
		output = graph.ToDOT()
	case "ascii":
		output = renderASCIIGraph(doc, graph)
	default:
		return fmt.Errorf("invalid format: use mermaid, dot, or ascii")
	}

	return writeOutput(graphOutput, output)
}

var (
	asciiTitleStyle     = lipgloss.NewStyle().Bold(true)
	asciiObjectiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	asciiQueryStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	asciiTacticStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	asciiDimStyle       = lipgloss.NewStyle().Faint(true)
)

// renderASCIIGraph draws the composition hierarchy as an indented tree with
// inferred dependencies listed under each tactic.
func renderASCIIGraph(doc *plan.Document, g *layout.Graph) string {
	if !stdoutIsTTY() || termenv.EnvColorProfile() == termenv.Ascii {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var buf strings.Builder
	buf.WriteString(asciiTitleStyle.Render("Mission Plan Graph"))
	buf.WriteString("\n")
	buf.WriteString(doc.QueryContext)
	buf.WriteString("\n\n")

	for i := range doc.Strategy {
		obj := &doc.Strategy[i]
		buf.WriteString(asciiObjectiveStyle.Render(fmt.Sprintf("%s  %s", obj.ID, obj.Description)))
		buf.WriteString("\n")

		for _, q := range obj.Queries {
			buf.WriteString(fmt.Sprintf("  %s %s\n", asciiQueryStyle.Render("?"), q.Description))
		}

		for t := range obj.Tactics {
			tac := &obj.Tactics[t]
			buf.WriteString(fmt.Sprintf("  %s %s", asciiTacticStyle.Render("▸"), tac.Description))
			if tac.ExpectedArtifact != "" {
				buf.WriteString(asciiDimStyle.Render(fmt.Sprintf("  → %s", tac.ExpectedArtifact)))
			}
			buf.WriteString("\n")

			deps := dependencySources(g, obj.ID, tac.ID)
			if len(deps) > 0 {
				buf.WriteString(asciiDimStyle.Render(fmt.Sprintf("      └─ after: %s", strings.Join(deps, ", "))))
				buf.WriteString("\n")
			}
		}
		buf.WriteString("\n")
	}

	buf.WriteString("Legend:\n")
	buf.WriteString("  ?  research query\n")
	buf.WriteString("  ▸  tactic (→ declared artifact)\n")
	buf.WriteString("  └─ inferred sibling dependency\n")
	return buf.String()
}

// dependencySources lists the labels of dependency edges pointing at the
// given tactic's node.
func dependencySources(g *layout.Graph, objectiveID, tacticID string) []string {
	target := fmt.Sprintf("tactic-%s-%s", objectiveID, tacticID)
	var out []string
	for _, e := range g.Edges {
		if e.Kind == layout.EdgeDependency && e.Target == target {
			out = append(out, e.Label)
		}
	}
	return out
}
