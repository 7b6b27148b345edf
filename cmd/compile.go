package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seekerlabs/missiongraph/pkg/layout"
	"github.com/seekerlabs/missiongraph/pkg/plan"
)

var (
	compileOutput   string
	compileQuestion string
	compileLayout   string
)

func NewCompileCmd() *cobra.Command {
	compileCmd := &cobra.Command{
		Use:   "compile [plan-file]",
		Short: "Compile a raw plan into a positioned node-link graph",
		Long: `Compile a raw mission plan (JSON or YAML) into the {nodes, edges} graph
consumed by the diagram renderer.

The raw plan is normalized first: dynamic id keys are resolved into
explicit fields and duplicate identifiers are rejected. Use '-' to read
the plan from stdin.

Examples:
  # Compile a plan and print the graph JSON
  missiongraph compile plan.json

  # Override the originating question and write to a file
  missiongraph compile plan.yml --question "map the supply chain" -o graph.json`,
		Args: cobra.ExactArgs(1),
		RunE: runCompile,
	}
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "Output file (stdout if not specified)")
	compileCmd.Flags().StringVarP(&compileQuestion, "question", "q", "", "Original question to substitute as the query context")
	compileCmd.Flags().StringVar(&compileLayout, "layout-config", "", "YAML file with layout constant overrides")
	return compileCmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	compileID := uuid.New().String()
	log := logrus.WithFields(logrus.Fields{
		"compile_id": compileID,
		"plan":       args[0],
	})

	cfg, err := resolveLayoutConfig(compileLayout)
	if err != nil {
		return err
	}

	doc, err := plan.LoadDocument(args[0], compileQuestion)
	if err != nil {
		return err
	}

	graph := layout.Compile(doc, cfg)
	graph.Edges = append(graph.Edges, layout.ResolveDependencies(doc, graph)...)

	log.WithFields(logrus.Fields{
		"nodes": len(graph.Nodes),
		"edges": len(graph.Edges),
	}).Debug("Compiled plan graph")

	data, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling graph: %w", err)
	}
	return writeOutput(compileOutput, string(data))
}
