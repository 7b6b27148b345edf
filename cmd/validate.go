package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seekerlabs/missiongraph/pkg/plan"
)

func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan-file]",
		Short: "Validate a raw plan without compiling it",
		Long: `Normalize a raw mission plan and report what it contains, or the exact
location of the first structural problem. Use '-' to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	doc, err := plan.LoadDocument(args[0], "")
	if err != nil {
		var malformed plan.MalformedPlanError
		var duplicate plan.DuplicateIdentifierError
		switch {
		case errors.As(err, &malformed):
			return fmt.Errorf("plan is malformed: %w", err)
		case errors.As(err, &duplicate):
			return fmt.Errorf("plan has duplicate identifiers: %w", err)
		default:
			return err
		}
	}

	objectives, queries, tactics := doc.Counts()
	if stdoutIsTTY() {
		fmt.Printf("%s plan is valid\n", color.GreenString("✓"))
	} else {
		fmt.Println("plan is valid")
	}
	fmt.Printf("  context:    %s\n", doc.QueryContext)
	fmt.Printf("  objectives: %d\n", objectives)
	fmt.Printf("  queries:    %d\n", queries)
	fmt.Printf("  tactics:    %d\n", tactics)

	for i := range doc.Strategy {
		obj := &doc.Strategy[i]
		fmt.Printf("  %s: %d queries, %d tactics\n", obj.ID, len(obj.Queries), len(obj.Tactics))
	}
	return nil
}
