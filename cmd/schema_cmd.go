package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seekerlabs/missiongraph/pkg/plan"
)

var schemaLegacy bool

func NewSchemaCmd() *cobra.Command {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for plan documents",
		Long: `Print the JSON Schema for the canonical mission plan document, or with
--legacy the schema for the raw dynamic-key shape accepted by the
normalizer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemaLegacy {
				fmt.Println(plan.LegacySchema())
				return nil
			}
			schema, err := plan.CanonicalSchema()
			if err != nil {
				return err
			}
			fmt.Println(schema)
			return nil
		},
	}
	schemaCmd.Flags().BoolVar(&schemaLegacy, "legacy", false, "Print the raw dynamic-key plan schema instead")
	return schemaCmd
}
