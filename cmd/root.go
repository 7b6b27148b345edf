package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootVerbose bool

// NewRootCmd builds the missiongraph command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "missiongraph",
		Short: "Compile mission plans into positioned node-link graphs",
		Long: `missiongraph turns a hierarchical research strategy document into a
positioned, directed node-link graph for an interactive diagram.

A plan is a set of objectives, each with research queries and ordered
tactics. Tactics declare the artifact they produce and the artifacts they
depend on; dependencies between sibling tactics become inferred edges.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if rootVerbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(NewCompileCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewGraphCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

// stdoutIsTTY reports whether human-facing color output is appropriate.
func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
