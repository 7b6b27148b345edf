package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/seekerlabs/missiongraph/pkg/layout"
)

// layoutConfigFile is looked up in the working directory when no explicit
// --layout-config flag is given.
const layoutConfigFile = ".missiongraph.yml"

// resolveLayoutConfig loads layout constants: an explicit path wins, then
// .missiongraph.yml in the working directory, then the built-in defaults.
func resolveLayoutConfig(explicit string) (layout.Config, error) {
	if explicit != "" {
		return layout.LoadConfig(explicit)
	}
	if _, err := os.Stat(layoutConfigFile); err == nil {
		cfg, err := layout.LoadConfig(layoutConfigFile)
		if err != nil {
			return cfg, err
		}
		logrus.WithField("file", layoutConfigFile).Debug("Loaded layout overrides")
		return cfg, nil
	}
	return layout.DefaultConfig(), nil
}

// writeOutput writes content to the given file, or stdout when path is
// empty.
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Printf("Written to %s\n", path)
	return nil
}

func printError(err error) {
	if stdoutIsTTY() {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("✗"), err)
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
