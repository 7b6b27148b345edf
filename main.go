package main

import (
	"os"

	"github.com/seekerlabs/missiongraph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
