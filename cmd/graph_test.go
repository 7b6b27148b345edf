package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphCommandFormats(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantErr  bool
		contains []string
	}{
		{
			name:     "mermaid",
			format:   "mermaid",
			contains: []string{"graph LR", "-.->|A.md|"},
		},
		{
			name:     "dot",
			format:   "dot",
			contains: []string{"digraph mission", "->"},
		},
		{
			name:     "ascii",
			format:   "ascii",
			contains: []string{"Mission Plan Graph", "Legend:", "after: A.md"},
		},
		{
			name:    "invalid",
			format:  "nope",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planPath := writeScenarioPlan(t)
			outPath := filepath.Join(filepath.Dir(planPath), "out.txt")

			cmd := NewGraphCmd()
			cmd.SetArgs([]string{planPath, "-f", tt.format, "-o", outPath})
			err := cmd.Execute()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid format")
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(outPath)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, string(data), want)
			}
		})
	}
}
