package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yml")
	overrides := "item_gap: 40\ncolumn_tactic: 900\n"
	if err := os.WriteFile(path, []byte(overrides), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ItemGap != 40 {
		t.Errorf("expected item_gap override 40, got %g", cfg.ItemGap)
	}
	if cfg.ColumnTactic != 900 {
		t.Errorf("expected column_tactic override 900, got %g", cfg.ColumnTactic)
	}
	// Untouched fields keep their defaults.
	def := DefaultConfig()
	if cfg.ObjectiveGap != def.ObjectiveGap {
		t.Errorf("expected default objective_gap %g, got %g", def.ObjectiveGap, cfg.ObjectiveGap)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestDefaultConfigColumnsIncrease(t *testing.T) {
	cfg := DefaultConfig()
	if !(cfg.ColumnRoot < cfg.ColumnObjective && cfg.ColumnObjective < cfg.ColumnQuery && cfg.ColumnQuery < cfg.ColumnTactic) {
		t.Error("columns must strictly increase root < objective < query < tactic")
	}
}
