package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the layout constants: one x column per node kind and the
// vertical gaps. All values are in diagram units; the renderer decides what
// a unit means on screen.
type Config struct {
	ColumnRoot      float64 `yaml:"column_root"`
	ColumnObjective float64 `yaml:"column_objective"`
	ColumnQuery     float64 `yaml:"column_query"`
	ColumnTactic    float64 `yaml:"column_tactic"`

	// ObjectiveGap is the minimum vertical space one objective occupies.
	ObjectiveGap float64 `yaml:"objective_gap"`
	// ItemGap is the vertical distance between stacked queries/tactics.
	ItemGap float64 `yaml:"item_gap"`
	// GroupSeparatorGap is inserted between the query sub-group and the
	// tactic sub-group when both are non-empty.
	GroupSeparatorGap float64 `yaml:"group_separator_gap"`
}

// DefaultConfig returns the layout constants used by the production
// diagram. Columns increase left to right by hierarchy depth.
func DefaultConfig() Config {
	return Config{
		ColumnRoot:        0,
		ColumnObjective:   280,
		ColumnQuery:       560,
		ColumnTactic:      840,
		ObjectiveGap:      160,
		ItemGap:           56,
		GroupSeparatorGap: 28,
	}
}

// LoadConfig reads layout overrides from a YAML file and merges them over
// the defaults. Zero-valued fields keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading layout config: %w", err)
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return cfg, fmt.Errorf("parsing layout config: %w", err)
	}
	cfg.merge(overrides)
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.ColumnRoot != 0 {
		c.ColumnRoot = o.ColumnRoot
	}
	if o.ColumnObjective != 0 {
		c.ColumnObjective = o.ColumnObjective
	}
	if o.ColumnQuery != 0 {
		c.ColumnQuery = o.ColumnQuery
	}
	if o.ColumnTactic != 0 {
		c.ColumnTactic = o.ColumnTactic
	}
	if o.ObjectiveGap != 0 {
		c.ObjectiveGap = o.ObjectiveGap
	}
	if o.ItemGap != 0 {
		c.ItemGap = o.ItemGap
	}
	if o.GroupSeparatorGap != 0 {
		c.GroupSeparatorGap = o.GroupSeparatorGap
	}
}
