package layout

import "fmt"

// NodeKind identifies what plan entity a node was compiled from.
type NodeKind string

const (
	NodeRoot      NodeKind = "root"
	NodeObjective NodeKind = "objective"
	NodeQuery     NodeKind = "query"
	NodeTactic    NodeKind = "tactic"
)

// EdgeKind distinguishes structural parent edges from inferred artifact
// dependency edges.
type EdgeKind string

const (
	EdgeComposition EdgeKind = "composition"
	EdgeDependency  EdgeKind = "dependency"
)

// Position is a 2-D point in diagram units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style is cosmetic node metadata passed through to the renderer. Nothing
// in the compiler reads it back.
type Style struct {
	Color string `json:"color,omitempty"`
	Shape string `json:"shape,omitempty"`
}

// Node is one positioned entity in the compiled graph.
type Node struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Position Position `json:"position"`
	Label    string   `json:"label"`
	Details  string   `json:"details,omitempty"`
	Style    Style    `json:"style,omitempty"`
}

// Edge is one directed link in the compiled graph.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
	Label  string   `json:"label,omitempty"`
}

// Display truncation limits. Details always carry the full text.
const (
	nodeLabelLimit = 48
	edgeLabelLimit = 24
)

const rootNodeID = "root"

func objectiveNodeID(objectiveID string) string {
	return "obj-" + objectiveID
}

func queryNodeID(objectiveID, queryID string) string {
	return fmt.Sprintf("query-%s-%s", objectiveID, queryID)
}

func tacticNodeID(objectiveID, tacticID string) string {
	return fmt.Sprintf("tactic-%s-%s", objectiveID, tacticID)
}

func compositionEdgeID(source, target string) string {
	return fmt.Sprintf("edge-%s-%s", source, target)
}

func dependencyEdgeID(source, target string) string {
	return fmt.Sprintf("dep-%s-%s", source, target)
}

// truncate shortens s to at most limit runes, appending an ellipsis when
// anything was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

var kindStyles = map[NodeKind]Style{
	NodeRoot:      {Color: "#6e56cf", Shape: "pill"},
	NodeObjective: {Color: "#0f766e", Shape: "box"},
	NodeQuery:     {Color: "#b45309", Shape: "rounded"},
	NodeTactic:    {Color: "#1d4ed8", Shape: "rounded"},
}
