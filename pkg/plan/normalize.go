package plan

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Reserved structural keys in the legacy dynamic-key plan shape. Everything
// else on an objective or tactic record is an id candidate.
var (
	reservedObjectiveKeys = map[string]bool{
		"queries": true,
		"tactics": true,
		"tenant":  true,
	}
	reservedTacticKeys = map[string]bool{
		"dependencies":      true,
		"expected_artifact": true,
	}
)

// idKeyPattern matches the short alphanumeric tags the upstream planner
// emits as objective, query and tactic ids (O1, Q2, t3, ...).
var idKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,63}$`)

// ParseRaw decodes raw plan bytes into a node tree with mapping key order
// preserved. JSON documents parse as well: the planner backend emits JSON,
// hand-written plans tend to be YAML.
func ParseRaw(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, MalformedPlanError{Reason: fmt.Sprintf("not a plan document: %v", err)}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, MalformedPlanError{Reason: "empty plan document"}
	}
	return &root, nil
}

// Normalize converts the legacy dynamic-key plan shape into a canonical
// Document. originalQuestion, when non-empty, replaces whatever context
// string the raw object carried so the compiled graph always reflects the
// request that produced it.
//
// This is the only place that performs dynamic-key discovery; everything
// downstream works on explicit id/description fields.
func Normalize(raw *yaml.Node, originalQuestion string) (*Document, error) {
	root := raw
	if root.Kind == yaml.DocumentNode {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, MalformedPlanError{Reason: "top-level value is not an object"}
	}

	doc := &Document{}
	var strategyNode *yaml.Node
	for _, e := range mappingEntries(root) {
		switch e.key {
		case "query_context":
			doc.QueryContext = e.val.Value
		case "strategy":
			strategyNode = e.val
		}
	}
	if strategyNode == nil {
		return nil, MalformedPlanError{Path: "strategy", Reason: "missing strategy list"}
	}
	if strategyNode.Kind != yaml.SequenceNode {
		return nil, MalformedPlanError{Path: "strategy", Reason: "strategy is not a list"}
	}

	seenObjectives := make(map[string]bool)
	for i, objNode := range strategyNode.Content {
		path := fmt.Sprintf("strategy[%d]", i)
		obj, err := normalizeObjective(objNode, path)
		if err != nil {
			return nil, err
		}
		if seenObjectives[obj.ID] {
			return nil, DuplicateIdentifierError{Kind: "objective", ID: obj.ID, Path: path}
		}
		seenObjectives[obj.ID] = true
		doc.Strategy = append(doc.Strategy, *obj)
	}

	if originalQuestion != "" {
		doc.QueryContext = originalQuestion
	}
	return doc, nil
}

// NormalizeBytes parses and normalizes in one step.
func NormalizeBytes(data []byte, originalQuestion string) (*Document, error) {
	raw, err := ParseRaw(data)
	if err != nil {
		return nil, err
	}
	return Normalize(raw, originalQuestion)
}

func normalizeObjective(n *yaml.Node, path string) (*Objective, error) {
	if n.Kind != yaml.MappingNode {
		return nil, MalformedPlanError{Path: path, Reason: "objective is not an object"}
	}

	obj := &Objective{}
	var queriesNode, tacticsNode *yaml.Node
	for _, e := range mappingEntries(n) {
		switch {
		case e.key == "queries":
			queriesNode = e.val
		case e.key == "tactics":
			tacticsNode = e.val
		case e.key == "tenant":
			obj.Tenant = scalarList(e.val)
		default:
			if obj.ID != "" {
				return nil, MalformedPlanError{
					Path:   path,
					Reason: fmt.Sprintf("ambiguous objective id: both %q and %q are non-reserved keys", obj.ID, e.key),
				}
			}
			if e.val.Kind != yaml.ScalarNode {
				return nil, MalformedPlanError{
					Path:   path,
					Reason: fmt.Sprintf("objective description under %q is not a string", e.key),
				}
			}
			obj.ID = e.key
			obj.Description = e.val.Value
		}
	}
	if obj.ID == "" {
		return nil, MalformedPlanError{Path: path, Reason: "no objective id key found"}
	}

	if queriesNode != nil {
		if queriesNode.Kind != yaml.MappingNode {
			return nil, MalformedPlanError{Path: path + ".queries", Reason: "queries is not an object"}
		}
		// Anything that does not look like a query id is dropped without
		// failing the compile; the planner occasionally leaves commentary
		// keys behind.
		for _, e := range mappingEntries(queriesNode) {
			if !idKeyPattern.MatchString(e.key) || e.val.Kind != yaml.ScalarNode {
				continue
			}
			obj.Queries = append(obj.Queries, QueryItem{ID: e.key, Description: e.val.Value})
		}
	}

	if tacticsNode != nil {
		if tacticsNode.Kind != yaml.SequenceNode {
			return nil, MalformedPlanError{Path: path + ".tactics", Reason: "tactics is not a list"}
		}
		seen := make(map[string]bool)
		for i, tn := range tacticsNode.Content {
			tpath := fmt.Sprintf("%s.tactics[%d]", path, i)
			tac, err := normalizeTactic(tn, tpath)
			if err != nil {
				return nil, err
			}
			if seen[tac.ID] {
				return nil, DuplicateIdentifierError{Kind: "tactic", ID: tac.ID, Path: tpath}
			}
			seen[tac.ID] = true
			obj.Tactics = append(obj.Tactics, *tac)
		}
	}

	return obj, nil
}

func normalizeTactic(n *yaml.Node, path string) (*Tactic, error) {
	if n.Kind != yaml.MappingNode {
		return nil, MalformedPlanError{Path: path, Reason: "tactic is not an object"}
	}

	tac := &Tactic{}
	for _, e := range mappingEntries(n) {
		switch {
		case e.key == "dependencies":
			tac.Dependencies = scalarList(e.val)
		case e.key == "expected_artifact":
			tac.ExpectedArtifact = e.val.Value
		default:
			if tac.ID != "" {
				return nil, MalformedPlanError{
					Path:   path,
					Reason: fmt.Sprintf("ambiguous tactic id: both %q and %q are non-reserved keys", tac.ID, e.key),
				}
			}
			if e.val.Kind != yaml.ScalarNode {
				return nil, MalformedPlanError{
					Path:   path,
					Reason: fmt.Sprintf("tactic description under %q is not a string", e.key),
				}
			}
			tac.ID = e.key
			tac.Description = e.val.Value
		}
	}
	if tac.ID == "" {
		return nil, MalformedPlanError{Path: path, Reason: "no tactic id key found"}
	}
	return tac, nil
}

type mappingEntry struct {
	key string
	val *yaml.Node
}

// mappingEntries flattens a mapping node's alternating key/value content
// into ordered pairs. Source order is preserved, which is what makes query
// layout deterministic.
func mappingEntries(n *yaml.Node) []mappingEntry {
	entries := make([]mappingEntry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		entries = append(entries, mappingEntry{key: n.Content[i].Value, val: n.Content[i+1]})
	}
	return entries
}

func scalarList(n *yaml.Node) []string {
	if n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		if c.Kind == yaml.ScalarNode {
			out = append(out, c.Value)
		}
	}
	return out
}
