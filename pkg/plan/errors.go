package plan

import "fmt"

// MalformedPlanError reports raw input that cannot be reduced to the
// canonical document shape. Path is a pointer into the raw structure,
// e.g. "strategy[2]" or "strategy[0].tactics[1]".
type MalformedPlanError struct {
	Path   string
	Reason string
}

func (e MalformedPlanError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed plan: %s", e.Reason)
	}
	return fmt.Sprintf("malformed plan at %s: %s", e.Path, e.Reason)
}

// DuplicateIdentifierError reports two objectives sharing an id, or two
// tactics within one objective sharing an id. Duplicates are fatal, never
// merged.
type DuplicateIdentifierError struct {
	Kind string // "objective" or "tactic"
	ID   string
	Path string
}

func (e DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate %s id %q at %s", e.Kind, e.ID, e.Path)
}
