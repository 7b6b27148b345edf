package plan

// QueryItem is a research question belonging to an objective. Queries are
// kept as an explicit ordered list so the layout never depends on map
// iteration order.
type QueryItem struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

// Tactic is a concrete unit of work within an objective. It declares the
// artifact it produces and the artifacts it consumes.
type Tactic struct {
	ID               string   `json:"id" yaml:"id"`
	Description      string   `json:"description" yaml:"description"`
	Dependencies     []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	ExpectedArtifact string   `json:"expected_artifact,omitempty" yaml:"expected_artifact,omitempty"`
}

// Objective is a top-level strategic goal. Order of Queries and Tactics is
// significant: it drives the vertical layout.
type Objective struct {
	ID          string      `json:"id" yaml:"id"`
	Description string      `json:"description" yaml:"description"`
	Queries     []QueryItem `json:"queries,omitempty" yaml:"queries,omitempty"`
	Tactics     []Tactic    `json:"tactics,omitempty" yaml:"tactics,omitempty"`
	Tenant      []string    `json:"tenant,omitempty" yaml:"tenant,omitempty"`
}

// Document is the canonical, validated mission plan. It is an immutable
// value object: the compiler never writes back into it.
type Document struct {
	QueryContext string      `json:"query_context" yaml:"query_context"`
	Strategy     []Objective `json:"strategy" yaml:"strategy"`
}

// ChildCount returns the number of queries plus tactics in the objective.
func (o *Objective) ChildCount() int {
	return len(o.Queries) + len(o.Tactics)
}

// Tactic returns the tactic with the given id, or nil.
func (o *Objective) Tactic(id string) *Tactic {
	for i := range o.Tactics {
		if o.Tactics[i].ID == id {
			return &o.Tactics[i]
		}
	}
	return nil
}

// Objective returns the objective with the given id, or nil.
func (d *Document) Objective(id string) *Objective {
	for i := range d.Strategy {
		if d.Strategy[i].ID == id {
			return &d.Strategy[i]
		}
	}
	return nil
}

// Counts reports the total number of objectives, queries and tactics.
func (d *Document) Counts() (objectives, queries, tactics int) {
	objectives = len(d.Strategy)
	for i := range d.Strategy {
		queries += len(d.Strategy[i].Queries)
		tactics += len(d.Strategy[i].Tactics)
	}
	return objectives, queries, tactics
}
