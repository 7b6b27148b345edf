package plan

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCanonicalSchema(t *testing.T) {
	schema, err := CanonicalSchema()
	if err != nil {
		t.Fatalf("CanonicalSchema failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(schema), &decoded); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	for _, field := range []string{"query_context", "strategy"} {
		if !strings.Contains(schema, field) {
			t.Errorf("expected schema to mention %q", field)
		}
	}
}

func TestLegacySchemaIsValidJSON(t *testing.T) {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(LegacySchema()), &decoded); err != nil {
		t.Fatalf("legacy schema is not valid JSON: %v", err)
	}
	if decoded["title"] != "Raw Mission Plan" {
		t.Errorf("unexpected title: %v", decoded["title"])
	}
}
