package plan

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// CanonicalSchema produces the JSON Schema for the canonical Document
// shape, reflected from the Go types.
func CanonicalSchema() (string, error) {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Document{})
	schema.Title = "Mission Plan Document"
	schema.Description = "Canonical mission plan: ordered objectives with queries and tactics."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling canonical schema: %w", err)
	}
	return string(data), nil
}

// LegacySchema produces the JSON Schema for the raw dynamic-key plan shape
// accepted by Normalize. The dynamic id keys make this impossible to
// reflect from structs, so it is kept as a literal.
func LegacySchema() string {
	return `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "title": "Raw Mission Plan",
    "description": "Legacy plan shape: objective and tactic ids are encoded as the one non-reserved property name on each record.",
    "type": "object",
    "properties": {
        "query_context": {
            "type": "string",
            "description": "The originating request. Replaced by the caller's question during normalization."
        },
        "strategy": {
            "type": "array",
            "description": "Ordered objectives. Order determines vertical layout order.",
            "items": {
                "type": "object",
                "properties": {
                    "queries": {
                        "type": "object",
                        "description": "Research questions keyed by query id.",
                        "additionalProperties": { "type": "string" }
                    },
                    "tactics": {
                        "type": "array",
                        "items": {
                            "type": "object",
                            "properties": {
                                "dependencies": {
                                    "type": "array",
                                    "description": "Artifact identifiers this tactic consumes.",
                                    "items": { "type": "string" }
                                },
                                "expected_artifact": {
                                    "type": "string",
                                    "description": "Artifact identifier this tactic produces."
                                }
                            },
                            "patternProperties": {
                                "^[A-Za-z][A-Za-z0-9_-]*$": { "type": "string" }
                            }
                        }
                    },
                    "tenant": {
                        "type": "array",
                        "items": { "type": "string" }
                    }
                },
                "patternProperties": {
                    "^[A-Za-z][A-Za-z0-9_-]*$": { "type": "string" }
                }
            }
        }
    },
    "required": ["strategy"]
}`
}
