package plan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yml")
	if err := os.WriteFile(path, []byte(validRawPlan), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadDocument(path, "the real question")
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	if doc.QueryContext != "the real question" {
		t.Errorf("unexpected context: %q", doc.QueryContext)
	}
	objectives, queries, tactics := doc.Counts()
	if objectives != 2 || queries != 2 || tactics != 3 {
		t.Errorf("unexpected counts: %d objectives, %d queries, %d tactics", objectives, queries, tactics)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "missing.json"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}
