package plan

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LoadDocument reads a raw plan from path ("-" for stdin), normalizes it
// and returns the canonical document. originalQuestion overrides the
// query context when non-empty.
func LoadDocument(path, originalQuestion string) (*Document, error) {
	data, err := readPlanFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := NormalizeBytes(data, originalQuestion)
	if err != nil {
		return nil, err
	}

	objectives, queries, tactics := doc.Counts()
	logrus.WithFields(logrus.Fields{
		"source":     path,
		"objectives": objectives,
		"queries":    queries,
		"tactics":    tactics,
	}).Debug("Loaded mission plan")

	return doc, nil
}

func readPlanFile(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading plan from stdin: %w", err)
		}
		return data, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("plan file not found: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return data, nil
}
