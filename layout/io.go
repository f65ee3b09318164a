package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound reports a missing layout file
var ErrNotFound = errors.New("layout file not found")

// Load reads and parses the layout document at path.
// Fields absent from the JSON keep their zero values and unknown
// fields are ignored, matching the permissive schema of layout
// files produced by external editors.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}

	return &doc, nil
}

// Save writes doc to path as indented JSON.
// Save followed by Load reproduces the object sequence exactly.
func Save(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout %s: %w", path, err)
	}

	return nil
}
