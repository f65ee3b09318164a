package prefab

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Manifest is the on-disk prefab description format
type Manifest struct {
	Prefabs []Prefab `json:"prefabs"`
}

// LoadManifest parses a single JSON manifest file into prefab entries
func LoadManifest(path string) ([]Prefab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return m.Prefabs, nil
}

// DiscoverManifests scans dir for .json manifest files and collects
// their prefab entries in file-name order. A missing directory is not
// an error, just no entries. Hidden files are skipped, and a manifest
// that fails to parse is logged and skipped rather than aborting the
// scan.
func DiscoverManifests(dir string) ([]Prefab, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Printf("Prefab directory '%s' does not exist, no manifests discovered", dir)
		return nil, nil
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefab directory: %w", err)
	}

	var entries []Prefab
	var files int
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(name, ".json") {
			continue
		}

		path := filepath.Join(dir, name)
		loaded, err := LoadManifest(path)
		if err != nil {
			log.Printf("Skipping manifest %s: %v", path, err)
			continue
		}
		entries = append(entries, loaded...)
		files++
	}

	if files == 0 {
		log.Printf("No manifest files found in %s", dir)
	} else {
		log.Printf("Loaded %d prefab(s) from %d manifest file(s)", len(entries), files)
	}

	return entries, nil
}

// DefaultSet returns the built-in prefabs so the preview tools work
// without any manifest configuration
func DefaultSet() []Prefab {
	return []Prefab{
		{
			Name:     FloorName,
			Rows:     []string{"·."},
			Fg:       "gray",
			Tileable: true,
		},
		{
			Name: "wall",
			Rows: []string{"██"},
			Fg:   "silver",
		},
		{
			Name: "crate",
			Rows: []string{"▛▜", "▙▟"},
			Fg:   "maroon",
		},
		{
			Name: "table",
			Rows: []string{"╔══╗", "╨  ╨"},
			Fg:   "olive",
		},
		{
			Name: "plant",
			Rows: []string{"❀", "┃"},
			Fg:   "green",
		},
	}
}
