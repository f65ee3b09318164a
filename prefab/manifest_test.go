package prefab

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "furniture.json")
	content := `{
		"prefabs": [
			{"name": "sofa", "rows": ["[==]"], "fg": "teal"},
			{"name": "rug", "rows": ["~~"], "tileable": true}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	entries, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 prefabs, got %d", len(entries))
	}
	if entries[0].Name != "sofa" || entries[0].Fg != "teal" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if !entries[1].Tileable {
		t.Error("Expected rug to be tileable")
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Expected error for missing manifest, got nil")
	}
}

func TestDiscoverManifests(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"a.json":       `{"prefabs": [{"name": "one"}]}`,
		"b.json":       `{"prefabs": [{"name": "two"}, {"name": "three"}]}`,
		".hidden.json": `{"prefabs": [{"name": "ghost"}]}`,
		"notes.txt":    `not a manifest`,
		"broken.json":  `{"prefabs": `,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	entries, err := DiscoverManifests(dir)
	if err != nil {
		t.Fatalf("DiscoverManifests failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 prefabs, got %d: %+v", len(entries), entries)
	}
	for _, e := range entries {
		if e.Name == "ghost" {
			t.Error("Hidden manifest should be skipped")
		}
	}
}

func TestDiscoverManifests_MissingDirectory(t *testing.T) {
	entries, err := DiscoverManifests(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Errorf("Expected no error for missing directory, got: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}
}

func TestDefaultSet(t *testing.T) {
	reg := NewRegistry(DefaultSet())

	floor := reg.Floor()
	if floor == nil {
		t.Fatal("Default set must include a floor prefab")
	}
	if !floor.Tileable {
		t.Error("Default floor must be tileable")
	}

	for _, name := range reg.Names() {
		p, _ := reg.Lookup(name)
		if p.Height() == 0 {
			t.Errorf("Default prefab %q has no rows", name)
		}
	}
}
