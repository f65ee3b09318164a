package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "room.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test layout: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeLayout(t, `{
		"roomSize": {"x": 10, "y": 6},
		"objects": [
			{"type": "crate", "position": {"x": 2, "y": 3}, "scale": {"x": 1, "y": 1}},
			{"type": "plant", "position": {"x": -4, "y": -1.5}, "scale": {"x": 2, "y": 2}}
		]
	}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.RoomSize.X != 10 || doc.RoomSize.Y != 6 {
		t.Errorf("Expected room size (10,6), got (%g,%g)", doc.RoomSize.X, doc.RoomSize.Y)
	}
	if len(doc.Objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(doc.Objects))
	}
	if doc.Objects[0].Type != "crate" {
		t.Errorf("Expected first object type crate, got %q", doc.Objects[0].Type)
	}
	if doc.Objects[1].Position.Y != -1.5 {
		t.Errorf("Expected second object y -1.5, got %g", doc.Objects[1].Position.Y)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeLayout(t, `{"roomSize": `)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected parse error, got nil")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("Parse error should not report ErrNotFound")
	}
}

func TestLoad_MissingFieldsDefault(t *testing.T) {
	path := writeLayout(t, `{"objects": [{"type": "crate"}]}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !doc.RoomSize.IsZero() {
		t.Errorf("Expected zero room size, got (%g,%g)", doc.RoomSize.X, doc.RoomSize.Y)
	}
	if len(doc.Objects) != 1 {
		t.Fatalf("Expected 1 object, got %d", len(doc.Objects))
	}
	obj := doc.Objects[0]
	if !obj.Position.IsZero() || !obj.Scale.IsZero() {
		t.Errorf("Expected zero position and scale, got %+v", obj)
	}
}

func TestLoad_UnknownFieldsIgnored(t *testing.T) {
	path := writeLayout(t, `{
		"roomSize": {"x": 4, "y": 4, "z": 9},
		"editorVersion": "2.1",
		"objects": [{"type": "wall", "locked": true, "position": {"x": 1, "y": 1}}]
	}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.RoomSize.X != 4 || len(doc.Objects) != 1 {
		t.Errorf("Unknown fields changed parse result: %+v", doc)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := &Document{
		RoomSize: Vec2{X: 12.5, Y: 8},
		Objects: []ObjectPlacement{
			{Type: "table", Position: Vec2{X: 0.25, Y: -3}, Scale: Vec2{X: 1, Y: 1}},
			{Type: "table", Position: Vec2{X: 0.25, Y: -3}, Scale: Vec2{X: 1, Y: 1}},
			{Type: "plant", Position: Vec2{X: -6, Y: 2.75}, Scale: Vec2{X: 0.5, Y: 2}},
		},
	}

	path := filepath.Join(t.TempDir(), "room.json")
	if err := Save(orig, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.RoomSize != orig.RoomSize {
		t.Errorf("Room size changed: %+v != %+v", loaded.RoomSize, orig.RoomSize)
	}
	if len(loaded.Objects) != len(orig.Objects) {
		t.Fatalf("Object count changed: %d != %d", len(loaded.Objects), len(orig.Objects))
	}
	for i := range orig.Objects {
		if loaded.Objects[i] != orig.Objects[i] {
			t.Errorf("Object %d changed: %+v != %+v", i, loaded.Objects[i], orig.Objects[i])
		}
	}
}

func TestVec2IsZero(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want bool
	}{
		{"Zero", Vec2{}, true},
		{"X only", Vec2{X: 1}, false},
		{"Y only", Vec2{Y: -0.1}, false},
		{"Both set", Vec2{X: 3, Y: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}
