package stage

import (
	"log"

	"github.com/lixenwraith/room-stage/layout"
	"github.com/lixenwraith/room-stage/prefab"
)

// PlaceFloor builds the floor command for a room. Returns false with a
// log message when no floor prefab is configured. A degenerate (0,0)
// room size is an error but still yields a fallback placement at the
// origin with the prefab's own size, so the problem stays visible in
// the staged scene.
func PlaceFloor(roomSize layout.Vec2, reg *prefab.Registry) (*Command, bool) {
	floor := reg.Floor()
	if floor == nil {
		log.Printf("No floor prefab configured, skipping floor")
		return nil, false
	}

	cmd := &Command{
		Prefab:    floor,
		Scale:     layout.Vec2{X: 1, Y: 1},
		DrawOrder: FloorDrawOrder,
	}

	if roomSize.IsZero() {
		log.Printf("Room size is unset, placing fallback floor at origin")
		return cmd, true
	}

	size := roomSize
	cmd.TiledSize = &size
	return cmd, true
}

// PlaceObject resolves one layout entry against the registry. An
// unknown type name is logged and skipped; the staging pass continues
// with the next object.
func PlaceObject(obj layout.ObjectPlacement, reg *prefab.Registry) (*Command, bool) {
	p, ok := reg.Lookup(obj.Type)
	if !ok {
		log.Printf("Unknown object type %q, skipping", obj.Type)
		return nil, false
	}

	return &Command{
		Prefab:    p,
		Position:  obj.Position,
		Scale:     obj.Scale,
		DrawOrder: DrawOrderForY(obj.Position.Y),
	}, true
}
