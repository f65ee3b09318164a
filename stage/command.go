package stage

import (
	"github.com/lixenwraith/room-stage/layout"
	"github.com/lixenwraith/room-stage/prefab"
)

// Command instructs a scene host to create one visual entity
type Command struct {
	Prefab    *prefab.Prefab
	Position  layout.Vec2
	Scale     layout.Vec2
	DrawOrder int

	// TiledSize is set only on the floor command: fill the area by
	// texture repetition instead of stretching. Hosts without tiling
	// support stretch to this size instead.
	TiledSize *layout.Vec2
}
