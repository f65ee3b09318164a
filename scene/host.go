package scene

import (
	"github.com/lixenwraith/room-stage/layout"
	"github.com/lixenwraith/room-stage/prefab"
)

// EntityID identifies one instantiated entity within a host
type EntityID int

// Host is the capability the staging pass needs from a scene backend.
// Hosts must paint entities with equal draw order in submission order.
type Host interface {
	// Instantiate creates one visual entity from a prefab at a world position
	Instantiate(p *prefab.Prefab, pos layout.Vec2) (EntityID, error)

	// SetScale applies a non-uniform scale to an entity
	SetScale(id EntityID, scale layout.Vec2)

	// SetTiledSize asks the entity to fill size by texture repetition.
	// Returns false when the host cannot tile, in which case the caller
	// falls back to stretching.
	SetTiledSize(id EntityID, size layout.Vec2) bool

	// SetDrawOrder assigns the paint key; lower values paint earlier
	SetDrawOrder(id EntityID, order int)
}
