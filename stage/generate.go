package stage

import (
	"log"

	"github.com/lixenwraith/room-stage/layout"
	"github.com/lixenwraith/room-stage/prefab"
	"github.com/lixenwraith/room-stage/scene"
)

// Stats summarizes one staging pass
type Stats struct {
	Floor   bool // floor command emitted
	Placed  int  // object commands submitted
	Skipped int  // objects dropped on registry miss
}

// Generate loads the layout at path and stages it into host. Only the
// load failure propagates; every other condition is logged and the
// pass continues. Single pass, synchronous, no retries.
func Generate(path string, reg *prefab.Registry, host scene.Host) (Stats, error) {
	doc, err := layout.Load(path)
	if err != nil {
		return Stats{}, err
	}
	return StageDocument(doc, reg, host), nil
}

// StageDocument submits the floor command followed by one command per
// resolvable object, in document order.
func StageDocument(doc *layout.Document, reg *prefab.Registry, host scene.Host) Stats {
	var stats Stats

	if cmd, ok := PlaceFloor(doc.RoomSize, reg); ok {
		Submit(cmd, host)
		stats.Floor = true
	}

	for _, obj := range doc.Objects {
		cmd, ok := PlaceObject(obj, reg)
		if !ok {
			stats.Skipped++
			continue
		}
		Submit(cmd, host)
		stats.Placed++
	}

	return stats
}

// Submit applies one command to the host: instantiate, scale, tile or
// stretch, then draw order.
func Submit(cmd *Command, host scene.Host) {
	id, err := host.Instantiate(cmd.Prefab, cmd.Position)
	if err != nil {
		log.Printf("Failed to instantiate %q: %v", cmd.Prefab.Name, err)
		return
	}

	host.SetScale(id, cmd.Scale)

	if cmd.TiledSize != nil {
		if !host.SetTiledSize(id, *cmd.TiledSize) {
			log.Printf("Host cannot tile %q, stretching to %g x %g",
				cmd.Prefab.Name, cmd.TiledSize.X, cmd.TiledSize.Y)
			host.SetScale(id, *cmd.TiledSize)
		}
	}

	host.SetDrawOrder(id, cmd.DrawOrder)
}
