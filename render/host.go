package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/room-stage/layout"
	"github.com/lixenwraith/room-stage/prefab"
	"github.com/lixenwraith/room-stage/scene"
)

// Config maps world units to screen cells. Terminal cells are roughly
// twice as tall as they are wide, so the default doubles X.
type Config struct {
	CellsPerUnitX int
	CellsPerUnitY int
}

// DefaultConfig returns the standard world-to-cell mapping
func DefaultConfig() Config {
	return Config{CellsPerUnitX: 2, CellsPerUnitY: 1}
}

// sprite is one instantiated entity awaiting composition
type sprite struct {
	prefab *prefab.Prefab
	pos    layout.Vec2
	scale  layout.Vec2
	tiled  *layout.Vec2
	order  int
}

// TerminalHost is a scene.Host that paints staged sprites into a tcell
// screen. The world origin maps to the screen center, world Y points up.
type TerminalHost struct {
	screen tcell.Screen
	cfg    Config

	sprites []*sprite // submission order, tie-break for equal draw order
	byID    map[scene.EntityID]*sprite
	next    scene.EntityID
}

var _ scene.Host = (*TerminalHost)(nil)

// NewTerminalHost creates a host painting into screen
func NewTerminalHost(screen tcell.Screen, cfg Config) *TerminalHost {
	if cfg.CellsPerUnitX <= 0 || cfg.CellsPerUnitY <= 0 {
		cfg = DefaultConfig()
	}
	return &TerminalHost{
		screen: screen,
		cfg:    cfg,
		byID:   make(map[scene.EntityID]*sprite),
	}
}

// Instantiate implements scene.Host
func (h *TerminalHost) Instantiate(p *prefab.Prefab, pos layout.Vec2) (scene.EntityID, error) {
	if p == nil {
		return 0, fmt.Errorf("nil prefab")
	}

	h.next++
	id := h.next
	s := &sprite{
		prefab: p,
		pos:    pos,
		scale:  layout.Vec2{X: 1, Y: 1},
	}
	h.sprites = append(h.sprites, s)
	h.byID[id] = s
	return id, nil
}

// SetScale implements scene.Host
func (h *TerminalHost) SetScale(id scene.EntityID, scale layout.Vec2) {
	if s, ok := h.byID[id]; ok {
		s.scale = scale
		s.tiled = nil
	}
}

// SetTiledSize implements scene.Host. Only tileable prefabs can fill by
// repetition; for the rest the caller falls back to stretching.
func (h *TerminalHost) SetTiledSize(id scene.EntityID, size layout.Vec2) bool {
	s, ok := h.byID[id]
	if !ok || !s.prefab.Tileable {
		return false
	}
	t := size
	s.tiled = &t
	return true
}

// SetDrawOrder implements scene.Host
func (h *TerminalHost) SetDrawOrder(id scene.EntityID, order int) {
	if s, ok := h.byID[id]; ok {
		s.order = order
	}
}

// Reset drops all sprites so the host can stage a fresh document
func (h *TerminalHost) Reset() {
	h.sprites = nil
	h.byID = make(map[scene.EntityID]*sprite)
}

// Count returns the number of live sprites
func (h *TerminalHost) Count() int {
	return len(h.sprites)
}
