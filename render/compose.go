package render

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/room-stage/prefab"
)

// Compose paints all sprites into the screen in ascending draw order
// and flushes. Equal keys keep submission order.
func (h *TerminalHost) Compose() {
	h.screen.Clear()

	ordered := make([]*sprite, len(h.sprites))
	copy(ordered, h.sprites)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].order < ordered[j].order
	})

	for _, s := range ordered {
		h.blit(s)
	}

	h.screen.Show()
}

// blit draws one sprite. Tiled sprites repeat the glyph grid across the
// tiled area; scaled sprites stretch by nearest-neighbor sampling.
func (h *TerminalHost) blit(s *sprite) {
	pw, ph := s.prefab.Width(), s.prefab.Height()
	if pw == 0 || ph == 0 {
		return
	}

	var w, ch int
	if s.tiled != nil {
		w = cells(s.tiled.X, h.cfg.CellsPerUnitX)
		ch = cells(s.tiled.Y, h.cfg.CellsPerUnitY)
	} else {
		w = int(math.Round(float64(pw) * s.scale.X))
		ch = int(math.Round(float64(ph) * s.scale.Y))
	}
	// Zero-area sprites (e.g. zero scale from a sparse layout) draw nothing
	if w <= 0 || ch <= 0 {
		return
	}

	sw, sh := h.screen.Size()
	left := sw/2 + cells(s.pos.X, h.cfg.CellsPerUnitX) - w/2
	top := sh/2 - cells(s.pos.Y, h.cfg.CellsPerUnitY) - ch/2

	style := styleFor(s.prefab)
	for cy := 0; cy < ch; cy++ {
		for cx := 0; cx < w; cx++ {
			var r rune
			if s.tiled != nil {
				r = s.prefab.Cell(cx%pw, cy%ph)
			} else {
				r = s.prefab.Cell(cx*pw/w, cy*ph/ch)
			}
			h.screen.SetContent(left+cx, top+cy, r, nil, style)
		}
	}
}

// cells converts a world distance to screen cells
func cells(units float64, perUnit int) int {
	return int(math.Round(units * float64(perUnit)))
}

// styleFor maps a prefab's color hints to a tcell style
func styleFor(p *prefab.Prefab) tcell.Style {
	style := tcell.StyleDefault
	if p.Fg != "" {
		style = style.Foreground(tcell.GetColor(p.Fg))
	}
	if p.Bg != "" {
		style = style.Background(tcell.GetColor(p.Bg))
	}
	return style
}
