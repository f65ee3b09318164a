package prefab

// Prefab is a cell-sprite asset: a rectangular glyph grid plus display
// hints. Rows are drawn top to bottom. A tileable prefab can be repeated
// to fill an area instead of being stretched.
type Prefab struct {
	Name     string   `json:"name"`
	Rows     []string `json:"rows"`
	Fg       string   `json:"fg"`
	Bg       string   `json:"bg"`
	Tileable bool     `json:"tileable"`
}

// Width returns the rune width of the widest row
func (p *Prefab) Width() int {
	max := 0
	for _, row := range p.Rows {
		if n := len([]rune(row)); n > max {
			max = n
		}
	}
	return max
}

// Height returns the number of rows
func (p *Prefab) Height() int {
	return len(p.Rows)
}

// Cell returns the rune at (x, y) in grid coordinates, or space for
// positions outside short rows
func (p *Prefab) Cell(x, y int) rune {
	if y < 0 || y >= len(p.Rows) {
		return ' '
	}
	row := []rune(p.Rows[y])
	if x < 0 || x >= len(row) {
		return ' '
	}
	return row[x]
}
