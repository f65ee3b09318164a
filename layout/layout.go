package layout

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ObjectPlacement describes one object instance in a room:
// which prefab type to use, where it goes, and how it is scaled
type ObjectPlacement struct {
	Type     string `json:"type"`
	Position Vec2   `json:"position"`
	Scale    Vec2   `json:"scale"`
}

// Document is a parsed room layout. RoomSize of (0,0) means unset.
// Objects keep their file order; staging happens in that order.
type Document struct {
	RoomSize Vec2              `json:"roomSize"`
	Objects  []ObjectPlacement `json:"objects"`
}
