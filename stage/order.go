package stage

import "math"

const (
	// SortOrderPerUnitY is the draw-order resolution: order units per
	// world unit of Y. Objects with Y values closer together than
	// 1/SortOrderPerUnitY can collide on the same key; hosts resolve
	// equal keys by submission order.
	SortOrderPerUnitY = 10

	// FloorDrawOrder keeps the floor behind all object content
	FloorDrawOrder = -10
)

// DrawOrderForY derives the paint key for an object anchored at y.
// Higher Y means further back in the room, so it gets a lower key and
// paints behind objects with lower Y.
func DrawOrderForY(y float64) int {
	return -int(math.Round(y * SortOrderPerUnitY))
}
