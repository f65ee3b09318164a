package scene

import (
	"fmt"

	"github.com/lixenwraith/room-stage/layout"
	"github.com/lixenwraith/room-stage/prefab"
)

// OpKind distinguishes recorded host calls
type OpKind string

const (
	OpInstantiate  OpKind = "instantiate"
	OpSetScale     OpKind = "set_scale"
	OpSetTiledSize OpKind = "set_tiled_size"
	OpSetDrawOrder OpKind = "set_draw_order"
)

// Op is one recorded host call
type Op struct {
	Kind   OpKind      `json:"op"`
	Entity EntityID    `json:"entity"`
	Prefab string      `json:"prefab,omitempty"`
	Vec    layout.Vec2 `json:"vec"`
	Order  int         `json:"order"`
}

// String renders an op as one human-readable line
func (o Op) String() string {
	switch o.Kind {
	case OpInstantiate:
		return fmt.Sprintf("#%d instantiate %s at (%g, %g)", o.Entity, o.Prefab, o.Vec.X, o.Vec.Y)
	case OpSetScale:
		return fmt.Sprintf("#%d scale (%g, %g)", o.Entity, o.Vec.X, o.Vec.Y)
	case OpSetTiledSize:
		return fmt.Sprintf("#%d tile (%g x %g)", o.Entity, o.Vec.X, o.Vec.Y)
	case OpSetDrawOrder:
		return fmt.Sprintf("#%d draw order %d", o.Entity, o.Order)
	}
	return fmt.Sprintf("#%d %s", o.Entity, o.Kind)
}

// Recorder is a Host that records every call in submission order.
// It backs the plan dumper and the staging tests; no rendering happens.
type Recorder struct {
	// SupportsTiling controls the SetTiledSize response, true by default
	SupportsTiling bool

	ops  []Op
	next EntityID
}

// NewRecorder creates a recorder that reports tiling support
func NewRecorder() *Recorder {
	return &Recorder{SupportsTiling: true}
}

// Instantiate implements Host
func (r *Recorder) Instantiate(p *prefab.Prefab, pos layout.Vec2) (EntityID, error) {
	r.next++
	id := r.next
	r.ops = append(r.ops, Op{Kind: OpInstantiate, Entity: id, Prefab: p.Name, Vec: pos})
	return id, nil
}

// SetScale implements Host
func (r *Recorder) SetScale(id EntityID, scale layout.Vec2) {
	r.ops = append(r.ops, Op{Kind: OpSetScale, Entity: id, Vec: scale})
}

// SetTiledSize implements Host
func (r *Recorder) SetTiledSize(id EntityID, size layout.Vec2) bool {
	if !r.SupportsTiling {
		return false
	}
	r.ops = append(r.ops, Op{Kind: OpSetTiledSize, Entity: id, Vec: size})
	return true
}

// SetDrawOrder implements Host
func (r *Recorder) SetDrawOrder(id EntityID, order int) {
	r.ops = append(r.ops, Op{Kind: OpSetDrawOrder, Entity: id, Order: order})
}

// Ops returns the recorded calls in submission order
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Instantiated returns only the instantiate ops, in submission order
func (r *Recorder) Instantiated() []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == OpInstantiate {
			out = append(out, op)
		}
	}
	return out
}
