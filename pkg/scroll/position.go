package scroll

import "github.com/go-drift/infinitelist/pkg/core"

// Position is the scroll offset of a list viewport. In-range offsets run
// from 0 at the first entry to MaxExtent, where the last entry sits at the
// bottom of the viewport. A drag may carry the offset past either edge
// when the physics allow overscroll.
type Position struct {
	offset   float64
	max      float64
	viewport float64
	physics  Physics
	changes  *core.Notifier
}

// NewPosition creates a position at offset 0. Nil physics means clamping.
func NewPosition(physics Physics) *Position {
	if physics == nil {
		physics = ClampingPhysics{}
	}
	return &Position{physics: physics, changes: core.NewNotifier()}
}

// Changes notifies when the offset or the viewport changes.
func (p *Position) Changes() core.Listenable {
	return p.changes
}

// Offset returns the current scroll offset.
func (p *Position) Offset() float64 {
	return p.offset
}

// MaxExtent returns the largest in-range offset.
func (p *Position) MaxExtent() float64 {
	return p.max
}

// Viewport returns the visible extent along the scroll axis.
func (p *Position) Viewport() float64 {
	return p.viewport
}

// SetViewport records the visible extent measured by the host.
func (p *Position) SetViewport(extent float64) {
	if extent == p.viewport {
		return
	}
	p.viewport = extent
	p.changes.Notify()
}

// Physics returns the active scroll physics.
func (p *Position) Physics() Physics {
	return p.physics
}

// SetPhysics swaps the scroll physics and re-clamps the offset.
func (p *Position) SetPhysics(physics Physics) {
	if physics == nil {
		physics = ClampingPhysics{}
	}
	p.physics = physics
	p.SetOffset(p.offset)
}

// SetOffset moves to value, bounded by the content and the physics'
// overscroll limit.
func (p *Position) SetOffset(value float64) {
	limit := p.physics.OverscrollLimit(p)
	clamped := Clamp(value, -limit, p.max+limit)
	if clamped == p.offset {
		return
	}
	p.offset = clamped
	p.changes.Notify()
}

// SetMaxExtent updates the end of the content after a layout. Negative
// values mean the content fits in the viewport.
func (p *Position) SetMaxExtent(extent float64) {
	p.max = max(extent, 0)
	p.SetOffset(p.offset)
}

// ApplyUserOffset applies a drag delta through the physics. Positive deltas
// scroll towards the end of the list.
func (p *Position) ApplyUserOffset(delta float64) {
	p.SetOffset(p.offset + p.physics.Resist(p, delta))
}

// Overscroll returns how far the offset is past an edge: negative above the
// first entry, positive below the last, zero in range.
func (p *Position) Overscroll() float64 {
	switch {
	case p.offset < 0:
		return p.offset
	case p.offset > p.max:
		return p.offset - p.max
	default:
		return 0
	}
}

// AtTop reports whether the first entry is at or below the top edge.
func (p *Position) AtTop() bool {
	return p.offset <= 0
}

// Settle snaps an overscrolled position back into range.
func (p *Position) Settle() {
	p.SetOffset(Clamp(p.offset, 0, p.max))
}

// Clamp restricts value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
