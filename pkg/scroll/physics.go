package scroll

import "math"

// Physics shapes how a drag moves a Position.
type Physics interface {
	// Resist scales a drag delta for the current position.
	Resist(p *Position, delta float64) float64
	// OverscrollLimit is how far past either edge the offset may go.
	OverscrollLimit(p *Position) float64
}

// ClampingPhysics stops at the edges. Plain lists use it.
type ClampingPhysics struct{}

// Resist returns delta unchanged.
func (ClampingPhysics) Resist(_ *Position, delta float64) float64 {
	return delta
}

// OverscrollLimit is zero.
func (ClampingPhysics) OverscrollLimit(*Position) float64 {
	return 0
}

// BouncingPhysics lets a drag run past the edges so a pull above the first
// entry can be measured. Refreshable containers use it.
type BouncingPhysics struct{}

// fallbackViewport stands in for an unmeasured viewport.
const fallbackViewport = 600.0

// Resist damps a drag that pushes further past an edge. The damping grows
// with the overscroll relative to the viewport and bottoms out at 0.12.
func (BouncingPhysics) Resist(p *Position, delta float64) float64 {
	if (p.AtTop() && delta < 0) || (p.offset >= p.max && delta > 0) {
		fraction := math.Abs(p.Overscroll()) / viewportOf(p)
		return delta * max(1/(1+2.4*fraction), 0.12)
	}
	return delta
}

// OverscrollLimit is 35% of the viewport, kept within [80, 220].
func (BouncingPhysics) OverscrollLimit(p *Position) float64 {
	return Clamp(viewportOf(p)*0.35, 80, 220)
}

func viewportOf(p *Position) float64 {
	if p.viewport > 0 {
		return p.viewport
	}
	return fallbackViewport
}
