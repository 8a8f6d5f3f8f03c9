package scroll

import "testing"

func TestPosition_ClampingRejectsOverscroll(t *testing.T) {
	pos := NewPosition(ClampingPhysics{})
	pos.SetMaxExtent(1000)

	pos.ApplyUserOffset(-50)
	if pos.Offset() != 0 {
		t.Errorf("offset after pulling past top = %v, want 0", pos.Offset())
	}
	pos.ApplyUserOffset(100)
	if pos.Offset() != 100 {
		t.Errorf("offset = %v, want 100", pos.Offset())
	}
	pos.SetOffset(5000)
	if pos.Offset() != 1000 {
		t.Errorf("offset = %v, want 1000", pos.Offset())
	}
	if pos.Overscroll() != 0 {
		t.Errorf("Overscroll() = %v, want 0", pos.Overscroll())
	}
}

func TestPosition_BouncingAllowsResistedOverscroll(t *testing.T) {
	pos := NewPosition(BouncingPhysics{})
	pos.SetViewport(600)
	pos.SetMaxExtent(1000)

	pos.ApplyUserOffset(-50)
	if pos.Overscroll() != -50 {
		t.Fatalf("first pull Overscroll() = %v, want -50", pos.Overscroll())
	}
	pos.ApplyUserOffset(-50)
	over := pos.Overscroll()
	if over >= -50 || over <= -100 {
		t.Errorf("second pull Overscroll() = %v, want resisted between -100 and -50", over)
	}
	if !pos.AtTop() {
		t.Error("AtTop() = false while overscrolled at top")
	}

	pos.ApplyUserOffset(30)
	if got := pos.Overscroll(); got != over+30 {
		t.Errorf("releasing drag Overscroll() = %v, want %v unresisted", got, over+30)
	}

	pos.Settle()
	if pos.Offset() != 0 {
		t.Errorf("offset after Settle = %v, want 0", pos.Offset())
	}
}

func TestPosition_BouncingOverscrollLimit(t *testing.T) {
	tests := []struct {
		viewport float64
		want     float64
	}{
		{600, -210},
		{100, -80},
		{1000, -220},
		{0, -210},
	}
	for _, tt := range tests {
		pos := NewPosition(BouncingPhysics{})
		pos.SetViewport(tt.viewport)
		pos.SetMaxExtent(100)
		pos.SetOffset(-10000)
		if pos.Offset() != tt.want {
			t.Errorf("viewport %v: offset = %v, want %v", tt.viewport, pos.Offset(), tt.want)
		}
	}
}

func TestPosition_SetPhysicsReclamps(t *testing.T) {
	pos := NewPosition(BouncingPhysics{})
	pos.SetMaxExtent(100)
	pos.SetOffset(-40)
	pos.SetPhysics(ClampingPhysics{})
	if pos.Offset() != 0 {
		t.Errorf("offset = %v, want 0 after switching to clamping", pos.Offset())
	}
	pos.SetPhysics(nil)
	if _, ok := pos.Physics().(ClampingPhysics); !ok {
		t.Errorf("Physics() = %T, want ClampingPhysics", pos.Physics())
	}
}

func TestPosition_ShrinkingContentReclamps(t *testing.T) {
	pos := NewPosition(nil)
	pos.SetMaxExtent(500)
	pos.SetOffset(400)
	pos.SetMaxExtent(-20)
	if pos.MaxExtent() != 0 || pos.Offset() != 0 {
		t.Errorf("max=%v offset=%v, want 0 and 0", pos.MaxExtent(), pos.Offset())
	}
}

func TestPosition_Changes(t *testing.T) {
	pos := NewPosition(nil)
	pos.SetMaxExtent(500)

	calls := 0
	remove := pos.Changes().AddListener(func() { calls++ })
	pos.SetOffset(200)
	pos.SetOffset(200)
	pos.SetViewport(400)
	pos.SetViewport(400)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	remove()
	pos.SetOffset(0)
	if calls != 2 {
		t.Errorf("calls = %d after remove, want 2", calls)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
