package scroll

import "testing"

func TestLayout_VisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		layout    Layout
		count     int
		offset    float64
		viewport  float64
		cache     float64
		wantStart int
		wantEnd   int
	}{
		{"top", Layout{ItemExtent: 50}, 100, 0, 200, 0, 0, 4},
		{"scrolled", Layout{ItemExtent: 50}, 100, 75, 200, 0, 1, 6},
		{"cache", Layout{ItemExtent: 50}, 100, 0, 200, 100, 0, 6},
		{"short list", Layout{ItemExtent: 50}, 3, 0, 200, 0, 0, 3},
		{"empty", Layout{ItemExtent: 50}, 0, 0, 200, 0, 0, 0},
		{"spacing gap skipped", Layout{ItemExtent: 50, Spacing: 10}, 100, 55, 100, 0, 1, 3},
		{"padding", Layout{ItemExtent: 50, PaddingTop: 20}, 100, 0, 100, 0, 0, 2},
		{"no extent", Layout{}, 7, 0, 200, 0, 0, 7},
		{"no viewport", Layout{ItemExtent: 50}, 7, 0, 0, 0, 0, 7},
		{"negative cache", Layout{ItemExtent: 50}, 100, 0, 100, -30, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.layout.VisibleRange(tt.count, tt.offset, tt.viewport, tt.cache)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestLayout_Extents(t *testing.T) {
	l := Layout{ItemExtent: 50, Spacing: 10, PaddingTop: 5, PaddingBottom: 5}
	if got := l.ContentExtent(3); got != 180 {
		t.Errorf("ContentExtent(3) = %v, want 180", got)
	}
	if got := l.ContentExtent(0); got != 10 {
		t.Errorf("ContentExtent(0) = %v, want 10", got)
	}
	if got := l.EntryOffset(2); got != 125 {
		t.Errorf("EntryOffset(2) = %v, want 125", got)
	}
	if got := l.MaxScrollExtent(3, 100); got != 80 {
		t.Errorf("MaxScrollExtent = %v, want 80", got)
	}
	if got := l.MaxScrollExtent(1, 500); got != 0 {
		t.Errorf("MaxScrollExtent = %v, want 0", got)
	}
}
