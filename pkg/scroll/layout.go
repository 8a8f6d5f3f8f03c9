package scroll

import "math"

// Layout describes a vertical run of fixed-extent entries.
type Layout struct {
	// ItemExtent is the height of every entry. Required for virtualization.
	ItemExtent float64
	// Spacing is the gap between consecutive entries.
	Spacing float64
	// CacheExtent is how far beyond the viewport entries are instantiated.
	CacheExtent float64
	// PaddingTop and PaddingBottom surround the run.
	PaddingTop    float64
	PaddingBottom float64
}

func (l Layout) stride() float64 {
	return l.ItemExtent + l.Spacing
}

// ContentExtent returns the total height of count entries including padding.
func (l Layout) ContentExtent(count int) float64 {
	if count <= 0 {
		return l.PaddingTop + l.PaddingBottom
	}
	return l.PaddingTop + float64(count)*l.ItemExtent + float64(count-1)*l.Spacing + l.PaddingBottom
}

// EntryOffset returns the leading edge of entry i.
func (l Layout) EntryOffset(i int) float64 {
	return l.PaddingTop + float64(i)*l.stride()
}

// MaxScrollExtent returns the largest in-range offset for count entries.
func (l Layout) MaxScrollExtent(count int, viewport float64) float64 {
	return math.Max(0, l.ContentExtent(count)-viewport)
}

// VisibleRange returns the [start, end) entries intersecting the viewport
// at offset, widened by cache. Without a positive ItemExtent or viewport
// every entry is considered visible.
func (l Layout) VisibleRange(count int, offset, viewport, cache float64) (int, int) {
	if count <= 0 {
		return 0, 0
	}
	if l.ItemExtent <= 0 || viewport <= 0 {
		return 0, count
	}
	if cache < 0 {
		cache = 0
	}
	stride := l.stride()
	visibleStart := offset - l.PaddingTop - cache
	visibleEnd := offset + viewport - l.PaddingTop + cache
	startIndex := int(math.Floor(visibleStart / stride))
	endIndex := int(math.Ceil(visibleEnd / stride))
	if startIndex < 0 {
		startIndex = 0
	}
	if endIndex > count {
		endIndex = count
	}
	if endIndex < startIndex {
		endIndex = startIndex
	}
	// A spacing gap at the leading edge does not make the next entry visible.
	if startIndex < endIndex && float64(startIndex)*stride+l.ItemExtent <= visibleStart {
		startIndex++
	}
	return startIndex, endIndex
}

// OnScreenRange is VisibleRange without the cache extent: the entries a
// user can actually see.
func (l Layout) OnScreenRange(count int, offset, viewport float64) (int, int) {
	return l.VisibleRange(count, offset, viewport, 0)
}
