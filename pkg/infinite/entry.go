package infinite

import (
	"fmt"
	"time"

	"github.com/go-drift/infinitelist/pkg/errors"
)

// EntryKind distinguishes data items from the trailing loading slot.
type EntryKind int

const (
	// EntryItem renders one element of the snapshot.
	EntryItem EntryKind = iota
	// EntryLoading renders the loading indicator.
	EntryLoading
)

func (k EntryKind) String() string {
	if k == EntryLoading {
		return "loading"
	}
	return "item"
}

// Alignment positions content inside its slot along the cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// SlotLayout is the layout request attached to an entry.
type SlotLayout struct {
	// ExpandWidth asks the host to give the entry the full cross-axis extent.
	ExpandWidth bool
	Alignment   Alignment
}

// loadingLayout fills the available width and centres the indicator.
var loadingLayout = SlotLayout{ExpandWidth: true, Alignment: AlignCenter}

// Entry is one element of the rendered stream.
type Entry[T comparable, V any] struct {
	Kind EntryKind
	// Index is the position in the stream. The loading slot, when present,
	// has index len(Items).
	Index int
	// Item is the data item. Zero for the loading slot.
	Item T
	// View is the renderable built by Content, or the loading view.
	View V
	// Failed is set when Content panicked; View is zero in that case.
	Failed bool
	Layout SlotLayout
}

// Key returns the entry's identity. The loading slot has none.
func (e Entry[T, V]) Key() (T, bool) {
	if e.Kind != EntryItem {
		var zero T
		return zero, false
	}
	return e.Item, true
}

// buildItem runs content under recovery. A panic is reported and the entry
// keeps its identity and position with Failed set.
func buildItem[T comparable, V any](content func(T) V, index int, item T) (entry Entry[T, V]) {
	entry = Entry[T, V]{Kind: EntryItem, Index: index, Item: item}
	defer func() {
		if r := recover(); r != nil {
			errors.ReportRenderError(&errors.RenderError{
				Item:       fmt.Sprint(item),
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
			var zero V
			entry.View = zero
			entry.Failed = true
		}
	}()
	entry.View = content(item)
	return entry
}
