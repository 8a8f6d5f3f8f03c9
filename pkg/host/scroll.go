package host

import (
	"github.com/go-drift/infinitelist/pkg/core"
	"github.com/go-drift/infinitelist/pkg/infinite"
	"github.com/go-drift/infinitelist/pkg/scroll"
)

// ScrollTo jumps to offset, clamped to the content. It takes effect on the
// next Pump.
func (h *Host[T, V]) ScrollTo(offset float64) {
	h.position.SetOffset(scroll.Clamp(offset, 0, h.position.MaxExtent()))
}

// ScrollBy moves the offset by delta, clamped to the content.
func (h *Host[T, V]) ScrollBy(delta float64) {
	h.ScrollTo(h.position.Offset() + delta)
}

// ScrollToEnd jumps to the largest in-range offset.
func (h *Host[T, V]) ScrollToEnd() {
	h.ScrollTo(h.position.MaxExtent())
}

// SetViewport changes the viewport extent.
func (h *Host[T, V]) SetViewport(extent float64) {
	h.opts.Viewport = extent
	h.position.SetViewport(extent)
}

// DragStart begins a user drag.
func (h *Host[T, V]) DragStart() {
	if h.pull != nil {
		h.pull.DragStart()
	}
}

// DragUpdate applies a user drag delta with the container's physics.
// Negative deltas pull towards the top.
func (h *Host[T, V]) DragUpdate(delta float64) {
	h.position.ApplyUserOffset(delta)
	if h.pull != nil {
		h.pull.DragUpdate()
	}
}

// DragEnd releases the drag and settles any overscroll. It reports whether
// a refresh started.
func (h *Host[T, V]) DragEnd() bool {
	started := false
	if h.pull != nil {
		started = h.pull.DragEnd()
	}
	h.position.Settle()
	return started
}

// Pull performs a complete pull-down gesture of distance at the top of the
// content. It reports whether a refresh started.
func (h *Host[T, V]) Pull(distance float64) bool {
	h.DragStart()
	h.DragUpdate(-distance)
	return h.DragEnd()
}

// Frame returns the frame of the last Pump.
func (h *Host[T, V]) Frame() infinite.Frame[T, V] {
	return h.frame
}

// Entries returns the entries instantiated by the last Pump, in stream order.
func (h *Host[T, V]) Entries() []infinite.Entry[T, V] {
	return h.entries
}

// Mode returns the container mode of the last Pump.
func (h *Host[T, V]) Mode() infinite.Mode {
	return h.frame.Container.Mode
}

// Layout returns the entry layout of the last Pump.
func (h *Host[T, V]) Layout() scroll.Layout {
	return h.layout
}

// Offset returns the current scroll offset.
func (h *Host[T, V]) Offset() float64 {
	return h.position.Offset()
}

// Options returns the effective options.
func (h *Host[T, V]) Options() Options {
	return h.opts
}

// PullState returns the pull-to-refresh state. Plain lists are always idle.
func (h *Host[T, V]) PullState() scroll.PullState {
	if h.pull == nil {
		return scroll.PullIdle
	}
	return h.pull.State()
}

// PullChanges notifies on every pull-to-refresh state transition. Read the
// new state with PullState.
func (h *Host[T, V]) PullChanges() core.Listenable {
	return h.pullChanges
}

// Mounted reports whether the list is on screen.
func (h *Host[T, V]) Mounted() bool {
	return h.mounted
}

// Subscriptions returns the number of live item subscriptions.
func (h *Host[T, V]) Subscriptions() int {
	return len(h.subs)
}

// Instantiated reports whether item has a live subscription.
func (h *Host[T, V]) Instantiated(item T) bool {
	_, ok := h.subs[item]
	return ok
}

// Visible reports whether item is in the visible set.
func (h *Host[T, V]) Visible(item T) bool {
	return h.visible.Visible(item)
}

// OnScreen returns the entries in the on-screen range of the last Pump.
func (h *Host[T, V]) OnScreen() []infinite.Entry[T, V] {
	start, end := h.onScreenRange(h.frame.Len())
	out := make([]infinite.Entry[T, V], 0, end-start)
	for _, entry := range h.entries {
		if entry.Index >= start && entry.Index < end {
			out = append(out, entry)
		}
	}
	return out
}
