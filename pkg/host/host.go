package host

import (
	stderrors "errors"

	"github.com/go-drift/infinitelist/pkg/core"
	"github.com/go-drift/infinitelist/pkg/infinite"
	"github.com/go-drift/infinitelist/pkg/scroll"
)

// ErrNotInstantiated is returned when a visibility event names an item the
// container has not instantiated.
var ErrNotInstantiated = stderrors.New("host: item is not instantiated")

// Host drives one List the way a UI toolkit would.
type Host[T comparable, V any] struct {
	// OnAppear observes every appearance event delivered to the list,
	// with whether it fired LoadMore.
	OnAppear func(item T, fired bool)

	list *infinite.List[T, V]
	opts Options

	position    *scroll.Position
	pull        *scroll.PullRecognizer
	pullChanges *core.Notifier

	frame   infinite.Frame[T, V]
	layout  scroll.Layout
	entries []infinite.Entry[T, V]
	subs    map[T]*infinite.Subscription[T, V]
	visible *scroll.VisibilityTracker[T]

	dispatches []func()
	disposers  core.Disposers
	mounted    bool
	dirty      bool
}

// New creates a Host for list. Nothing is rendered until the first Pump.
func New[T comparable, V any](list *infinite.List[T, V], opts Options) *Host[T, V] {
	opts = opts.withDefaults()
	h := &Host[T, V]{
		list:        list,
		opts:        opts,
		position:    scroll.NewPosition(scroll.ClampingPhysics{}),
		pullChanges: core.NewNotifier(),
		subs:        make(map[T]*infinite.Subscription[T, V]),
		visible:     scroll.NewVisibilityTracker[T](),
		dirty:       true,
	}
	h.position.SetViewport(opts.Viewport)
	h.Watch(h.position.Changes())
	h.Watch(h.pullChanges)
	return h
}

// Watch marks the host dirty whenever l changes. The listener is removed
// by Dispose.
func (h *Host[T, V]) Watch(l core.Listenable) {
	h.disposers.Add(l.AddListener(h.Invalidate))
}

// Invalidate marks the host as needing a Pump.
func (h *Host[T, V]) Invalidate() {
	h.dirty = true
}

// NeedsPump reports whether anything changed since the last Pump.
func (h *Host[T, V]) NeedsPump() bool {
	return h.dirty || len(h.dispatches) > 0
}

// Dispatch queues fn to run at the start of the next Pump. It is the only
// way for work on other goroutines to touch the host, and callers must
// serialize calls to Dispatch with Pump themselves.
func (h *Host[T, V]) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	h.dispatches = append(h.dispatches, fn)
}

// Pump runs one frame: queued dispatches, render, instantiation,
// subscription sync, the initial load on first appearance, and appearance
// events for items that came on screen.
func (h *Host[T, V]) Pump() {
	for len(h.dispatches) > 0 {
		queued := h.dispatches
		h.dispatches = nil
		for _, fn := range queued {
			fn()
		}
	}

	h.dirty = false
	h.frame = h.list.Render()
	h.configureContainer(h.frame.Container)
	h.layout = scroll.Layout{
		ItemExtent:    h.opts.ItemExtent,
		Spacing:       h.frame.Container.Spacing,
		CacheExtent:   h.opts.CacheExtent,
		PaddingTop:    h.opts.PaddingTop,
		PaddingBottom: h.opts.PaddingBottom,
	}
	count := h.frame.Len()
	h.position.SetMaxExtent(h.maxScrollExtent(count))

	start, end := h.instantiatedRange(count)
	h.entries = h.frame.Entries(start, end)
	h.syncSubscriptions()

	if !h.mounted {
		h.mounted = true
		h.list.Mount()
	}
	if !h.opts.ManualVisibility {
		h.deliverAppearances(count)
	}
}

// Unmount removes the list from the screen. Every subscription is
// canceled, and the next Pump mounts it again.
func (h *Host[T, V]) Unmount() {
	if !h.mounted {
		return
	}
	h.mounted = false
	h.list.Unmount()
	clear(h.subs)
	h.visible.Reset()
	h.entries = nil
	if h.pull != nil {
		h.pull.Cancel()
	}
	h.dirty = true
}

// Dispose unmounts the list and releases listeners.
func (h *Host[T, V]) Dispose() {
	h.Unmount()
	h.disposers.Dispose()
}

func (h *Host[T, V]) configureContainer(c infinite.Container) {
	if c.Mode.Refreshable() {
		if h.pull == nil {
			h.pull = scroll.NewPullRecognizer(h.position, h.triggerRefresh)
			h.pull.Trigger = h.opts.PullTrigger
			h.pull.OnStateChange = func(scroll.PullState) { h.pullChanges.Notify() }
			h.position.SetPhysics(scroll.BouncingPhysics{})
		}
		return
	}
	if h.pull != nil {
		h.pull.Cancel()
		h.pull = nil
		h.position.SetPhysics(scroll.ClampingPhysics{})
	}
}

// triggerRefresh forwards a completed pull to the adapter of the current
// frame's container.
func (h *Host[T, V]) triggerRefresh(done func()) {
	h.frame.Container.Refresh.Trigger(done)
}

func (h *Host[T, V]) maxScrollExtent(count int) float64 {
	if h.opts.Viewport <= 0 {
		return 0
	}
	return h.layout.MaxScrollExtent(count, h.opts.Viewport)
}

// instantiatedRange is the slice of the stream the container builds.
// Eager stacks build everything.
func (h *Host[T, V]) instantiatedRange(count int) (int, int) {
	if !h.frame.Container.Mode.Virtualized() {
		return 0, count
	}
	return h.layout.VisibleRange(count, h.position.Offset(), h.opts.Viewport, h.opts.CacheExtent)
}

// onScreenRange is the slice of the stream that has appeared. Eager
// stacks report every child as appeared once built.
func (h *Host[T, V]) onScreenRange(count int) (int, int) {
	if !h.frame.Container.Mode.Virtualized() {
		return 0, count
	}
	return h.layout.OnScreenRange(count, h.position.Offset(), h.opts.Viewport)
}

func (h *Host[T, V]) syncSubscriptions() {
	live := make(map[T]struct{}, len(h.entries))
	for _, entry := range h.entries {
		key, ok := entry.Key()
		if !ok {
			continue
		}
		live[key] = struct{}{}
		if _, ok := h.subs[key]; !ok {
			h.subs[key] = h.list.Subscribe(key)
		}
	}
	for key, sub := range h.subs {
		if _, ok := live[key]; ok {
			continue
		}
		sub.Cancel()
		delete(h.subs, key)
		h.visible.Forget(key)
	}
}

func (h *Host[T, V]) deliverAppearances(count int) {
	start, end := h.onScreenRange(count)
	keys := make([]T, 0, end-start)
	for _, entry := range h.entries {
		if entry.Index < start || entry.Index >= end {
			continue
		}
		if key, ok := entry.Key(); ok {
			keys = append(keys, key)
		}
	}
	appeared, _ := h.visible.Update(keys)
	for _, key := range appeared {
		h.appear(key)
	}
}

func (h *Host[T, V]) appear(item T) bool {
	sub, ok := h.subs[item]
	if !ok {
		return false
	}
	fired := sub.Appear()
	if h.opts.Logger != nil {
		h.opts.Logger.Debug("item appeared", "item", item, "loadMore", fired)
	}
	if h.OnAppear != nil {
		h.OnAppear(item, fired)
	}
	return fired
}

// Show delivers an appearance event for item if it is instantiated and not
// already visible. It reports whether LoadMore fired. Use it with
// ManualVisibility; automatic hosts overwrite the visible set on the next
// Pump.
func (h *Host[T, V]) Show(item T) (bool, error) {
	if _, ok := h.subs[item]; !ok {
		return false, ErrNotInstantiated
	}
	if !h.visible.Mark(item) {
		return false, nil
	}
	return h.appear(item), nil
}

// Hide removes item from the visible set so a later Show is a fresh
// appearance.
func (h *Host[T, V]) Hide(item T) {
	h.visible.Forget(item)
}
