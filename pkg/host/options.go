package host

import "log/slog"

const (
	// DefaultItemExtent is the height of one entry when Options leaves it unset.
	DefaultItemExtent = 1.0
	// DefaultCacheExtent matches the look-ahead of a virtualized list view.
	DefaultCacheExtent = 250.0
)

// Options configures a Host.
type Options struct {
	// Viewport is the visible extent along the scroll axis. Zero or less
	// means unbounded: every entry is on screen.
	Viewport float64
	// Width is the cross-axis extent handed to expanding slots.
	Width float64
	// ItemExtent is the fixed height of every entry, including the loading slot.
	ItemExtent float64
	// CacheExtent is the distance beyond the viewport that virtualized
	// containers instantiate. Zero means DefaultCacheExtent; negative
	// disables the cache.
	CacheExtent float64
	// PaddingTop and PaddingBottom surround the entries.
	PaddingTop    float64
	PaddingBottom float64
	// PullTrigger overrides the pull distance that arms a refresh.
	PullTrigger float64
	// ManualVisibility disables automatic appearance events. Items appear
	// only through Show, which lets tests script exact visibility.
	ManualVisibility bool
	// Logger receives debug records. Nil is silent.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.ItemExtent <= 0 {
		o.ItemExtent = DefaultItemExtent
	}
	if o.CacheExtent < 0 {
		o.CacheExtent = 0
	} else if o.CacheExtent == 0 {
		o.CacheExtent = DefaultCacheExtent
	}
	return o
}
