package testing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-drift/infinitelist/pkg/host"
	"github.com/go-drift/infinitelist/pkg/infinite"
)

const (
	// DefaultTestViewport is the default viewport extent in entries.
	DefaultTestViewport = 10
	// DefaultTestWidth is the default cross-axis extent.
	DefaultTestWidth = 40
	// DefaultTestPullTrigger is the pull distance that arms a refresh.
	DefaultTestPullTrigger = 3
)

// ErrNotMounted is returned by operations that need a mounted list.
var ErrNotMounted = errors.New("list tester: nothing mounted")

// ListTester mounts a list in an in-memory host and records what it fires.
type ListTester[T comparable, V any] struct {
	opts     host.Options
	host     *host.Host[T, V]
	list     *infinite.List[T, V]
	recorder *Recorder
}

// NewListTester creates a tester with the default test viewport.
// Call Cleanup() when done, or use NewListTesterWithT() instead.
func NewListTester[T comparable, V any]() *ListTester[T, V] {
	return &ListTester[T, V]{
		opts: host.Options{
			Viewport:    DefaultTestViewport,
			Width:       DefaultTestWidth,
			ItemExtent:  1,
			PullTrigger: DefaultTestPullTrigger,
		},
		recorder: &Recorder{},
	}
}

// NewListTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewListTesterWithT[T comparable, V any](t *testing.T) *ListTester[T, V] {
	tester := NewListTester[T, V]()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the host.
func (lt *ListTester[T, V]) Cleanup() {
	if lt.host != nil {
		lt.host.Dispose()
		lt.host = nil
		lt.list = nil
	}
}

// SetOptions replaces the host options. Must be called before Mount.
func (lt *ListTester[T, V]) SetOptions(opts host.Options) {
	lt.opts = opts
}

// SetViewport sets the viewport extent. Zero makes every entry visible.
func (lt *ListTester[T, V]) SetViewport(extent float64) {
	lt.opts.Viewport = extent
	if lt.host != nil {
		lt.host.SetViewport(extent)
	}
}

// SetManualVisibility switches to scripted visibility through Show and
// Hide. Must be called before Mount.
func (lt *ListTester[T, V]) SetManualVisibility(manual bool) {
	lt.opts.ManualVisibility = manual
}

// Mount builds a list from cfg, with its triggers recorded, and pumps one
// frame. A previous list is unmounted first.
func (lt *ListTester[T, V]) Mount(cfg infinite.Config[T, V]) error {
	lt.Cleanup()
	cfg.LoadMore = lt.recorder.WrapLoadMore(cfg.LoadMore)
	cfg.OnRefresh = lt.recorder.WrapRefresh(cfg.OnRefresh)
	list, err := infinite.New(cfg)
	if err != nil {
		return err
	}
	lt.list = list
	lt.host = host.New(list, lt.opts)
	lt.host.Pump()
	return nil
}

// Pump runs one frame.
func (lt *ListTester[T, V]) Pump() error {
	if lt.host == nil {
		return ErrNotMounted
	}
	lt.host.Pump()
	return nil
}

// Unmount takes the list off screen without disposing it. The next Pump
// mounts it again.
func (lt *ListTester[T, V]) Unmount() {
	if lt.host != nil {
		lt.host.Unmount()
	}
}

// Dispatch queues a callback for the next frame.
func (lt *ListTester[T, V]) Dispatch(fn func()) {
	if lt.host != nil {
		lt.host.Dispatch(fn)
	}
}

// Show delivers an appearance event for item.
func (lt *ListTester[T, V]) Show(item T) error {
	if lt.host == nil {
		return ErrNotMounted
	}
	if _, err := lt.host.Show(item); err != nil {
		return fmt.Errorf("Show(%v): %w", item, err)
	}
	return nil
}

// Hide removes item from the visible set.
func (lt *ListTester[T, V]) Hide(item T) {
	if lt.host != nil {
		lt.host.Hide(item)
	}
}

// ScrollTo jumps to offset and pumps.
func (lt *ListTester[T, V]) ScrollTo(offset float64) error {
	if lt.host == nil {
		return ErrNotMounted
	}
	lt.host.ScrollTo(offset)
	lt.host.Pump()
	return nil
}

// ScrollBy moves the offset by delta and pumps.
func (lt *ListTester[T, V]) ScrollBy(delta float64) error {
	if lt.host == nil {
		return ErrNotMounted
	}
	lt.host.ScrollBy(delta)
	lt.host.Pump()
	return nil
}

// ScrollToEnd jumps to the end of the content and pumps.
func (lt *ListTester[T, V]) ScrollToEnd() error {
	if lt.host == nil {
		return ErrNotMounted
	}
	lt.host.ScrollToEnd()
	lt.host.Pump()
	return nil
}

// Pull performs a pull-down gesture of distance at the top and pumps. It
// reports whether a refresh started.
func (lt *ListTester[T, V]) Pull(distance float64) (bool, error) {
	if lt.host == nil {
		return false, ErrNotMounted
	}
	started := lt.host.Pull(distance)
	lt.host.Pump()
	return started, nil
}

// Recorder returns the trigger recorder.
func (lt *ListTester[T, V]) Recorder() *Recorder {
	return lt.recorder
}

// Host returns the host, or nil before Mount.
func (lt *ListTester[T, V]) Host() *host.Host[T, V] {
	return lt.host
}

// List returns the mounted list, or nil before Mount.
func (lt *ListTester[T, V]) List() *infinite.List[T, V] {
	return lt.list
}

// Find evaluates finder against the entries of the last frame.
func (lt *ListTester[T, V]) Find(finder Finder) FinderResult {
	var matches []Match
	for _, m := range lt.matches() {
		if finder.Matches(m) {
			matches = append(matches, m)
		}
	}
	return FinderResult{matches: matches, finder: finder}
}

func (lt *ListTester[T, V]) matches() []Match {
	if lt.host == nil {
		return nil
	}
	onScreen := make(map[int]bool)
	for _, entry := range lt.host.OnScreen() {
		onScreen[entry.Index] = true
	}
	entries := lt.host.Entries()
	out := make([]Match, 0, len(entries))
	for _, entry := range entries {
		m := Match{
			Index:  entry.Index,
			Kind:   entry.Kind,
			View:   entry.View,
			Failed: entry.Failed,
		}
		if key, ok := entry.Key(); ok {
			m.Item = key
			m.Visible = lt.host.Visible(key)
		} else {
			m.Visible = onScreen[entry.Index]
		}
		out = append(out, m)
	}
	return out
}
