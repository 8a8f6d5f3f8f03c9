package host

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/go-drift/infinitelist/pkg/core"
	"github.com/go-drift/infinitelist/pkg/infinite"
	"github.com/go-drift/infinitelist/pkg/scroll"
)

type fixture struct {
	data      *core.Observable[[]string]
	loading   *core.Observable[bool]
	loadMore  int
	refreshes []func()
}

func newFixture(t *testing.T, items []string, refreshable, lazy bool) (*fixture, *infinite.List[string, string]) {
	t.Helper()
	f := &fixture{
		data:    core.NewObservable(items),
		loading: core.NewObservable(false),
	}
	cfg := infinite.Config[string, string]{
		Data:         f.data,
		IsLoading:    f.loading,
		LoadingView:  "loading",
		LoadMore:     func() { f.loadMore++ },
		Content:      func(s string) string { return "row " + s },
		Capabilities: infinite.Capabilities{LazyStack: lazy},
	}
	if refreshable {
		cfg.OnRefresh = func(done func()) { f.refreshes = append(f.refreshes, done) }
	}
	list, err := infinite.New(cfg)
	if err != nil {
		t.Fatalf("infinite.New: %v", err)
	}
	return f, list
}

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%02d", i)
	}
	return out
}

func TestHost_ManualVisibilityScenario(t *testing.T) {
	f, list := newFixture(t, []string{"A", "B", "C"}, false, false)
	h := New(list, Options{ManualVisibility: true})

	h.Pump()
	if f.loadMore != 1 {
		t.Fatalf("loadMore after mount = %d, want 1", f.loadMore)
	}

	if fired, err := h.Show("C"); err != nil || !fired {
		t.Fatalf("Show(C) = %v, %v; want true, nil", fired, err)
	}
	if f.loadMore != 2 {
		t.Fatalf("loadMore = %d, want 2", f.loadMore)
	}

	f.data.Set([]string{"A", "B", "C", "D"})
	h.Pump()
	if fired, _ := h.Show("D"); !fired {
		t.Error("Show(D) should fire for the new last item")
	}
	if f.loadMore != 3 {
		t.Fatalf("loadMore = %d, want 3", f.loadMore)
	}

	h.Hide("C")
	if fired, _ := h.Show("C"); fired {
		t.Error("C is no longer last and must not fire")
	}
	if f.loadMore != 3 {
		t.Errorf("loadMore = %d, want 3", f.loadMore)
	}
}

func TestHost_ShowAlreadyVisible(t *testing.T) {
	f, list := newFixture(t, []string{"A"}, false, false)
	h := New(list, Options{ManualVisibility: true})
	h.Pump()

	h.Show("A")
	if fired, _ := h.Show("A"); fired {
		t.Error("second Show without Hide should not be a new appearance")
	}
	if f.loadMore != 2 {
		t.Errorf("loadMore = %d, want 2", f.loadMore)
	}
}

func TestHost_ShowNotInstantiated(t *testing.T) {
	_, list := newFixture(t, []string{"A"}, false, false)
	h := New(list, Options{ManualVisibility: true})
	h.Pump()

	if _, err := h.Show("Z"); !stderrors.Is(err, ErrNotInstantiated) {
		t.Errorf("Show(Z) error = %v, want ErrNotInstantiated", err)
	}
}

func TestHost_ScrollingToEndFires(t *testing.T) {
	f, list := newFixture(t, numbered(5), false, false)
	h := New(list, Options{Viewport: 2, CacheExtent: -1})

	var appeared []string
	h.OnAppear = func(item string, _ bool) { appeared = append(appeared, item) }

	h.Pump()
	if f.loadMore != 1 {
		t.Fatalf("loadMore = %d, want 1", f.loadMore)
	}
	if len(appeared) != 2 || appeared[0] != "item-00" || appeared[1] != "item-01" {
		t.Fatalf("appeared = %v, want first two items", appeared)
	}

	h.ScrollToEnd()
	h.Pump()
	if f.loadMore != 2 {
		t.Errorf("loadMore after reaching the end = %d, want 2", f.loadMore)
	}
	if h.Subscriptions() != 2 {
		t.Errorf("Subscriptions() = %d, want 2 without cache", h.Subscriptions())
	}

	h.Pump()
	if f.loadMore != 2 {
		t.Errorf("re-pump without scrolling fired: loadMore = %d", f.loadMore)
	}

	h.ScrollTo(0)
	h.Pump()
	h.ScrollToEnd()
	h.Pump()
	if f.loadMore != 3 {
		t.Errorf("re-appearance of the last item: loadMore = %d, want 3", f.loadMore)
	}
}

func TestHost_StaleLastItemDoesNotFire(t *testing.T) {
	f, list := newFixture(t, numbered(3), false, false)
	h := New(list, Options{})

	h.Pump()
	if f.loadMore != 2 {
		t.Fatalf("loadMore = %d, want mount plus last item", f.loadMore)
	}

	f.data.Set(numbered(6))
	h.Pump()
	if f.loadMore != 3 {
		t.Errorf("loadMore = %d, want 3", f.loadMore)
	}
	if !h.Visible("item-02") {
		t.Error("item-02 should still be visible")
	}
}

func TestHost_Virtualization(t *testing.T) {
	_, list := newFixture(t, numbered(100), false, false)
	h := New(list, Options{Viewport: 10, CacheExtent: 5})

	h.Pump()
	if got := h.Subscriptions(); got != 15 {
		t.Errorf("Subscriptions() = %d, want 15", got)
	}
	if got := len(h.OnScreen()); got != 10 {
		t.Errorf("on screen = %d, want 10", got)
	}

	h.ScrollTo(50)
	h.Pump()
	if got := h.Subscriptions(); got != 20 {
		t.Errorf("Subscriptions() = %d, want 20", got)
	}
	if h.Instantiated("item-00") {
		t.Error("item-00 should be released after scrolling away")
	}
	if !h.Instantiated("item-45") || !h.Instantiated("item-64") {
		t.Error("cache range should be instantiated")
	}
	if h.Visible("item-45") {
		t.Error("cache-only entries are not visible")
	}
}

func TestHost_EmptyAndLoading(t *testing.T) {
	f, list := newFixture(t, nil, false, false)
	f.loading.Set(true)
	h := New(list, Options{Viewport: 10})

	h.Pump()
	if f.loadMore != 1 {
		t.Errorf("loadMore = %d, want 1", f.loadMore)
	}
	entries := h.Entries()
	if len(entries) != 1 || entries[0].Kind != infinite.EntryLoading {
		t.Fatalf("entries = %+v, want only the loading slot", entries)
	}
	if entries[0].View != "loading" {
		t.Errorf("loading view = %q", entries[0].View)
	}
	if h.Subscriptions() != 0 {
		t.Errorf("Subscriptions() = %d, loading slot must not subscribe", h.Subscriptions())
	}
}

func TestHost_LoadingToggle(t *testing.T) {
	f, list := newFixture(t, []string{"A", "B"}, false, false)
	h := New(list, Options{})

	h.Pump()
	f.loading.Set(true)
	h.Pump()
	entries := h.Entries()
	if len(entries) != 3 || entries[2].Kind != infinite.EntryLoading {
		t.Fatalf("entries = %+v, want loading slot last", entries)
	}
	if entries[0].Item != "A" || entries[1].Item != "B" {
		t.Errorf("items reordered: %+v", entries)
	}
	if h.Subscriptions() != 2 {
		t.Errorf("Subscriptions() = %d, want 2", h.Subscriptions())
	}

	f.loading.Set(false)
	h.Pump()
	if got := len(h.Entries()); got != 2 {
		t.Errorf("entries = %d after loading ends, want 2", got)
	}
	if f.loadMore != 2 {
		t.Errorf("loadMore = %d, toggling loading must not fire", f.loadMore)
	}
}

func TestHost_EagerRefreshScenario(t *testing.T) {
	f, list := newFixture(t, []string{"A"}, true, false)
	h := New(list, Options{})

	h.Pump()
	if h.Mode() != infinite.ModeRefreshableEager {
		t.Fatalf("Mode() = %v, want refreshable-eager", h.Mode())
	}
	if f.loadMore != 2 {
		t.Errorf("loadMore = %d, want mount plus A", f.loadMore)
	}

	if !h.Pull(100) {
		t.Fatal("Pull(100) should start a refresh")
	}
	if len(f.refreshes) != 1 {
		t.Fatalf("onRefresh calls = %d, want 1", len(f.refreshes))
	}
	if h.PullState() != scroll.PullRefreshing {
		t.Errorf("PullState() = %v, want refreshing", h.PullState())
	}
	if h.Offset() != 0 {
		t.Errorf("Offset() = %v after release, want 0", h.Offset())
	}

	if h.Pull(100) {
		t.Error("Pull while refreshing should be ignored")
	}
	f.refreshes[0]()
	if h.PullState() != scroll.PullIdle {
		t.Errorf("PullState() = %v after done, want idle", h.PullState())
	}
	if len(f.refreshes) != 1 || f.loadMore != 2 {
		t.Errorf("refreshes=%d loadMore=%d, want 1 and 2", len(f.refreshes), f.loadMore)
	}
}

func TestHost_PullChanges(t *testing.T) {
	f, list := newFixture(t, []string{"A"}, true, true)
	h := New(list, Options{})
	h.Pump()

	var states []scroll.PullState
	remove := h.PullChanges().AddListener(func() { states = append(states, h.PullState()) })
	defer remove()

	if !h.Pull(100) {
		t.Fatal("Pull(100) should start a refresh")
	}
	if !h.NeedsPump() {
		t.Error("a pull state change should mark the host dirty")
	}
	h.Pump()
	f.refreshes[0]()
	if !h.NeedsPump() {
		t.Error("finishing the refresh should mark the host dirty")
	}

	want := []scroll.PullState{scroll.PullDragging, scroll.PullArmed, scroll.PullRefreshing, scroll.PullIdle}
	if fmt.Sprint(states) != fmt.Sprint(want) {
		t.Errorf("states = %v, want %v", states, want)
	}
}

func TestHost_ShortPull(t *testing.T) {
	f, list := newFixture(t, []string{"A"}, true, true)
	h := New(list, Options{})
	h.Pump()

	if h.Pull(40) {
		t.Error("Pull(40) should not reach the trigger")
	}
	if len(f.refreshes) != 0 {
		t.Errorf("onRefresh calls = %d, want 0", len(f.refreshes))
	}
}

func TestHost_PlainListHasNoPull(t *testing.T) {
	f, list := newFixture(t, numbered(3), false, false)
	h := New(list, Options{})
	h.Pump()

	if h.Pull(200) {
		t.Error("plain list must not refresh")
	}
	if h.PullState() != scroll.PullIdle {
		t.Errorf("PullState() = %v", h.PullState())
	}
	if h.Offset() != 0 {
		t.Errorf("Offset() = %v, clamping physics must not overscroll", h.Offset())
	}
	if len(f.refreshes) != 0 {
		t.Error("no refresh expected")
	}
}

func TestHost_LayoutSpacingPerMode(t *testing.T) {
	tests := []struct {
		name        string
		refreshable bool
		lazy        bool
		wantMode    infinite.Mode
		wantSpacing float64
	}{
		{"plain", false, true, infinite.ModePlainList, 0},
		{"lazy", true, true, infinite.ModeRefreshableLazy, infinite.DefaultSpacing},
		{"eager", true, false, infinite.ModeRefreshableEager, infinite.DefaultSpacing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, list := newFixture(t, numbered(2), tt.refreshable, tt.lazy)
			h := New(list, Options{})
			h.Pump()
			if h.Mode() != tt.wantMode {
				t.Errorf("Mode() = %v, want %v", h.Mode(), tt.wantMode)
			}
			if h.Layout().Spacing != tt.wantSpacing {
				t.Errorf("Spacing = %v, want %v", h.Layout().Spacing, tt.wantSpacing)
			}
		})
	}
}

func TestHost_EagerInstantiatesEverything(t *testing.T) {
	_, list := newFixture(t, numbered(50), true, false)
	h := New(list, Options{Viewport: 5, ItemExtent: 1, CacheExtent: -1})
	h.Pump()

	if got := h.Subscriptions(); got != 50 {
		t.Errorf("eager Subscriptions() = %d, want 50", got)
	}

	_, lazyList := newFixture(t, numbered(50), true, true)
	lazy := New(lazyList, Options{Viewport: 5, ItemExtent: 1, CacheExtent: -1})
	lazy.Pump()
	if got := lazy.Subscriptions(); got >= 50 {
		t.Errorf("lazy Subscriptions() = %d, want a window", got)
	}
}

func TestHost_UnmountRemount(t *testing.T) {
	f, list := newFixture(t, []string{"A", "B"}, false, false)
	h := New(list, Options{ManualVisibility: true})

	h.Pump()
	h.Pump()
	if f.loadMore != 1 {
		t.Fatalf("loadMore = %d, re-render must not refire mount", f.loadMore)
	}

	h.Unmount()
	if h.Subscriptions() != 0 || list.Subscriptions() != 0 {
		t.Errorf("subscriptions after Unmount: host=%d list=%d", h.Subscriptions(), list.Subscriptions())
	}
	if h.Mounted() {
		t.Error("Mounted() = true after Unmount")
	}

	h.Pump()
	if f.loadMore != 2 {
		t.Errorf("loadMore = %d after remount, want 2", f.loadMore)
	}
}

func TestHost_Dispatch(t *testing.T) {
	f, list := newFixture(t, nil, false, false)
	h := New(list, Options{ManualVisibility: true})
	h.Pump()

	h.Dispatch(func() { f.data.Set([]string{"X"}) })
	if !h.NeedsPump() {
		t.Error("NeedsPump() = false with a queued dispatch")
	}
	h.Pump()
	if h.Frame().ItemCount() != 1 {
		t.Errorf("ItemCount() = %d, dispatch should run before render", h.Frame().ItemCount())
	}
}

func TestHost_Watch(t *testing.T) {
	f, list := newFixture(t, nil, false, false)
	h := New(list, Options{})
	h.Watch(core.Changes(f.data))
	h.Pump()

	if h.NeedsPump() {
		t.Fatal("NeedsPump() = true right after Pump")
	}
	f.data.Set([]string{"A"})
	if !h.NeedsPump() {
		t.Error("NeedsPump() = false after data changed")
	}

	h.Dispose()
	if f.data.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d after Dispose, want 0", f.data.ListenerCount())
	}
}

func TestHost_ScrollClamps(t *testing.T) {
	_, list := newFixture(t, numbered(10), false, false)
	h := New(list, Options{Viewport: 4})
	h.Pump()

	h.ScrollBy(100)
	if h.Offset() != 6 {
		t.Errorf("Offset() = %v, want 6", h.Offset())
	}
	h.ScrollTo(-5)
	if h.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", h.Offset())
	}
}
