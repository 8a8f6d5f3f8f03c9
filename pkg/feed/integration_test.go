package feed_test

import (
	"testing"

	"github.com/go-drift/infinitelist/pkg/core"
	"github.com/go-drift/infinitelist/pkg/feed"
	"github.com/go-drift/infinitelist/pkg/host"
	"github.com/go-drift/infinitelist/pkg/infinite"
)

func mountFeed(t *testing.T, f *feed.Feed[int], refresh bool, opts host.Options) *host.Host[int, string] {
	t.Helper()
	cfg := infinite.Config[int, string]{
		Data:        f.Data(),
		IsLoading:   f.Loading(),
		LoadingView: "…",
		LoadMore:    f.LoadMore,
		Content:     func(v int) string { return "row" },
	}
	if refresh {
		cfg.OnRefresh = f.Refresh
	}
	list, err := infinite.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	h := host.New(list, opts)
	h.Watch(core.Changes(f.Data()))
	t.Cleanup(h.Dispose)
	return h
}

func TestFeed_PagesThroughHost(t *testing.T) {
	src := feed.NewMemorySource(make([]int, 0))
	for i := 0; i < 30; i++ {
		src.Append(i)
	}
	f := feed.New[int](src, feed.Options{PageSize: 10})
	h := mountFeed(t, f, false, host.Options{Viewport: 5, CacheExtent: -1})

	h.Pump()
	if got := len(f.Data().Value()); got != 10 {
		t.Fatalf("len after mount = %d, want 10", got)
	}
	if !h.NeedsPump() {
		t.Error("data change should invalidate the host")
	}

	for k := 0; k < 3; k++ {
		h.Pump()
		h.ScrollToEnd()
		h.Pump()
	}
	if got := len(f.Data().Value()); got != 30 {
		t.Errorf("len = %d, want 30", got)
	}
	if !f.Exhausted() {
		t.Error("feed should be exhausted")
	}
}

func TestFeed_PullToRefreshThroughHost(t *testing.T) {
	src := feed.NewMemorySource([]int{1, 2, 3})
	f := feed.New[int](src, feed.Options{PageSize: 10})
	h := mountFeed(t, f, true, host.Options{})

	h.Pump()
	h.Pump()
	if h.Mode() != infinite.ModeRefreshableEager {
		t.Fatalf("Mode() = %v", h.Mode())
	}

	src.Prepend(0)
	if !h.Pull(120) {
		t.Fatal("Pull should start a refresh")
	}
	h.Pump()
	data := f.Data().Value()
	if len(data) != 4 || data[0] != 0 {
		t.Errorf("data = %v, want refreshed first page", data)
	}
	if h.PullState().String() != "idle" {
		t.Errorf("PullState() = %v, synchronous refresh should finish at once", h.PullState())
	}
}
