// Package testbed provides list fixtures for the testing framework.
package testbed

import (
	"github.com/go-drift/infinitelist/pkg/core"
	"github.com/go-drift/infinitelist/pkg/infinite"
)

// LoadingView is the loading renderable used by Feed configs.
const LoadingView = "loading"

// Feed owns a string collection and loading flag the way a caller would.
type Feed struct {
	Data    *core.Observable[[]string]
	Loading *core.Observable[bool]
}

// NewFeed creates a Feed holding items.
func NewFeed(items ...string) *Feed {
	return &Feed{
		Data:    core.NewObservable(items),
		Loading: core.NewObservable(false),
	}
}

// Append adds items to the end of the collection.
func (f *Feed) Append(items ...string) {
	f.Data.Update(func(current []string) []string {
		next := make([]string, 0, len(current)+len(items))
		next = append(next, current...)
		return append(next, items...)
	})
}

// Config returns a list config over the feed. Rows render as "row <item>".
// The refresh trigger leaves done to the gesture collaborator.
func (f *Feed) Config(refreshable, lazyStack bool) infinite.Config[string, string] {
	cfg := infinite.Config[string, string]{
		Data:         f.Data,
		IsLoading:    f.Loading,
		LoadingView:  LoadingView,
		LoadMore:     func() {},
		Content:      func(item string) string { return "row " + item },
		Capabilities: infinite.Capabilities{LazyStack: lazyStack},
	}
	if refreshable {
		cfg.OnRefresh = func(func()) {}
	}
	return cfg
}
