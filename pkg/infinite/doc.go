// Package infinite implements the pagination trigger and render-mode state
// machine behind an infinitely scrolling list.
//
// A [List] is configured once with bindings to caller-owned state and two
// triggers:
//
//	list, err := infinite.New(infinite.Config[string, string]{
//	    Data:        items,            // core.Binding[[]string]
//	    IsLoading:   loading,          // core.Binding[bool]
//	    LoadingView: "loading...",
//	    LoadMore:    feed.LoadMore,
//	    OnRefresh:   feed.Refresh,     // optional
//	    Content:     func(s string) string { return s },
//	})
//
// The host drives the list through four calls:
//
//   - [List.Mount] when the root container first appears. Fires LoadMore once.
//   - [List.Render] on every render pass. Returns a [Frame] describing the
//     container ([Container], a tagged mode variant) and the entry stream.
//   - [List.Subscribe] for every item the host instantiates, then
//     [Subscription.Appear] whenever that item enters the viewport. Fires
//     LoadMore when the item is the last one of the live snapshot.
//   - [RefreshAdapter.Trigger] when the host's pull gesture completes.
//
// # Render modes
//
// [SelectMode] picks one of three containers:
//
//	no OnRefresh                         -> ModePlainList
//	OnRefresh, Capabilities.LazyStack    -> ModeRefreshableLazy
//	OnRefresh, no lazy stack             -> ModeRefreshableEager
//
// # Caller obligations
//
// Items of one snapshot must be pairwise distinct under ==. Duplicates make
// last-item detection undefined; [List.Duplicates] reports them for debugging
// but the list never guards against them.
//
// LoadMore is not deduplicated. It fires on mount and on every qualifying
// appearance, so the caller must make it a no-op while a fetch is in flight,
// usually by checking its own loading flag.
//
// # Threading
//
// A List is not safe for concurrent use. All methods must be called from the
// host's render loop. Bindings may be written from other goroutines; each
// Render reads them exactly once.
package infinite
