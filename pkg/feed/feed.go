package feed

import (
	"context"
	"log/slog"

	"github.com/go-drift/infinitelist/pkg/core"
	"github.com/go-drift/infinitelist/pkg/errors"
)

// Options configures a Feed.
type Options struct {
	// PageSize is the fetch limit. Zero means DefaultPageSize.
	PageSize int
	// Dispatch runs a callback on the UI loop. When set, fetches run on
	// their own goroutine and complete through Dispatch. When nil, fetches
	// run synchronously inside LoadMore and Refresh.
	Dispatch func(func())
	// Name labels the source in reported errors.
	Name string
	// Logger receives debug records. Nil is silent.
	Logger *slog.Logger
}

// Feed accumulates pages from a Source into caller-owned bindings. All
// methods must be called from the UI loop.
type Feed[T any] struct {
	src  Source[T]
	opts Options

	data    *core.Observable[[]T]
	loading *core.Observable[bool]

	ctx       context.Context
	stop      context.CancelFunc
	cancel    context.CancelFunc
	gen       int
	inflight  bool
	cursor    string
	exhausted bool
	err       error
}

// New creates an empty Feed over src. Nothing is fetched until LoadMore.
func New[T any](src Source[T], opts Options) *Feed[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Feed[T]{
		src:     src,
		opts:    opts,
		data:    core.NewObservable[[]T](nil),
		loading: core.NewObservable(false),
		ctx:     ctx,
		stop:    stop,
	}
}

// Data is the accumulated collection.
func (f *Feed[T]) Data() *core.Observable[[]T] {
	return f.data
}

// Loading is true while a LoadMore page is in flight.
func (f *Feed[T]) Loading() *core.Observable[bool] {
	return f.loading
}

// Exhausted reports whether the source has no further pages.
func (f *Feed[T]) Exhausted() bool {
	return f.exhausted
}

// Err returns the error of the last completed fetch, or nil.
func (f *Feed[T]) Err() error {
	return f.err
}

// LoadMore fetches the next page. It is a no-op while any fetch is in
// flight, once the source is exhausted, or after Close.
func (f *Feed[T]) LoadMore() {
	if f.inflight || f.exhausted || f.ctx.Err() != nil {
		f.debug("loadMore skipped", "inflight", f.inflight, "exhausted", f.exhausted)
		return
	}
	f.loading.Set(true)
	f.start(f.cursor, false, nil)
}

// Refresh discards the cursor and replaces the collection with the first
// page. A fetch in flight is canceled and its result dropped. done runs
// when the refresh completes, fails, or is superseded.
func (f *Feed[T]) Refresh(done func()) {
	if f.ctx.Err() != nil {
		if done != nil {
			done()
		}
		return
	}
	f.loading.Set(false)
	f.start("", true, done)
}

// Close cancels any fetch in flight. Later LoadMore and Refresh calls do
// nothing.
func (f *Feed[T]) Close() {
	f.stop()
}

func (f *Feed[T]) start(cursor string, replace bool, done func()) {
	if f.cancel != nil {
		f.cancel()
	}
	f.gen++
	gen := f.gen
	ctx, cancel := context.WithCancel(f.ctx)
	f.cancel = cancel
	f.inflight = true
	f.debug("fetch", "cursor", cursor, "replace", replace)

	run := func() {
		page, err := f.fetch(ctx, cursor)
		f.dispatch(func() { f.complete(gen, replace, page, err, done) })
	}
	if f.opts.Dispatch == nil {
		run()
		return
	}
	go run()
}

// fetch calls the source. A panicking source is reported and completes
// the fetch with a *errors.PanicError.
func (f *Feed[T]) fetch(ctx context.Context, cursor string) (page Page[T], err error) {
	defer errors.RecoverWithCallback("feed.fetch", func(r any) {
		page, err = Page[T]{}, &errors.PanicError{Op: "feed.fetch", Value: r}
	})
	return f.src.Fetch(ctx, cursor, f.opts.PageSize)
}

func (f *Feed[T]) dispatch(fn func()) {
	if f.opts.Dispatch == nil {
		fn()
		return
	}
	f.opts.Dispatch(fn)
}

func (f *Feed[T]) complete(gen int, replace bool, page Page[T], err error, done func()) {
	if done != nil {
		defer done()
	}
	if gen != f.gen {
		f.debug("stale page dropped", "gen", gen)
		return
	}
	f.cancel()
	f.cancel = nil
	f.inflight = false
	f.loading.Set(false)

	if err != nil {
		f.err = err
		// Panics were reported when recovered.
		if _, panicked := err.(*errors.PanicError); !panicked && f.ctx.Err() == nil {
			errors.Report(&errors.ListError{
				Op:     "feed.fetch",
				Kind:   errors.KindSource,
				Source: f.opts.Name,
				Err:    err,
			})
		}
		return
	}
	f.err = nil
	f.cursor = page.Next
	f.exhausted = page.Done
	if replace {
		f.data.Set(append([]T(nil), page.Items...))
		return
	}
	f.data.Update(func(current []T) []T {
		next := make([]T, 0, len(current)+len(page.Items))
		next = append(next, current...)
		return append(next, page.Items...)
	})
}

func (f *Feed[T]) debug(msg string, args ...any) {
	if f.opts.Logger != nil {
		f.opts.Logger.Debug(msg, args...)
	}
}
