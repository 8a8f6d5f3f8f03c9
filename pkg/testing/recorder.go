package testing

import (
	"sync"

	"github.com/go-drift/infinitelist/pkg/infinite"
)

// CallKind identifies a recorded trigger.
type CallKind int

const (
	CallLoadMore CallKind = iota
	CallRefresh
)

func (k CallKind) String() string {
	if k == CallRefresh {
		return "onRefresh"
	}
	return "loadMore"
}

// Recorder counts trigger invocations in order. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	calls   []CallKind
	pending []func()
}

// WrapLoadMore returns a trigger that records the call and then runs fn.
// fn may be nil.
func (r *Recorder) WrapLoadMore(fn func()) func() {
	return func() {
		r.record(CallLoadMore, nil)
		if fn != nil {
			fn()
		}
	}
}

// WrapRefresh returns a refresh trigger that records the call, keeps done
// for CompleteRefreshes, and then runs fn. A nil fn stays nil so the list
// keeps its plain mode.
func (r *Recorder) WrapRefresh(fn infinite.RefreshFunc) infinite.RefreshFunc {
	if fn == nil {
		return nil
	}
	return func(done func()) {
		r.record(CallRefresh, done)
		fn(done)
	}
}

func (r *Recorder) record(kind CallKind, done func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, kind)
	if done != nil {
		r.pending = append(r.pending, done)
	}
}

// Calls returns every recorded call in order.
func (r *Recorder) Calls() []CallKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CallKind, len(r.calls))
	copy(out, r.calls)
	return out
}

// LoadMoreCount returns the number of loadMore calls.
func (r *Recorder) LoadMoreCount() int {
	return r.count(CallLoadMore)
}

// RefreshCount returns the number of onRefresh calls.
func (r *Recorder) RefreshCount() int {
	return r.count(CallRefresh)
}

func (r *Recorder) count(kind CallKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, call := range r.calls {
		if call == kind {
			n++
		}
	}
	return n
}

// CompleteRefreshes calls every pending refresh done callback and returns
// how many ran.
func (r *Recorder) CompleteRefreshes() int {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()
	for _, done := range pending {
		done()
	}
	return len(pending)
}

// Reset forgets recorded calls and pending refreshes.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.pending = nil
}
