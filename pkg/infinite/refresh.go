package infinite

import "log/slog"

// RefreshFunc is invoked when a pull-to-refresh gesture completes. The
// gesture collaborator passes done and keeps its busy indicator up until
// done is called. The list never calls done itself.
type RefreshFunc func(done func())

// RefreshAdapter binds a host pull gesture to the caller's OnRefresh.
type RefreshAdapter struct {
	onRefresh RefreshFunc
	logger    *slog.Logger
}

func newRefreshAdapter(fn RefreshFunc, logger *slog.Logger) *RefreshAdapter {
	if fn == nil {
		return nil
	}
	return &RefreshAdapter{onRefresh: fn, logger: logger}
}

// Trigger invokes OnRefresh once. Call it exactly once per completed gesture.
// A nil done is replaced with a no-op.
func (a *RefreshAdapter) Trigger(done func()) {
	if a == nil {
		return
	}
	if done == nil {
		done = func() {}
	}
	if a.logger != nil {
		a.logger.Debug("onRefresh")
	}
	a.onRefresh(done)
}
