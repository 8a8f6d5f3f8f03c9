package infinite

import (
	"log/slog"

	"github.com/go-drift/infinitelist/pkg/core"
	"github.com/go-drift/infinitelist/pkg/errors"
)

// Config configures a List. Every field except OnRefresh, Capabilities,
// Spacing and Logger is required.
type Config[T comparable, V any] struct {
	// Data is the caller-owned item collection.
	Data core.Binding[[]T]
	// IsLoading is the caller-owned loading flag.
	IsLoading core.Binding[bool]
	// LoadingView is appended as the last entry while IsLoading is true.
	LoadingView V
	// LoadMore is fired on mount and when the last item appears.
	LoadMore func()
	// OnRefresh enables pull-to-refresh. Nil forces ModePlainList.
	OnRefresh RefreshFunc
	// Content maps one item to its renderable. It must be pure.
	Content func(T) V
	// Capabilities describes the host platform.
	Capabilities Capabilities
	// Spacing is the gap between items in the refreshable stacks.
	// Zero means DefaultSpacing.
	Spacing float64
	// Logger receives debug records for trigger firings. Nil is silent.
	Logger *slog.Logger
}

func (c Config[T, V]) validate() error {
	var err error
	switch {
	case c.Data == nil:
		err = errors.ErrNoData
	case c.IsLoading == nil:
		err = errors.ErrNoLoading
	case c.LoadMore == nil:
		err = errors.ErrNoLoadMore
	case c.Content == nil:
		err = errors.ErrNoContent
	case c.Spacing < 0:
		err = errors.ErrUnsupported
	}
	if err != nil {
		return &errors.ListError{Op: "infinite.New", Kind: errors.KindConfig, Err: err}
	}
	return nil
}

// List is the pagination state machine. It holds no data of its own: only
// the mount flag and the live item subscriptions.
type List[T comparable, V any] struct {
	cfg     Config[T, V]
	refresh *RefreshAdapter
	mounted bool
	subs    map[*Subscription[T, V]]struct{}
}

// New validates cfg and creates a List. Configuration errors are returned
// as *errors.ListError with Kind KindConfig.
func New[T comparable, V any](cfg Config[T, V]) (*List[T, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Spacing == 0 {
		cfg.Spacing = DefaultSpacing
	}
	return &List[T, V]{
		cfg:     cfg,
		refresh: newRefreshAdapter(cfg.OnRefresh, cfg.Logger),
		subs:    make(map[*Subscription[T, V]]struct{}),
	}, nil
}

// Mode returns the render mode. It is re-derived on every call.
func (l *List[T, V]) Mode() Mode {
	return SelectMode(l.refresh != nil, l.cfg.Capabilities)
}

// Render reads the bindings once and returns the frame for this pass.
func (l *List[T, V]) Render() Frame[T, V] {
	mode := l.Mode()
	return Frame[T, V]{
		Container:   newContainer(mode, l.cfg.Spacing, l.refresh),
		Items:       l.cfg.Data.Value(),
		Loading:     l.cfg.IsLoading.Value(),
		loadingView: l.cfg.LoadingView,
		content:     l.cfg.Content,
	}
}

// Mount records the first appearance of the root container and fires
// LoadMore. Later calls are no-ops until Unmount, so re-appearances of the
// root never fire again.
func (l *List[T, V]) Mount() {
	if l.mounted {
		return
	}
	l.mounted = true
	l.fire("mount")
}

// Mounted reports whether Mount has run since the last Unmount.
func (l *List[T, V]) Mounted() bool {
	return l.mounted
}

// Unmount cancels every item subscription. A later Mount behaves like the
// first mount of a new instance.
func (l *List[T, V]) Unmount() {
	if !l.mounted {
		return
	}
	l.mounted = false
	for sub := range l.subs {
		sub.detach()
	}
}

// Duplicates returns the items of the current snapshot that violate the
// uniqueness obligation. It is a debugging aid.
func (l *List[T, V]) Duplicates() []T {
	return Duplicates(l.cfg.Data.Value())
}

func (l *List[T, V]) fire(reason string) {
	if l.cfg.Logger != nil {
		l.cfg.Logger.Debug("loadMore", "reason", reason)
	}
	l.cfg.LoadMore()
}
