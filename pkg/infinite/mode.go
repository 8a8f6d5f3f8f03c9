package infinite

// Mode is the rendering strategy chosen for a render pass.
type Mode int

const (
	// ModePlainList is a virtualized list without a pull gesture.
	ModePlainList Mode = iota
	// ModeRefreshableLazy wraps a lazily instantiated stack in a
	// pull-to-refresh scroll container.
	ModeRefreshableLazy
	// ModeRefreshableEager wraps an eagerly instantiated stack in a
	// pull-to-refresh scroll container.
	ModeRefreshableEager
)

func (m Mode) String() string {
	switch m {
	case ModePlainList:
		return "plain-list"
	case ModeRefreshableLazy:
		return "refreshable-lazy"
	case ModeRefreshableEager:
		return "refreshable-eager"
	default:
		return "unknown"
	}
}

// Refreshable reports whether the mode exposes a pull gesture.
func (m Mode) Refreshable() bool {
	return m == ModeRefreshableLazy || m == ModeRefreshableEager
}

// Virtualized reports whether the container only instantiates entries
// near the viewport.
func (m Mode) Virtualized() bool {
	return m != ModeRefreshableEager
}

// Capabilities describes what the host platform can render.
type Capabilities struct {
	// LazyStack is true when the host can lazily instantiate the children
	// of a vertical stack inside a scroll container.
	LazyStack bool
}

// SelectMode picks the render mode. It is pure and always returns a valid mode.
func SelectMode(refreshConfigured bool, caps Capabilities) Mode {
	switch {
	case !refreshConfigured:
		return ModePlainList
	case caps.LazyStack:
		return ModeRefreshableLazy
	default:
		return ModeRefreshableEager
	}
}

// DefaultSpacing is the inter-item spacing of the refreshable stacks.
const DefaultSpacing = 8.0

// Container is the per-render container variant. Only the payload that
// belongs to Mode is set: plain lists carry neither spacing nor a refresh
// adapter.
type Container struct {
	Mode Mode
	// Spacing is the fixed gap between stacked items (refreshable modes).
	Spacing float64
	// Refresh connects the host's pull gesture to OnRefresh (refreshable modes).
	Refresh *RefreshAdapter
}

func newContainer(mode Mode, spacing float64, refresh *RefreshAdapter) Container {
	if !mode.Refreshable() {
		return Container{Mode: mode}
	}
	return Container{Mode: mode, Spacing: spacing, Refresh: refresh}
}
