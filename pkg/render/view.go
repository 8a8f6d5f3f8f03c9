package render

import (
	"fmt"

	"github.com/go-drift/infinitelist/pkg/host"
	"github.com/go-drift/infinitelist/pkg/infinite"
	"github.com/go-drift/infinitelist/pkg/scroll"
)

// Row is one on-screen entry reduced to text.
type Row struct {
	Index  int
	Kind   infinite.EntryKind
	Label  string
	Failed bool
	Layout infinite.SlotLayout
}

// View is the renderer input: the on-screen rows plus container state.
type View struct {
	Mode    infinite.Mode
	Pull    scroll.PullState
	Spacing float64
	Offset  float64
	// Items and Loading describe the whole frame, not just the rows.
	Items   int
	Loading bool
	Rows    []Row
}

// FromHost captures the on-screen entries of h's last Pump. Views are
// formatted with fmt.Sprint.
func FromHost[T comparable, V any](h *host.Host[T, V]) View {
	frame := h.Frame()
	view := View{
		Mode:    frame.Container.Mode,
		Pull:    h.PullState(),
		Spacing: frame.Container.Spacing,
		Offset:  h.Offset(),
		Items:   frame.ItemCount(),
		Loading: frame.Loading,
	}
	for _, entry := range h.OnScreen() {
		view.Rows = append(view.Rows, Row{
			Index:  entry.Index,
			Kind:   entry.Kind,
			Label:  fmt.Sprint(entry.View),
			Failed: entry.Failed,
			Layout: entry.Layout,
		})
	}
	return view
}

// StatusLine describes the pull gesture and frame position.
func (v View) StatusLine() string {
	switch v.Pull {
	case scroll.PullDragging:
		return "pull to refresh"
	case scroll.PullArmed:
		return "release to refresh"
	case scroll.PullRefreshing:
		return "refreshing"
	}
	if v.Loading {
		return fmt.Sprintf("%s · %d items · loading", v.Mode, v.Items)
	}
	return fmt.Sprintf("%s · %d items", v.Mode, v.Items)
}
