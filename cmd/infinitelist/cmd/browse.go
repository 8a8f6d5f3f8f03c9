package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/infinitelist/cmd/infinitelist/internal/config"
	"github.com/go-drift/infinitelist/pkg/feed"
	"github.com/go-drift/infinitelist/pkg/host"
	"github.com/go-drift/infinitelist/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "browse",
		Short: "Scroll through the list in the terminal",
		Long: `Browse the configured source in an interactive terminal list.

Scrolling the last item into view loads the next page. In refreshable
modes, press r at the top of the list (or scroll up past it with the
mouse wheel) to pull to refresh.

Keys:
  ↑/k ↓/j       scroll one line
  pgup/pgdown   scroll one page
  g/G           jump to top/bottom
  r             pull to refresh
  q             quit`,
		Usage: "infinitelist browse [flags]",
		Run:   runBrowse,
	})
}

func runBrowse(args []string) error {
	cfg, logger, rest, err := resolve(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q\n\nUsage: infinitelist browse [flags]", rest[0])
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	m, err := newBrowseModel(cfg, logger, src, ctx.Done())
	if err != nil {
		return err
	}
	defer m.session.close()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Refresh, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Refresh, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// dispatchMsg carries a fetch completion onto the program loop.
type dispatchMsg func()

// dispatcher hands callbacks from fetch goroutines to the program loop.
type dispatcher struct {
	ch   chan func()
	done <-chan struct{}
}

func (d *dispatcher) dispatch(fn func()) {
	select {
	case d.ch <- fn:
	case <-d.done:
	}
}

func (d *dispatcher) wait() tea.Msg {
	select {
	case fn := <-d.ch:
		return dispatchMsg(fn)
	case <-d.done:
		return nil
	}
}

// Reserved lines: the status line and the help line.
const chromeLines = 2

// browseModel is the bubbletea model hosting the list.
type browseModel struct {
	session  *session
	dispatch *dispatcher
	renderer *render.TextRenderer
	help     help.Model
	logger   *slog.Logger
	width    int
	height   int
}

func newBrowseModel(cfg *config.Resolved, logger *slog.Logger, src feed.Source[feed.Item], done <-chan struct{}) (*browseModel, error) {
	d := &dispatcher{ch: make(chan func(), 16), done: done}
	s, err := newSession(cfg, src, logger, d.dispatch, host.Options{
		PullTrigger: 2 * lineExtent,
	})
	if err != nil {
		return nil, err
	}
	s.host.PullChanges().AddListener(func() {
		logger.Debug("pull state changed", "state", s.host.PullState())
	})
	r := render.NewTextRenderer(0)
	r.RowSpacing = 1 / lineExtent
	return &browseModel{
		session:  s,
		dispatch: d,
		renderer: r,
		help:     help.New(),
		logger:   logger,
	}, nil
}

func (m *browseModel) Init() tea.Cmd {
	return m.dispatch.wait
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	h := m.session.host
	switch msg := msg.(type) {
	case dispatchMsg:
		h.Dispatch(msg)
		m.pump()
		return m, m.dispatch.wait
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Width = msg.Width
		m.help.Width = msg.Width
		h.SetViewport(float64(m.listLines()) * lineExtent)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if h.Offset() <= 0 {
				m.pull()
				break
			}
			h.ScrollBy(-lineExtent)
		case tea.MouseButtonWheelDown:
			h.ScrollBy(lineExtent)
		}
	case tea.KeyMsg:
		page := float64(m.listLines()) * lineExtent
		switch {
		case key.Matches(msg, browseKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browseKeys.Up):
			h.ScrollBy(-lineExtent)
		case key.Matches(msg, browseKeys.Down):
			h.ScrollBy(lineExtent)
		case key.Matches(msg, browseKeys.PageUp):
			h.ScrollBy(-page)
		case key.Matches(msg, browseKeys.PageDown):
			h.ScrollBy(page)
		case key.Matches(msg, browseKeys.Top):
			h.ScrollTo(0)
		case key.Matches(msg, browseKeys.Bottom):
			h.ScrollToEnd()
		case key.Matches(msg, browseKeys.Refresh):
			m.pull()
		}
	}
	m.pump()
	return m, nil
}

// pull performs a pull gesture long enough to arm the refresh.
func (m *browseModel) pull() {
	if !m.session.host.Mode().Refreshable() {
		return
	}
	m.session.host.ScrollTo(0)
	if m.session.host.Pull(3 * lineExtent) {
		m.logger.Debug("pull to refresh started")
	}
}

// pump waits for the first window size so the initial load sees the
// real viewport.
func (m *browseModel) pump() {
	const maxPumps = 8
	if m.height == 0 {
		return
	}
	m.session.settle(maxPumps)
}

func (m *browseModel) listLines() int {
	return max(m.height-chromeLines, 1)
}

func (m *browseModel) View() string {
	if m.height == 0 {
		return ""
	}
	body := m.renderer.Render(render.FromHost(m.session.host))
	body = lipgloss.NewStyle().MaxHeight(m.listLines() + 1).Render(body)
	footer := m.help.View(browseKeys)
	if err := m.session.feed.Err(); err != nil {
		footer = m.renderer.Theme.Failed.Render(fmt.Sprintf("fetch failed: %v", err))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceVertical(m.listLines()+1, lipgloss.Top, body),
		footer,
	)
}
