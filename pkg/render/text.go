package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-drift/infinitelist/pkg/infinite"
)

const failedLabel = "render failed"

// Theme styles the text renderer.
type Theme struct {
	Item    lipgloss.Style
	Failed  lipgloss.Style
	Loading lipgloss.Style
	Status  lipgloss.Style
}

// DefaultTheme returns the terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Item:    lipgloss.NewStyle(),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Loading: lipgloss.NewStyle().Faint(true).Italic(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// TextRenderer renders a View one row per line.
type TextRenderer struct {
	// Width is the cross-axis extent used by expanding slots.
	Width int
	Theme Theme
	// Status prepends the status line.
	Status bool
	// RowSpacing converts View.Spacing into blank lines. Zero draws
	// rows back to back.
	RowSpacing float64
}

// NewTextRenderer creates a renderer with the default theme.
func NewTextRenderer(width int) *TextRenderer {
	return &TextRenderer{Width: width, Theme: DefaultTheme(), Status: true}
}

// Render returns the rows of v as lines.
func (r *TextRenderer) Render(v View) string {
	var lines []string
	if r.Status {
		lines = append(lines, r.Theme.Status.Render(v.StatusLine()))
	}
	gap := 0
	if r.RowSpacing > 0 {
		gap = int(math.Round(v.Spacing * r.RowSpacing))
	}
	for i, row := range v.Rows {
		if i > 0 {
			for j := 0; j < gap; j++ {
				lines = append(lines, "")
			}
		}
		lines = append(lines, r.row(row))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *TextRenderer) row(row Row) string {
	var text string
	switch {
	case row.Kind == infinite.EntryLoading:
		text = r.Theme.Loading.Render(row.Label)
	case row.Failed:
		text = r.Theme.Failed.Render(failedLabel)
	default:
		text = r.Theme.Item.Render(row.Label)
	}
	if r.Width > 0 {
		text = truncate(text, r.Width)
		if row.Layout.ExpandWidth {
			text = lipgloss.PlaceHorizontal(r.Width, position(row.Layout.Alignment), text)
		}
	}
	return text
}

func position(a infinite.Alignment) lipgloss.Position {
	switch a {
	case infinite.AlignCenter:
		return lipgloss.Center
	case infinite.AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.TrimRight(s, " "))
}
