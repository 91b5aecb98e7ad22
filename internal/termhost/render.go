package termhost

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"padnav/internal/toolkit"
)

// Styles contains the style definitions for the terminal host
type Styles struct {
	Title   lipgloss.Style
	Button  lipgloss.Style
	Focused lipgloss.Style
	Hovered lipgloss.Style
	Label   lipgloss.Style
	Tooltip lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Button: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")),
		Hovered: lipgloss.NewStyle().Underline(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Tooltip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214")),
		Help: lipgloss.NewStyle().Faint(true),
	}
}

// cell is one piece of text placed at a terminal column
type cell struct {
	x    int
	text string
}

// renderFrame lays the draw list out on a character grid. Widgets are
// placed at their rectangle's top-left cell; tooltips go on the line
// below their anchor.
func renderFrame(out toolkit.Output, s *Styles) string {
	rows := make(map[int][]cell)
	maxRow := -1
	place := func(x, y int, text string) {
		rows[y] = append(rows[y], cell{x: x, text: text})
		maxRow = max(maxRow, y)
	}

	titleDone := false
	for _, w := range out.Widgets {
		x, y := int(w.Rect.Min.X), int(w.Rect.Min.Y)
		switch w.Kind {
		case toolkit.KindLabel:
			if !titleDone {
				titleDone = true
				place(x, y, s.Title.Render(w.Text))
				continue
			}
			place(x, y, s.Label.Render(w.Text))
		default:
			width := max(int(w.Rect.Width()), lipgloss.Width(w.Text)+2)
			style := s.Button.Width(width)
			if w.Focused {
				style = s.Focused.Width(width)
			}
			if w.Hovered {
				style = style.Inherit(s.Hovered)
			}
			place(x, y, style.Render(" "+w.Text))
		}
	}
	for _, tip := range out.Tooltips {
		place(int(tip.Anchor.Min.X)+2, int(tip.Anchor.Max.Y), s.Tooltip.Render(" "+tip.Text+" "))
	}

	var b strings.Builder
	for y := 0; y <= maxRow; y++ {
		cells := rows[y]
		slices.SortStableFunc(cells, func(a, c cell) int { return a.x - c.x })
		col := 0
		for _, c := range cells {
			if c.x > col {
				b.WriteString(strings.Repeat(" ", c.x-col))
				col = c.x
			}
			b.WriteString(c.text)
			col += lipgloss.Width(c.text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
