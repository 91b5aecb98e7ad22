package termhost

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"padnav/internal/bindings"
)

// BindingSheet renders the binding table for the pager
func BindingSheet(entries []bindings.Entry) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Input))
	}

	var sheet strings.Builder
	sheet.WriteString(titleStyle.Render("padnav bindings"))
	sheet.WriteString("\n")

	sections := []struct {
		name  string
		match func(bindings.Command) bool
	}{
		{"Navigation", func(c bindings.Command) bool { _, ok := c.Direction(); return ok }},
		{"Activation", func(c bindings.Command) bool { return c.Kind == bindings.CommandClick }},
		{"User actions", func(c bindings.Command) bool { return c.Kind == bindings.CommandUser }},
	}
	for _, sec := range sections {
		var lines []string
		for _, e := range entries {
			if sec.match(e.Command) {
				lines = append(lines, fmt.Sprintf("  %s  %s",
					keyStyle.Render(fmt.Sprintf("%-*s", width, e.Input)),
					descStyle.Render(e.Command.String())))
			}
		}
		if len(lines) == 0 {
			continue
		}
		sheet.WriteString(sectionStyle.Render(sec.name))
		sheet.WriteString("\n")
		sheet.WriteString(strings.Join(lines, "\n"))
		sheet.WriteString("\n")
	}

	sheet.WriteString("\n")
	sheet.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Enter and Space activate through the toolkit and are not rebound."))
	sheet.WriteString("\n")
	return sheet.String()
}

// ShowInPager pages content with ov. It takes over the terminal until the
// user quits the pager.
func ShowInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// keep ov from writing the page back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCommand runs the pager from inside a bubbletea program via tea.Exec
type pagerCommand struct {
	content string
}

func (p *pagerCommand) Run() error {
	return ShowInPager(p.content)
}

func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}
