package termhost

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padnav/internal/domain"
	"padnav/internal/toolkit"
)

func TestRenderFramePlacesWidgets(t *testing.T) {
	out := toolkit.Output{
		Widgets: []toolkit.Widget{
			{Kind: toolkit.KindLabel, Text: "title", Rect: domain.RectXYWH(2, 0, 20, 1)},
			{Kind: toolkit.KindButton, Text: "left", Rect: domain.RectXYWH(2, 2, 10, 1), Focused: true},
			{Kind: toolkit.KindButton, Text: "right", Rect: domain.RectXYWH(20, 2, 10, 1)},
		},
		Tooltips: []toolkit.Tooltip{
			{Anchor: domain.RectXYWH(2, 2, 10, 1), Text: "press an input"},
		},
	}

	lines := strings.Split(ansi.Strip(renderFrame(out, NewStyles())), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "  title", lines[0])
	assert.Empty(t, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "   left"))
	assert.Equal(t, 20, strings.Index(lines[2], " right"))
	assert.Equal(t, "     press an input ", lines[3])
}

func TestRenderEmptyFrame(t *testing.T) {
	assert.Empty(t, renderFrame(toolkit.Output{}, NewStyles()))
}
