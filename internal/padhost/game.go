// Package padhost runs the demo app in an ebiten window so it can be driven
// with real gamepads.
package padhost

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"padnav/internal/demo"
	"padnav/internal/toolkit"
)

// Screen size in character cells
const (
	Cols = 80
	Rows = 24
)

var (
	background   = color.RGBA{0x1c, 0x1c, 0x1c, 0xff}
	buttonFill   = color.RGBA{0x3a, 0x3a, 0x3a, 0xff}
	focusedFill  = color.RGBA{0x87, 0x5f, 0xff, 0xff}
	hoverOutline = color.RGBA{0xd0, 0xd0, 0xd0, 0xff}
	tooltipFill  = color.RGBA{0xff, 0xaf, 0x00, 0xff}
)

// Game implements ebiten.Game around a demo app
type Game struct {
	app    *demo.App
	poll   poller
	ptr    pointer
	now    func() time.Time
	start  time.Time
	out    toolkit.Output
	logger *slog.Logger
}

// New creates a game driving app
func New(app *demo.App, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		app:    app,
		poll:   ebitenPoller{},
		now:    time.Now,
		logger: logger,
	}
}

// Update runs one frame of the app
func (g *Game) Update() error {
	now := g.now()
	if g.start.IsZero() {
		g.start = now
	}
	g.out = g.app.Step(g.ptr.frameInput(g.poll, now.Sub(g.start)))
	if g.app.Quit() {
		g.logger.Info("padhost: quit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw paints the last frame's draw list
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, w := range g.out.Widgets {
		x, y := w.Rect.Min.X*cellW, w.Rect.Min.Y*cellH
		if w.Kind == toolkit.KindButton {
			fill := buttonFill
			if w.Focused {
				fill = focusedFill
			}
			vector.DrawFilledRect(screen, x, y, w.Rect.Width()*cellW, w.Rect.Height()*cellH, fill, false)
			if w.Hovered {
				vector.StrokeRect(screen, x, y, w.Rect.Width()*cellW, w.Rect.Height()*cellH, 1, hoverOutline, false)
			}
			x += cellW
		}
		ebitenutil.DebugPrintAt(screen, w.Text, int(x), int(y))
	}
	for _, tip := range g.out.Tooltips {
		x, y := (tip.Anchor.Min.X+2)*cellW, tip.Anchor.Max.Y*cellH
		vector.DrawFilledRect(screen, x, y, float32(len(tip.Text)+2)*cellW, cellH, tooltipFill, false)
		ebitenutil.DebugPrintAt(screen, tip.Text, int(x)+cellW, int(y))
	}
}

// Layout fixes the logical screen to the cell grid
func (g *Game) Layout(_, _ int) (int, int) {
	return Cols * cellW, Rows * cellH
}

// Run opens the window and blocks until it closes
func Run(app *demo.App, logger *slog.Logger) error {
	ebiten.SetWindowSize(Cols*cellW*2, Rows*cellH*2)
	ebiten.SetWindowTitle("padnav demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(New(app, logger))
}
