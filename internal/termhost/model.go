// Package termhost runs the demo app inside a bubbletea program. Terminal
// key and mouse messages are buffered between frames and fed to the app
// once per frame tick.
package termhost

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"padnav/internal/demo"
	"padnav/internal/toolkit"
)

// DefaultFrameInterval is the frame tick period
const DefaultFrameInterval = 16 * time.Millisecond

// frameMsg is sent once per frame tick
type frameMsg time.Time

// pagerClosedMsg is sent when the binding sheet pager exits
type pagerClosedMsg struct {
	err error
}

// Option configures a Model
type Option func(*Model)

// WithFrameInterval sets the frame tick period
func WithFrameInterval(d time.Duration) Option {
	return func(m *Model) { m.interval = d }
}

// WithHoldWindow sets how long a key stays held after its last press event
func WithHoldWindow(d time.Duration) Option {
	return func(m *Model) { m.input.holdWindow = d }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// Model is the bubbletea model hosting the demo app
type Model struct {
	app      *demo.App
	input    *terminal
	keys     keyMap
	help     help.Model
	styles   *Styles
	logger   *slog.Logger
	now      func() time.Time
	start    time.Time
	interval time.Duration
	out      toolkit.Output
	width    int
	height   int
}

// New creates a model driving app
func New(app *demo.App, opts ...Option) *Model {
	m := &Model{
		app:      app,
		input:    newTerminal(DefaultHoldWindow),
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(),
		logger:   slog.Default(),
		now:      time.Now,
		interval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init starts the frame clock
func (m *Model) Init() tea.Cmd {
	m.start = m.now()
	return m.tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Bindings):
			sheet := BindingSheet(m.app.Navigator().Bindings().Entries())
			return m, tea.Exec(&pagerCommand{content: sheet}, func(err error) tea.Msg {
				return pagerClosedMsg{err: err}
			})
		}
		if k, ok := translateKey(msg); ok {
			m.input.keyPressed(k, m.elapsed(m.now()))
		}

	case tea.MouseMsg:
		m.input.mouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Error("binding sheet pager failed", "error", msg.err)
		}

	case frameMsg:
		m.out = m.app.Step(m.input.frame(m.elapsed(time.Time(msg))))
		if m.app.Quit() {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) elapsed(t time.Time) time.Duration {
	if m.start.IsZero() {
		m.start = t
	}
	return t.Sub(m.start)
}

// View renders the last frame's draw list
func (m *Model) View() string {
	return renderFrame(m.out, m.styles) + "\n" + m.styles.Help.Render(m.help.View(m.keys))
}
