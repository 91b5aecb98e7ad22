// Package demo is a small menu application built on the navigator. Both
// the terminal and the graphical host run it.
package demo

import (
	"fmt"
	"log/slog"

	"padnav/internal/domain"
	"padnav/internal/input"
	"padnav/internal/nav"
	"padnav/internal/toolkit"
)

// Menu is one screen of the demo
type Menu int

const (
	MenuMain Menu = iota
	MenuCounters
	MenuInputs
	MenuChords
)

// submenus are cycled with PrevMenu and NextMenu
var submenus = []Menu{MenuCounters, MenuInputs, MenuChords}

func (m Menu) String() string {
	switch m {
	case MenuMain:
		return "Main"
	case MenuCounters:
		return "Counters"
	case MenuInputs:
		return "Inputs"
	case MenuChords:
		return "Chords"
	default:
		return fmt.Sprintf("Menu(%d)", int(m))
	}
}

// menuLabel tags the first button of a submenu
type menuLabel Menu

// entryLabel tags the main-menu button that opens a submenu
type entryLabel Menu

const (
	counterCount = 6
	statusRow    = 16
)

// App is the demo state. It is driven one frame at a time through Step.
type App struct {
	tk     *toolkit.Context
	nav    *nav.Navigator
	logger *slog.Logger

	menu     Menu
	counters [counterCount]int
	inputs   map[string]input.Input
	chords   map[string]input.Set
	status   string
	quit     bool
}

func New(tk *toolkit.Context, n *nav.Navigator, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		tk:     tk,
		nav:    n,
		logger: logger,
		inputs: make(map[string]input.Input),
		chords: make(map[string]input.Set),
		status: "Arrows or d-pad to move, Enter or south button to press",
	}
}

// Step runs one frame and returns what to draw
func (a *App) Step(in toolkit.FrameInput) toolkit.Output {
	a.tk.BeginFrame(in)
	a.nav.Prepare()
	a.layout()
	return a.tk.EndFrame()
}

func (a *App) Navigator() *nav.Navigator { return a.nav }
func (a *App) Menu() Menu                 { return a.menu }
func (a *App) Status() string             { return a.status }
func (a *App) Quit() bool                 { return a.quit }

// Counter returns the value of counter i
func (a *App) Counter(i int) int {
	return a.counters[i]
}

// Input returns the input recorded in slot
func (a *App) Input(slot string) (input.Input, bool) {
	in, ok := a.inputs[slot]
	return in, ok
}

// Chord returns the chord recorded in slot
func (a *App) Chord(slot string) (input.Set, bool) {
	c, ok := a.chords[slot]
	return c, ok
}

func (a *App) layout() {
	a.globalActions()

	title := "padnav demo: " + a.menu.String()
	if a.menu != MenuMain {
		title += "  (PgUp/PgDn or triggers switch, Esc or east goes back)"
	}
	a.tk.Label(title, domain.RectXYWH(2, 0, 70, 1))

	switch a.menu {
	case MenuMain:
		a.mainMenu()
	case MenuCounters:
		a.countersMenu()
	case MenuInputs:
		a.inputsMenu()
	case MenuChords:
		a.chordsMenu()
	}

	a.tk.Label(a.status, domain.RectXYWH(2, statusRow, 70, 1))
}

func (a *App) globalActions() {
	if a.menu == MenuMain {
		return
	}
	if act, ok := nav.UserAction[Action](a.nav); ok {
		switch act {
		case ActionPrevMenu:
			a.switchTo(a.cycle(-1))
			return
		case ActionNextMenu:
			a.switchTo(a.cycle(1))
			return
		}
	}
	// back acts on release so the press cannot leak into the main menu
	if act, ok := nav.UserActionReleased[Action](a.nav); ok && act == ActionBack {
		a.switchTo(MenuMain)
	}
}

func (a *App) cycle(step int) Menu {
	for i, m := range submenus {
		if m == a.menu {
			n := len(submenus)
			return submenus[((i+step)%n+n)%n]
		}
	}
	return submenus[0]
}

func (a *App) switchTo(m Menu) {
	from := a.menu
	a.menu = m
	a.nav.ClearInput()
	if m == MenuMain {
		nav.SetFocusLabel(a.nav, entryLabel(from))
	} else {
		nav.SetFocusLabel(a.nav, menuLabel(m))
	}
	a.logger.Debug("demo: menu switched", "from", from, "to", m)
}

func row(i int) domain.Rect {
	return domain.RectXYWH(2, 2+float32(i)*2, 34, 1)
}

func (a *App) mainMenu() {
	for i, m := range submenus {
		nd := a.nav.Node(a.tk.Button("main/"+m.String(), m.String(), row(i))).Navigable()
		nav.FocusLabel(nd, entryLabel(m))
		if i == 0 {
			nd.InitialFocus()
		}
		if nd.Activated().Clicked() {
			a.switchTo(m)
		}
	}
	if a.nav.Node(a.tk.Button("main/quit", "Quit", row(len(submenus)))).Navigable().Activated().Clicked() {
		a.quit = true
	}
}

func (a *App) countersMenu() {
	for i := range a.counters {
		col, line := i%2, i/2
		resp := a.tk.Button(fmt.Sprintf("counter/%d", i), "", domain.RectXYWH(2+float32(col)*20, 2+float32(line)*2, 18, 1))
		nd := a.nav.Node(resp).Navigable()
		if i == 0 {
			nav.FocusLabel(nd, menuLabel(MenuCounters))
		}

		act := nd.Activated()
		switch {
		case act.Clicked():
			a.counters[i]++
		case act.Kind == nav.ActivationClickedSecondary:
			a.counters[i]--
		default:
			if v, ok := nav.UserOf[Action](act); ok && v == ActionDelete {
				a.counters[i]--
			}
		}
		resp.SetText(fmt.Sprintf("Counter %d: %d", i+1, a.counters[i]))
	}
}

type inputSlot struct {
	key   string
	title string
	read  func(*nav.Node) (input.Input, bool)
}

var inputSlots = []inputSlot{
	{"any", "Any input", (*nav.Node).PendingInput},
	{"keyboard", "Keyboard & mouse", func(nd *nav.Node) (input.Input, bool) {
		return nd.PendingInputOfSource(input.KeyboardAndMouse)
	}},
	{"pad0", "Gamepad 0", func(nd *nav.Node) (input.Input, bool) {
		return nd.PendingInputOfSource(input.GamepadSource(0))
	}},
}

func (a *App) inputsMenu() {
	for i, s := range inputSlots {
		resp := a.tk.Button("input/"+s.key, "", row(i))
		nd := a.nav.Node(resp).Navigable()
		if i == 0 {
			nav.FocusLabel(nd, menuLabel(MenuInputs))
		}
		if in, ok := s.read(nd); ok {
			a.inputs[s.key] = in
			a.status = fmt.Sprintf("%s set to %s", s.title, in)
		}

		value := "(unset)"
		if in, ok := a.inputs[s.key]; ok {
			value = in.String()
		}
		resp.SetText(s.title + ": " + a.pendingText(resp.ID(), value))
	}
}

type chordSlot struct {
	key   string
	title string
	read  func(*nav.Node) (input.Set, bool)
}

var chordSlots = []chordSlot{
	{"any", "Any chord", (*nav.Node).PendingChord},
	{"same", "Single device", (*nav.Node).PendingChordSameSource},
	{"keyboard", "Keyboard only", func(nd *nav.Node) (input.Set, bool) {
		return nd.PendingChordOfSource(input.KeyboardAndMouse)
	}},
	{"two", "Up to two", func(nd *nav.Node) (input.Set, bool) {
		return nd.PendingChordVetted(func(received input.Set, _ input.Input) bool {
			return received.Len() < 2
		})
	}},
}

func (a *App) chordsMenu() {
	for i, s := range chordSlots {
		resp := a.tk.Button("chord/"+s.key, "", row(i))
		nd := a.nav.Node(resp).Navigable()
		if i == 0 {
			nav.FocusLabel(nd, menuLabel(MenuChords))
		}
		if set, ok := s.read(nd); ok {
			a.chords[s.key] = set
			a.status = fmt.Sprintf("%s set to %s", s.title, set)
		}

		value := "(unset)"
		if set, ok := a.chords[s.key]; ok {
			value = set.String()
		}
		resp.SetText(s.title + ": " + a.pendingText(resp.ID(), value))
	}
}

func (a *App) pendingText(id domain.NodeID, value string) string {
	if capturing, ok := a.nav.Capturing(); ok && capturing == id {
		return "..."
	}
	return value
}
