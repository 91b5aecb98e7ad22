package termhost

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"padnav/internal/domain"
	"padnav/internal/input"
	"padnav/internal/toolkit"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// event. Terminals report presses and auto-repeats but never releases, and
// auto-repeat usually starts 250-500ms after the press, so the window has to
// bridge that gap. It must stay below secs_after_first_input or a single tap
// repeats.
const DefaultHoldWindow = 500 * time.Millisecond

// terminal accumulates terminal events between frames and turns them into
// the held-state snapshot the navigator polls.
type terminal struct {
	holdWindow time.Duration

	lastPress map[input.Key]time.Duration
	events    []input.Key

	buttons     map[input.MouseButton]bool
	lastPressed input.MouseButton
	clicks      []input.MouseButton
	wheelX      float32
	wheelY      float32

	pointer    domain.Pos
	hasPointer bool
	moved      bool
}

func newTerminal(holdWindow time.Duration) *terminal {
	return &terminal{
		holdWindow: holdWindow,
		lastPress:  make(map[input.Key]time.Duration),
		buttons:    make(map[input.MouseButton]bool),
	}
}

func (t *terminal) keyPressed(k input.Key, now time.Duration) {
	t.lastPress[k] = now
	if toolkitEvent(k) {
		t.events = append(t.events, k)
	}
}

var mouseButtons = map[tea.MouseButton]input.MouseButton{
	tea.MouseButtonLeft:     input.MouseLeft,
	tea.MouseButtonRight:    input.MouseRight,
	tea.MouseButtonMiddle:   input.MouseMiddle,
	tea.MouseButtonBackward: input.MouseBack,
	tea.MouseButtonForward:  input.MouseForward,
}

func (t *terminal) mouse(msg tea.MouseMsg) {
	p := domain.Pos{X: float32(msg.X), Y: float32(msg.Y)}
	if !t.hasPointer || p != t.pointer {
		t.moved = true
	}
	t.pointer, t.hasPointer = p, true

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		t.wheelY++
		return
	case tea.MouseButtonWheelDown:
		t.wheelY--
		return
	case tea.MouseButtonWheelLeft:
		t.wheelX--
		return
	case tea.MouseButtonWheelRight:
		t.wheelX++
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if b, ok := mouseButtons[msg.Button]; ok {
			t.buttons[b] = true
			t.lastPressed = b
		}
	case tea.MouseActionRelease:
		b, ok := mouseButtons[msg.Button]
		if !ok {
			// some terminals do not say which button was released
			b = t.lastPressed
		}
		if t.buttons[b] {
			delete(t.buttons, b)
			t.clicks = append(t.clicks, b)
		}
	}
}

// frame drains the events gathered since the previous frame
func (t *terminal) frame(now time.Duration) toolkit.FrameInput {
	snap := &input.Snapshot{WheelX: t.wheelX, WheelY: t.wheelY}
	for k, at := range t.lastPress {
		if now-at > t.holdWindow {
			delete(t.lastPress, k)
			continue
		}
		snap.Keys = append(snap.Keys, k)
	}
	slices.Sort(snap.Keys)
	for b := range t.buttons {
		snap.MouseButtons = append(snap.MouseButtons, b)
	}
	slices.Sort(snap.MouseButtons)

	in := toolkit.FrameInput{
		Now:          now,
		Device:       snap,
		Pointer:      t.pointer,
		HasPointer:   t.hasPointer,
		PointerMoved: t.moved,
		Clicks:       t.clicks,
		Keys:         t.events,
	}
	t.events = nil
	t.clicks = nil
	t.wheelX, t.wheelY = 0, 0
	t.moved = false
	return in
}
