package nav_test

import (
	"testing"
	"time"

	"padnav/internal/domain"
	"padnav/internal/eventbus"
	"padnav/internal/input"
	"padnav/internal/nav"
	"padnav/internal/toolkit"
)

const frameDT = 16 * time.Millisecond

// harness drives the navigator through whole frames of the toolkit
type harness struct {
	t   *testing.T
	tk  *toolkit.Context
	nav *nav.Navigator
	dev *input.Snapshot
	now time.Duration

	names map[domain.NodeID]string
}

func newHarness(t *testing.T, opts ...nav.Option) *harness {
	t.Helper()
	tk := toolkit.New()
	return &harness{
		t:   t,
		tk:  tk,
		nav: nav.New(tk, opts...),
		dev: &input.Snapshot{},

		names: make(map[domain.NodeID]string),
	}
}

// frame runs one frame dt after the previous one
func (h *harness) frame(dt time.Duration, in toolkit.FrameInput, ui func()) toolkit.Output {
	h.now += dt
	in.Now = h.now
	in.Device = h.dev
	h.tk.BeginFrame(in)
	h.nav.Prepare()
	if ui != nil {
		ui()
	}
	return h.tk.EndFrame()
}

func (h *harness) step(ui func()) toolkit.Output {
	return h.frame(frameDT, toolkit.FrameInput{}, ui)
}

func rowRect(y float32) domain.Rect {
	return domain.RectXYWH(0, y*2, 10, 1)
}

// button lays out a navigable button named key on row y
func (h *harness) button(key string, y float32) *nav.Node {
	h.names[toolkit.ID(key)] = key
	return h.nav.Node(h.tk.Button(key, key, rowRect(y))).Navigable()
}

func (h *harness) focused() string {
	id, ok := h.tk.FocusedID()
	if !ok {
		return ""
	}
	return h.names[id]
}

// clickAt is the frame input of a primary click on row y
func clickAt(y float32) toolkit.FrameInput {
	r := rowRect(y)
	return toolkit.FrameInput{
		Pointer:    domain.Pos{X: r.Min.X + 1, Y: r.Min.Y + 0.5},
		HasPointer: true,
		Clicks:     []input.MouseButton{input.MouseLeft},
	}
}

func pressSouth(dev *input.Snapshot, down bool) {
	var buttons []input.GamepadButton
	if down {
		buttons = []input.GamepadButton{input.ButtonSouth}
	}
	dev.SetPad(input.PadState{ID: 0, Buttons: buttons})
}

// recordingBus keeps published events in order, synchronously
type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) ofType(et eventbus.EventType) []eventbus.DomainEvent {
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == et {
			out = append(out, e)
		}
	}
	return out
}
