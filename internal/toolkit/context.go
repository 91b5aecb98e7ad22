// Package toolkit is a small immediate-mode widget layer. Each frame the
// host calls BeginFrame, the UI code lays out widgets, and EndFrame hands
// back what to draw. Focus, native keyboard activation, pointer clicks and
// tooltips live here; directional navigation does not.
package toolkit

import (
	"hash/fnv"
	"time"

	"padnav/internal/domain"
	"padnav/internal/input"
)

// FrameInput is everything the host observed since the previous frame
type FrameInput struct {
	Now    time.Duration
	Device input.Device

	Pointer      domain.Pos
	HasPointer   bool
	PointerMoved bool
	// Clicks are pointer buttons released this frame at Pointer
	Clicks []input.MouseButton

	// Keys are key-press events (not held state) for the toolkit's own
	// keyboard handling: Tab, Escape, Enter and Space.
	Keys []input.Key
}

// WidgetKind tells the renderer how to draw a widget
type WidgetKind uint8

const (
	KindButton WidgetKind = iota
	KindLabel
)

// Widget is one entry of the draw list
type Widget struct {
	ID      domain.NodeID
	Kind    WidgetKind
	Text    string
	Rect    domain.Rect
	Focused bool
	Hovered bool
}

// Tooltip is a transient popup anchored to a widget
type Tooltip struct {
	Anchor domain.Rect
	Text   string
}

// Output is the result of a frame
type Output struct {
	Widgets  []Widget
	Tooltips []Tooltip
}

// Context holds toolkit state that survives between frames
type Context struct {
	frame FrameInput

	focused  domain.NodeID
	hasFocus bool

	// lock is the widget that asked to keep focus during the previous frame
	lock     domain.NodeID
	hasLock  bool
	lockNext domain.NodeID
	lockSet  bool

	activateFocused bool

	order    []domain.NodeID
	prevDraw []domain.NodeID
	widgets  []*Response
	tooltips []Tooltip
}

func New() *Context {
	return &Context{}
}

// ID derives a widget id from a stable string
func ID(key string) domain.NodeID {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return domain.NodeID(h.Sum64())
}

// BeginFrame starts a frame. Native keyboard handling happens here, before
// any widget is laid out: Tab moves focus to the next button drawn last
// frame, Escape drops focus, and Enter or Space activates the focused one.
// A widget holding the focus lock is immune to Tab and Escape.
func (c *Context) BeginFrame(in FrameInput) {
	if in.Device == nil {
		in.Device = &input.Snapshot{}
	}
	c.frame = in
	c.activateFocused = false
	c.widgets = c.widgets[:0]
	c.tooltips = nil
	c.order = c.order[:0]

	c.lock, c.hasLock = c.lockNext, c.lockSet
	c.lockNext, c.lockSet = 0, false
	locked := c.hasLock && c.hasFocus && c.lock == c.focused

	for _, k := range in.Keys {
		switch k {
		case input.KeyTab:
			if !locked {
				c.focusNext()
			}
		case input.KeyEscape:
			if !locked {
				c.hasFocus = false
			}
		case input.KeyEnter, input.KeySpace:
			if c.hasFocus {
				c.activateFocused = true
			}
		}
	}
}

func (c *Context) focusNext() {
	if len(c.prevDraw) == 0 {
		return
	}
	next := 0
	if c.hasFocus {
		for i, id := range c.prevDraw {
			if id == c.focused {
				next = (i + 1) % len(c.prevDraw)
				break
			}
		}
	}
	c.focused, c.hasFocus = c.prevDraw[next], true
}

// EndFrame closes the frame. Focus on a widget that was not drawn this
// frame is dropped.
func (c *Context) EndFrame() Output {
	c.prevDraw = append(c.prevDraw[:0], c.order...)

	if c.hasFocus {
		drawn := false
		for _, id := range c.order {
			if id == c.focused {
				drawn = true
				break
			}
		}
		if !drawn {
			c.hasFocus = false
		}
	}

	out := Output{Tooltips: c.tooltips}
	for _, r := range c.widgets {
		out.Widgets = append(out.Widgets, Widget{
			ID:      r.id,
			Kind:    r.kind,
			Text:    r.text,
			Rect:    r.rect,
			Focused: c.hasFocus && c.focused == r.id,
			Hovered: r.Hovered(),
		})
	}
	return out
}

// Button lays out a clickable widget whose id derives from key
func (c *Context) Button(key, text string, rect domain.Rect) *Response {
	r := &Response{ctx: c, id: ID(key), kind: KindButton, text: text, rect: rect}
	c.widgets = append(c.widgets, r)
	c.order = append(c.order, r.id)
	return r
}

// Label lays out static text. Labels never take focus.
func (c *Context) Label(text string, rect domain.Rect) {
	c.widgets = append(c.widgets, &Response{ctx: c, kind: KindLabel, text: text, rect: rect})
}

// Now implements nav.Toolkit
func (c *Context) Now() time.Duration {
	return c.frame.Now
}

// FocusedID implements nav.Toolkit
func (c *Context) FocusedID() (domain.NodeID, bool) {
	return c.focused, c.hasFocus
}

// RequestFocus implements nav.Toolkit
func (c *Context) RequestFocus(id domain.NodeID) {
	c.focused, c.hasFocus = id, true
}

// InjectActivation implements nav.Toolkit
func (c *Context) InjectActivation() {
	if c.hasFocus {
		c.activateFocused = true
	}
}

// Device implements nav.Toolkit
func (c *Context) Device() input.Device {
	return c.frame.Device
}

// ShowTooltip implements nav.Toolkit
func (c *Context) ShowTooltip(anchor domain.Rect, text string) {
	c.tooltips = append(c.tooltips, Tooltip{Anchor: anchor, Text: text})
}

// PointerMoved implements nav.Toolkit
func (c *Context) PointerMoved() bool {
	return c.frame.PointerMoved
}

func (c *Context) clickedWith(b input.MouseButton, rect domain.Rect) bool {
	if !c.frame.HasPointer || !rect.Contains(c.frame.Pointer) {
		return false
	}
	for _, click := range c.frame.Clicks {
		if click == b {
			return true
		}
	}
	return false
}
