// Package nav is the keyboard and gamepad navigation layer for an
// immediate-mode UI. The host calls Prepare once per frame before building
// the UI; the UI-building code then wraps each widget in a Node and queries
// it while laying it out.
package nav

import (
	"fmt"
	"log/slog"
	"sync"

	"padnav/internal/bindings"
	"padnav/internal/capture"
	"padnav/internal/config"
	"padnav/internal/domain"
	"padnav/internal/eventbus"
	"padnav/internal/hold"
	"padnav/internal/input"
	"padnav/internal/registry"
	"padnav/internal/resolve"
	"padnav/internal/timing"
)

// frameState is what Prepare decided for the current frame
type frameState struct {
	focused  domain.NodeID
	hasFocus bool

	moveTo  domain.NodeID
	hasMove bool

	// clickTarget got a synthetic activation from a bound Click
	clickTarget    domain.NodeID
	hasClickTarget bool

	users   []bindings.Payload
	cleared bool
}

// Navigator is the navigation state of one UI root. Every method takes the
// navigator's lock, so the UI pass may query it from any goroutine, but
// calls must not be reentrant.
type Navigator struct {
	mu sync.Mutex

	tk             Toolkit
	settings       config.Settings
	bindings       *bindings.Bindings
	customBindings bool
	buildBindings  func(*config.Settings) *bindings.Bindings

	registry *registry.Registry
	repeater *timing.Repeater[bindings.TriggerID]
	hold     hold.State
	labels   labels
	frame    frameState

	pending      *capture.Capture
	acceptorSeen bool

	lastFocused    domain.NodeID
	hasLastFocused bool

	logger *slog.Logger
	bus    eventbus.EventBus
}

// Option configures a Navigator
type Option func(*Navigator)

// WithSettings replaces the default settings
func WithSettings(s *config.Settings) Option {
	return func(n *Navigator) {
		if s != nil {
			n.settings = *s
		}
	}
}

// WithBindings replaces the default binding table. The navigator keeps the
// table across ApplySettings calls.
func WithBindings(b *bindings.Bindings) Option {
	return func(n *Navigator) {
		n.bindings = b
		n.customBindings = b != nil
	}
}

// WithBindingsFunc builds the binding table from the settings, at creation
// and again on every ApplySettings, so tables layered on bindings.DefaultWith
// follow the disable switches.
func WithBindingsFunc(build func(*config.Settings) *bindings.Bindings) Option {
	return func(n *Navigator) {
		n.buildBindings = build
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithEventBus publishes navigation events on bus
func WithEventBus(bus eventbus.EventBus) Option {
	return func(n *Navigator) {
		if bus != nil {
			n.bus = bus
		}
	}
}

// New creates the navigator for the UI root served by tk
func New(tk Toolkit, opts ...Option) *Navigator {
	n := &Navigator{
		tk:       tk,
		settings: *config.DefaultSettings(),
		registry: registry.New(),
		repeater: timing.NewRepeater[bindings.TriggerID](),
		hold:     hold.Idle{},
		logger:   slog.Default(),
		bus:      eventbus.NullBus{},
	}
	for _, opt := range opts {
		opt(n)
	}
	switch {
	case n.buildBindings != nil:
		n.bindings = n.buildBindings(&n.settings)
	case n.bindings == nil:
		n.bindings = defaultBindings(&n.settings)
	}
	return n
}

func defaultBindings(s *config.Settings) *bindings.Bindings {
	return bindings.DefaultWith(bindings.Options{
		DisableNavigation: s.DisableDefaultNavigation,
		DisableActivation: s.DisableDefaultActivation,
	})
}

// ApplySettings swaps the settings between frames. Bindings from
// WithBindingsFunc or the defaults are rebuilt to follow the disable
// switches; a fixed table from WithBindings is left alone.
func (n *Navigator) ApplySettings(s *config.Settings) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.settings = *s
	switch {
	case n.buildBindings != nil:
		n.bindings = n.buildBindings(&n.settings)
	case !n.customBindings:
		n.bindings = defaultBindings(&n.settings)
	}
	n.logger.Info("nav: settings applied",
		"first_delay", n.settings.FirstDelay(),
		"repeat_interval", n.settings.RepeatInterval())
}

// Settings returns a copy of the active settings
func (n *Navigator) Settings() config.Settings {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.settings
}

// Bindings returns the binding table. Mutate it only between frames.
func (n *Navigator) Bindings() *bindings.Bindings {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.bindings
}

// Capturing reports the node currently recording a binding
func (n *Navigator) Capturing() (domain.NodeID, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pending == nil {
		return 0, false
	}
	return n.pending.Acceptor, true
}

// HoldState exposes the hold/release machine for diagnostics
func (n *Navigator) HoldState() hold.State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hold
}

// Prepare runs the per-frame update. It must complete before any Node
// query of the same frame. extra callbacks may inject commands and adjust
// the repeat timing for this frame.
func (n *Navigator) Prepare(extra ...func(*PrepareHandle)) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.registry.BeginFrame()
	focused, hasFocus := n.tk.FocusedID()
	n.frame = frameState{focused: focused, hasFocus: hasFocus}

	handle := &PrepareHandle{
		FirstDelay:     n.settings.FirstDelay(),
		RepeatInterval: n.settings.RepeatInterval(),
	}
	for _, fn := range extra {
		fn(handle)
	}
	triggers, raw := n.collectTriggers(handle)

	if n.pending != nil && n.preparePending(raw, handle) {
		return
	}

	n.labels.rotate(n.registry.IsEmpty())
	effective := n.repeater.Tick(raw, handle.FirstDelay, handle.RepeatInterval, n.tk.Now())

	var (
		fired []hold.Activation
		dirs  [4]bool
	)
	for _, trig := range triggers {
		id := trig.ID()
		if _, ok := effective[id]; !ok {
			continue
		}
		switch trig.Command.Kind {
		case bindings.CommandClick:
			fired = append(fired, hold.Activation{Trigger: id})
			if hasFocus {
				n.frame.clickTarget, n.frame.hasClickTarget = focused, true
				n.tk.InjectActivation()
			}
		case bindings.CommandUser:
			p := trig.Command.Payload()
			var held bindings.Payload
			if p != nil {
				held = p.Clone()
			}
			fired = append(fired, hold.Activation{Trigger: id, Payload: held})
			n.frame.users = append(n.frame.users, p)
			n.bus.Publish(eventbus.UserActionEvent{Focused: focused, HasFocus: hasFocus, Payload: describe(p)})
		default:
			if d, ok := trig.Command.Direction(); ok {
				dirs[d] = true
			}
		}
	}

	n.navigate(dirs)
	n.recoverFocus()

	prev := n.hold
	n.hold = hold.Step(n.hold, hold.Frame{
		Fired:    fired,
		Held:     raw,
		Focused:  focused,
		HasFocus: hasFocus,
	})
	if prev.String() != n.hold.String() {
		n.logger.Debug("nav: hold state", "from", prev, "to", n.hold)
	}
}

// collectTriggers reads bound inputs plus manual commands, one trigger per
// TriggerID, in a stable order.
func (n *Navigator) collectTriggers(h *PrepareHandle) ([]bindings.Trigger, map[bindings.TriggerID]struct{}) {
	raw := make(map[bindings.TriggerID]struct{})
	var out []bindings.Trigger
	add := func(t bindings.Trigger) {
		id := t.ID()
		if _, dup := raw[id]; dup {
			return
		}
		raw[id] = struct{}{}
		out = append(out, t)
	}

	pressed := input.Pressed(n.tk.Device(), n.settings.NavigationFilter())
	for t := range n.bindings.ResolvePressed(pressed) {
		add(t)
	}
	for _, t := range h.triggers {
		add(t)
	}
	return out, raw
}

// navigate resolves at most one vertical and one horizontal move. Opposite
// directions cancel out, and a horizontal move wins over a vertical one.
func (n *Navigator) navigate(dirs [4]bool) {
	move := func(d domain.Direction) {
		target, ok := resolve.Resolve(d, n.registry.All(), n.frame.focused, n.frame.hasFocus)
		if !ok {
			return
		}
		n.frame.moveTo, n.frame.hasMove = target, true
		n.logger.Debug("nav: focus move",
			"from", n.frame.focused,
			"had_focus", n.frame.hasFocus,
			"to", target,
			"direction", d)
		n.bus.Publish(eventbus.FocusMovedEvent{
			From:      n.frame.focused,
			HadFocus:  n.frame.hasFocus,
			To:        target,
			Direction: d,
		})
	}

	up, down := dirs[domain.DirectionUp], dirs[domain.DirectionDown]
	if up != down {
		if up {
			move(domain.DirectionUp)
		} else {
			move(domain.DirectionDown)
		}
	}
	left, right := dirs[domain.DirectionLeft], dirs[domain.DirectionRight]
	if left != right {
		if left {
			move(domain.DirectionLeft)
		} else {
			move(domain.DirectionRight)
		}
	}
}

func (n *Navigator) recoverFocus() {
	if n.frame.hasFocus {
		n.lastFocused, n.hasLastFocused = n.frame.focused, true
		return
	}
	if !n.settings.PreventLossOfFocus || !n.hasLastFocused || n.frame.hasMove {
		return
	}
	if n.registry.Has(n.lastFocused) {
		n.logger.Debug("nav: restoring lost focus", "node", n.lastFocused)
		n.frame.moveTo, n.frame.hasMove = n.lastFocused, true
	}
}

// ClearInput must be called right after application code switched UI
// state from inside an activation handler. The inputs currently held stop
// counting until they are released, and every query returns nothing for
// the rest of the frame.
func (n *Navigator) ClearInput() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.repeater.SuppressHeld()
	n.hold = hold.Invalidated{Cooldown: n.settings.InvalidationCooldownFrames}
	n.frame.cleared = true
	n.frame.users = nil
	n.frame.hasClickTarget = false

	n.logger.Debug("nav: input cleared")
	n.bus.Publish(eventbus.InputClearedEvent{})
}

// UserAction returns the payload of a user action fired this frame, if one
// of type T fired.
func UserAction[T any](n *Navigator) (T, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var zero T
	if n.frame.cleared {
		return zero, false
	}
	for _, p := range n.frame.users {
		if v, ok := bindings.Downcast[T](p); ok {
			return v, true
		}
	}
	return zero, false
}

// UserActionReleased returns the payload of a user action of type T whose
// input was released this frame, whether it was held on a node or with
// nothing focused.
func UserActionReleased[T any](n *Navigator) (T, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var zero T
	if n.frame.cleared {
		return zero, false
	}
	p, ok := hold.UserReleased(n.hold)
	if !ok {
		return zero, false
	}
	return bindings.Downcast[T](p)
}

func describe(p bindings.Payload) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%v", p.Any())
}
