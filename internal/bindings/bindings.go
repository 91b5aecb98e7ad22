package bindings

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"padnav/internal/input"
)

// ErrNotBindable is returned when binding an input class the table does not
// map (mouse buttons, wheel pulses, raw axes).
var ErrNotBindable = errors.New("input class cannot be bound")

// axisBinding hard-wires one analog axis to a pair of directions
type axisBinding struct {
	axis     input.GamepadAxis
	negative Command
	positive Command
}

var directionalAxes = []axisBinding{
	{input.AxisDPadX, NavigateLeft, NavigateRight},
	{input.AxisDPadY, NavigateDown, NavigateUp},
	{input.AxisLeftStickX, NavigateLeft, NavigateRight},
	{input.AxisLeftStickY, NavigateDown, NavigateUp},
}

// Bindings maps keys and gamepad buttons to commands. It is built once and
// then read every frame; mutate it only between frames.
type Bindings struct {
	keys           map[input.Key]Command
	buttons        map[input.GamepadButton]Command
	axisNavigation bool
}

// Empty returns a table with nothing bound and axis navigation off
func Empty() *Bindings {
	return &Bindings{
		keys:    make(map[input.Key]Command),
		buttons: make(map[input.GamepadButton]Command),
	}
}

// Default returns the standard table: arrows and the d-pad navigate, the
// left stick and d-pad axes navigate, and the south button clicks. Enter
// and Space stay with the toolkit's own activation.
func Default() *Bindings {
	return DefaultWith(Options{})
}

// Options trims the default table
type Options struct {
	DisableNavigation bool
	DisableActivation bool
}

func DefaultWith(opts Options) *Bindings {
	b := Empty()
	if !opts.DisableNavigation {
		b.axisNavigation = true
		b.WithKey(input.KeyUp, NavigateUp).
			WithKey(input.KeyDown, NavigateDown).
			WithKey(input.KeyLeft, NavigateLeft).
			WithKey(input.KeyRight, NavigateRight).
			WithGamepadButton(input.ButtonDPadUp, NavigateUp).
			WithGamepadButton(input.ButtonDPadDown, NavigateDown).
			WithGamepadButton(input.ButtonDPadLeft, NavigateLeft).
			WithGamepadButton(input.ButtonDPadRight, NavigateRight)
	}
	if !opts.DisableActivation {
		b.WithGamepadButton(input.ButtonSouth, Click)
	}
	return b
}

// WithKey binds k, replacing any previous command
func (b *Bindings) WithKey(k input.Key, cmd Command) *Bindings {
	b.keys[k] = cmd
	return b
}

// WithGamepadButton binds btn on every gamepad, replacing any previous command
func (b *Bindings) WithGamepadButton(btn input.GamepadButton, cmd Command) *Bindings {
	b.buttons[btn] = cmd
	return b
}

// WithAxisNavigation toggles the hard-wired stick and d-pad axis directions
func (b *Bindings) WithAxisNavigation(on bool) *Bindings {
	b.axisNavigation = on
	return b
}

// Bind binds a key or gamepad button input
func (b *Bindings) Bind(in input.Input, cmd Command) error {
	if k, ok := in.Key(); ok {
		b.WithKey(k, cmd)
		return nil
	}
	if _, btn, ok := in.GamepadButton(); ok {
		b.WithGamepadButton(btn, cmd)
		return nil
	}
	return fmt.Errorf("bind %s: %w", in, ErrNotBindable)
}

// Unbind removes whatever in is bound to
func (b *Bindings) Unbind(in input.Input) {
	if k, ok := in.Key(); ok {
		delete(b.keys, k)
	}
	if _, btn, ok := in.GamepadButton(); ok {
		delete(b.buttons, btn)
	}
}

// Lookup returns the command bound to in
func (b *Bindings) Lookup(in input.Input) (Command, bool) {
	if k, ok := in.Key(); ok {
		cmd, ok := b.keys[k]
		return cmd, ok
	}
	if _, btn, ok := in.GamepadButton(); ok {
		cmd, ok := b.buttons[btn]
		return cmd, ok
	}
	if pad, axis, ok := in.Axis(); ok && b.axisNavigation {
		for _, ab := range directionalAxes {
			if ab.axis != axis {
				continue
			}
			if in == input.AxisPositive(pad, axis) {
				return ab.positive, true
			}
			return ab.negative, true
		}
	}
	return Command{}, false
}

// ResolvePressed yields a trigger for every pressed input that is bound, in
// stable input order. Unbound inputs are skipped.
func (b *Bindings) ResolvePressed(pressed input.Set) iter.Seq[Trigger] {
	return func(yield func(Trigger) bool) {
		for in := range pressed.All() {
			cmd, ok := b.Lookup(in)
			if !ok {
				continue
			}
			if !yield(Trigger{Command: cmd, Origin: in}) {
				return
			}
		}
	}
}

// Entry is one row of the binding table
type Entry struct {
	Input   string
	Command Command
}

// Entries lists the table for display: keys, then buttons, then the
// hard-wired axes.
func (b *Bindings) Entries() []Entry {
	var out []Entry
	for _, k := range slices.Sorted(maps.Keys(b.keys)) {
		out = append(out, Entry{Input: k.String(), Command: b.keys[k]})
	}
	for _, btn := range slices.Sorted(maps.Keys(b.buttons)) {
		out = append(out, Entry{Input: "Pad*:" + btn.String(), Command: b.buttons[btn]})
	}
	if b.axisNavigation {
		for _, ab := range directionalAxes {
			out = append(out,
				Entry{Input: "Pad*:" + ab.axis.String() + "-", Command: ab.negative},
				Entry{Input: "Pad*:" + ab.axis.String() + "+", Command: ab.positive},
			)
		}
	}
	return out
}
