package input

import "slices"

// Device exposes the raw pressed-state of every physical input the host
// knows about. Hosts implement it over their windowing or terminal layer.
type Device interface {
	PressedKeys() []Key
	PressedMouseButtons() []MouseButton
	// WheelDelta is the scroll accumulated this frame. Positive Y scrolls up,
	// positive X scrolls right.
	WheelDelta() (x, y float32)
	Gamepads() []GamepadID
	PressedGamepadButtons(pad GamepadID) []GamepadButton
	// GamepadAxis returns false when the pad does not report the axis
	GamepadAxis(pad GamepadID, axis GamepadAxis) (float32, bool)
}

// PadState is the polled state of one gamepad
type PadState struct {
	ID      GamepadID
	Buttons []GamepadButton
	Axes    map[GamepadAxis]float32
}

// Snapshot is a Device frozen at one instant. Hosts fill one per frame;
// tests build them directly.
type Snapshot struct {
	Keys         []Key
	MouseButtons []MouseButton
	WheelX       float32
	WheelY       float32
	Pads         []PadState
}

func (s *Snapshot) PressedKeys() []Key {
	return s.Keys
}

func (s *Snapshot) PressedMouseButtons() []MouseButton {
	return s.MouseButtons
}

func (s *Snapshot) WheelDelta() (float32, float32) {
	return s.WheelX, s.WheelY
}

func (s *Snapshot) Gamepads() []GamepadID {
	ids := make([]GamepadID, len(s.Pads))
	for i, p := range s.Pads {
		ids[i] = p.ID
	}
	return ids
}

func (s *Snapshot) pad(id GamepadID) *PadState {
	for i := range s.Pads {
		if s.Pads[i].ID == id {
			return &s.Pads[i]
		}
	}
	return nil
}

func (s *Snapshot) PressedGamepadButtons(id GamepadID) []GamepadButton {
	if p := s.pad(id); p != nil {
		return p.Buttons
	}
	return nil
}

func (s *Snapshot) GamepadAxis(id GamepadID, axis GamepadAxis) (float32, bool) {
	p := s.pad(id)
	if p == nil {
		return 0, false
	}
	v, ok := p.Axes[axis]
	return v, ok
}

// SetPad replaces or adds the state of one pad
func (s *Snapshot) SetPad(state PadState) {
	if p := s.pad(state.ID); p != nil {
		*p = state
		return
	}
	s.Pads = append(s.Pads, state)
}

// PressKey adds k if it is not already held
func (s *Snapshot) PressKey(k Key) {
	if !slices.Contains(s.Keys, k) {
		s.Keys = append(s.Keys, k)
	}
}

// ReleaseKey removes k
func (s *Snapshot) ReleaseKey(k Key) {
	s.Keys = slices.DeleteFunc(s.Keys, func(held Key) bool { return held == k })
}
