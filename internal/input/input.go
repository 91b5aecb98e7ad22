package input

import "fmt"

// Kind tags which physical class an Input belongs to
type Kind uint8

const (
	KindInvalid Kind = iota
	KindKey
	KindMouseButton
	KindMouseWheel
	KindGamepadAxisPositive
	KindGamepadAxisNegative
	KindGamepadButton
)

// Input is one raw physical input. It is a comparable value: equality and
// map hashing are structural, so it can be used directly as a set member.
type Input struct {
	Kind Kind
	// Code holds a Key, MouseButton, WheelDirection, GamepadAxis or
	// GamepadButton depending on Kind.
	Code    uint16
	Gamepad GamepadID
}

func Keyboard(k Key) Input {
	return Input{Kind: KindKey, Code: uint16(k)}
}

func Mouse(b MouseButton) Input {
	return Input{Kind: KindMouseButton, Code: uint16(b)}
}

func Wheel(d WheelDirection) Input {
	return Input{Kind: KindMouseWheel, Code: uint16(d)}
}

func AxisPositive(pad GamepadID, axis GamepadAxis) Input {
	return Input{Kind: KindGamepadAxisPositive, Code: uint16(axis), Gamepad: pad}
}

func AxisNegative(pad GamepadID, axis GamepadAxis) Input {
	return Input{Kind: KindGamepadAxisNegative, Code: uint16(axis), Gamepad: pad}
}

func Button(pad GamepadID, b GamepadButton) Input {
	return Input{Kind: KindGamepadButton, Code: uint16(b), Gamepad: pad}
}

// Key returns the keyboard key if the input is one
func (in Input) Key() (Key, bool) {
	return Key(in.Code), in.Kind == KindKey
}

// MouseButton returns the mouse button if the input is one
func (in Input) MouseButton() (MouseButton, bool) {
	return MouseButton(in.Code), in.Kind == KindMouseButton
}

// WheelDirection returns the wheel direction if the input is a wheel pulse
func (in Input) WheelDirection() (WheelDirection, bool) {
	return WheelDirection(in.Code), in.Kind == KindMouseWheel
}

// GamepadButton returns the pad and button if the input is a gamepad button
func (in Input) GamepadButton() (GamepadID, GamepadButton, bool) {
	return in.Gamepad, GamepadButton(in.Code), in.Kind == KindGamepadButton
}

// Axis returns the pad and axis for either axis pole
func (in Input) Axis() (GamepadID, GamepadAxis, bool) {
	isAxis := in.Kind == KindGamepadAxisPositive || in.Kind == KindGamepadAxisNegative
	return in.Gamepad, GamepadAxis(in.Code), isAxis
}

// Source reports which device family the input comes from
func (in Input) Source() Source {
	switch in.Kind {
	case KindGamepadAxisPositive, KindGamepadAxisNegative, KindGamepadButton:
		return GamepadSource(in.Gamepad)
	default:
		return KeyboardAndMouse
	}
}

// Opposite returns the input that is mutually exclusive with this one: the
// other pole of the same axis, or the reverse wheel direction.
func (in Input) Opposite() (Input, bool) {
	switch in.Kind {
	case KindGamepadAxisPositive:
		return Input{Kind: KindGamepadAxisNegative, Code: in.Code, Gamepad: in.Gamepad}, true
	case KindGamepadAxisNegative:
		return Input{Kind: KindGamepadAxisPositive, Code: in.Code, Gamepad: in.Gamepad}, true
	case KindMouseWheel:
		switch WheelDirection(in.Code) {
		case WheelUp:
			return Wheel(WheelDown), true
		case WheelDown:
			return Wheel(WheelUp), true
		case WheelLeft:
			return Wheel(WheelRight), true
		case WheelRight:
			return Wheel(WheelLeft), true
		}
	}
	return Input{}, false
}

func (in Input) String() string {
	switch in.Kind {
	case KindKey:
		return Key(in.Code).String()
	case KindMouseButton:
		return "Mouse" + MouseButton(in.Code).String()
	case KindMouseWheel:
		return "Wheel" + WheelDirection(in.Code).String()
	case KindGamepadAxisPositive:
		return fmt.Sprintf("Pad%d:%s+", in.Gamepad, GamepadAxis(in.Code))
	case KindGamepadAxisNegative:
		return fmt.Sprintf("Pad%d:%s-", in.Gamepad, GamepadAxis(in.Code))
	case KindGamepadButton:
		return fmt.Sprintf("Pad%d:%s", in.Gamepad, GamepadButton(in.Code))
	default:
		return "Invalid"
	}
}

// Source is the physical device family an input originates from:
// keyboard-and-mouse, or one specific gamepad.
type Source struct {
	gamepad   GamepadID
	isGamepad bool
}

// KeyboardAndMouse is the source of keys, mouse buttons and wheel pulses
var KeyboardAndMouse = Source{}

func GamepadSource(id GamepadID) Source {
	return Source{gamepad: id, isGamepad: true}
}

// Gamepad returns the gamepad id when the source is a gamepad
func (s Source) Gamepad() (GamepadID, bool) {
	return s.gamepad, s.isGamepad
}

func (s Source) String() string {
	if s.isGamepad {
		return fmt.Sprintf("Gamepad %d", s.gamepad)
	}
	return "Keyboard & Mouse"
}
