package input

import "fmt"

// Key is a physical keyboard key
type Key uint16

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
)

var keyNames = map[Key]string{
	KeyUnknown:      "Unknown",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyEnter:        "Enter",
	KeySpace:        "Space",
	KeyEscape:       "Escape",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyLeftShift:    "LShift",
	KeyRightShift:   "RShift",
	KeyLeftControl:  "LCtrl",
	KeyRightControl: "RCtrl",
	KeyLeftAlt:      "LAlt",
	KeyRightAlt:     "RAlt",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// KeyFromRune maps a printable ASCII letter or digit onto its key.
// Letters are case-insensitive.
func KeyFromRune(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0'), true
	case r == ' ':
		return KeySpace, true
	}
	return KeyUnknown, false
}

// MouseButton is a physical mouse button
type MouseButton uint16

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseBack:
		return "Back"
	case MouseForward:
		return "Forward"
	default:
		return fmt.Sprintf("Button%d", uint16(b))
	}
}

// WheelDirection is one pulse direction of the mouse wheel
type WheelDirection uint16

const (
	WheelUp WheelDirection = iota
	WheelDown
	WheelLeft
	WheelRight
)

func (d WheelDirection) String() string {
	switch d {
	case WheelUp:
		return "Up"
	case WheelDown:
		return "Down"
	case WheelLeft:
		return "Left"
	case WheelRight:
		return "Right"
	default:
		return fmt.Sprintf("Wheel(%d)", uint16(d))
	}
}

// GamepadID identifies a connected gamepad
type GamepadID int

// GamepadButton uses the standard (south/east/north/west) layout
type GamepadButton uint16

const (
	ButtonSouth GamepadButton = iota
	ButtonEast
	ButtonNorth
	ButtonWest
	ButtonLeftTrigger
	ButtonLeftTrigger2
	ButtonRightTrigger
	ButtonRightTrigger2
	ButtonSelect
	ButtonStart
	ButtonMode
	ButtonLeftThumb
	ButtonRightThumb
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	buttonCount
)

var buttonNames = [buttonCount]string{
	ButtonSouth:         "South",
	ButtonEast:          "East",
	ButtonNorth:         "North",
	ButtonWest:          "West",
	ButtonLeftTrigger:   "LeftTrigger",
	ButtonLeftTrigger2:  "LeftTrigger2",
	ButtonRightTrigger:  "RightTrigger",
	ButtonRightTrigger2: "RightTrigger2",
	ButtonSelect:        "Select",
	ButtonStart:         "Start",
	ButtonMode:          "Mode",
	ButtonLeftThumb:     "LeftThumb",
	ButtonRightThumb:    "RightThumb",
	ButtonDPadUp:        "DPadUp",
	ButtonDPadDown:      "DPadDown",
	ButtonDPadLeft:      "DPadLeft",
	ButtonDPadRight:     "DPadRight",
}

func (b GamepadButton) String() string {
	if b < buttonCount {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint16(b))
}

// GamepadAxis is an analog axis. Positive Y points up.
type GamepadAxis uint16

const (
	AxisLeftStickX GamepadAxis = iota
	AxisLeftStickY
	AxisLeftZ
	AxisRightStickX
	AxisRightStickY
	AxisRightZ
	AxisDPadX
	AxisDPadY
	axisCount
)

// AllAxes lists every axis polled during capture
var AllAxes = [...]GamepadAxis{
	AxisLeftStickX,
	AxisLeftStickY,
	AxisLeftZ,
	AxisRightStickX,
	AxisRightStickY,
	AxisRightZ,
	AxisDPadX,
	AxisDPadY,
}

var axisNames = [axisCount]string{
	AxisLeftStickX:  "LeftStickX",
	AxisLeftStickY:  "LeftStickY",
	AxisLeftZ:       "LeftZ",
	AxisRightStickX: "RightStickX",
	AxisRightStickY: "RightStickY",
	AxisRightZ:      "RightZ",
	AxisDPadX:       "DPadX",
	AxisDPadY:       "DPadY",
}

func (a GamepadAxis) String() string {
	if a < axisCount {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", uint16(a))
}
