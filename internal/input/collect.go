package input

// AxisThreshold is how far an axis must be pushed before a pole counts as
// pressed. The comparison is strict.
const AxisThreshold = 0.5

// Filter selects which device families are read
type Filter struct {
	Keyboard           bool
	MouseButtons       bool
	MouseWheel         bool
	MouseWheelSideways bool
	Gamepads           bool
}

// AllSources enables every device family
var AllSources = Filter{
	Keyboard:           true,
	MouseButtons:       true,
	MouseWheel:         true,
	MouseWheelSideways: true,
	Gamepads:           true,
}

// AxisPole thresholds an axis value into the pole it is pushed toward
func AxisPole(pad GamepadID, axis GamepadAxis, value float32) (Input, bool) {
	switch {
	case AxisThreshold < value:
		return AxisPositive(pad, axis), true
	case value < -AxisThreshold:
		return AxisNegative(pad, axis), true
	}
	return Input{}, false
}

// Pressed gathers every currently pressed input the filter allows.
// Wheel movement counts as a press of the matching direction for the frame
// it happens in.
func Pressed(dev Device, f Filter) Set {
	out := Set{}
	if dev == nil {
		return out
	}
	if f.Keyboard {
		for _, k := range dev.PressedKeys() {
			out.Add(Keyboard(k))
		}
	}
	if f.MouseButtons {
		for _, b := range dev.PressedMouseButtons() {
			out.Add(Mouse(b))
		}
	}
	if f.MouseWheel || f.MouseWheelSideways {
		x, y := dev.WheelDelta()
		if f.MouseWheel {
			switch {
			case y > 0:
				out.Add(Wheel(WheelUp))
			case y < 0:
				out.Add(Wheel(WheelDown))
			}
		}
		if f.MouseWheelSideways {
			switch {
			case x > 0:
				out.Add(Wheel(WheelRight))
			case x < 0:
				out.Add(Wheel(WheelLeft))
			}
		}
	}
	if f.Gamepads {
		for _, pad := range dev.Gamepads() {
			for _, b := range dev.PressedGamepadButtons(pad) {
				out.Add(Button(pad, b))
			}
			for _, axis := range AllAxes {
				v, ok := dev.GamepadAxis(pad, axis)
				if !ok {
					continue
				}
				if in, ok := AxisPole(pad, axis, v); ok {
					out.Add(in)
				}
			}
		}
	}
	return out
}
