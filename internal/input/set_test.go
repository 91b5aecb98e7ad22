package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddExclusiveEvictsOppositePole(t *testing.T) {
	s := NewSet()
	s.AddExclusive(AxisPositive(0, AxisLeftStickX))
	s.AddExclusive(AxisNegative(0, AxisLeftStickX))

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(AxisNegative(0, AxisLeftStickX)))

	// other pads and other axes are unaffected
	s.AddExclusive(AxisPositive(1, AxisLeftStickX))
	s.AddExclusive(AxisPositive(0, AxisLeftStickY))
	assert.Equal(t, 3, s.Len())

	s.AddExclusive(Wheel(WheelUp))
	s.AddExclusive(Wheel(WheelDown))
	assert.True(t, s.Has(Wheel(WheelDown)))
	assert.False(t, s.Has(Wheel(WheelUp)))
}

func TestSetOperations(t *testing.T) {
	a := NewSet(Keyboard(KeyA), Keyboard(KeyB), Mouse(MouseLeft))
	b := NewSet(Keyboard(KeyB), Button(0, ButtonSouth))

	assert.True(t, NewSet(Keyboard(KeyA)).Equal(a.Minus(b).Minus(NewSet(Mouse(MouseLeft)))))
	assert.True(t, a.Any(b))
	assert.False(t, NewSet(Keyboard(KeyC)).Any(b))

	c := a.Clone()
	c.Intersect(b)
	assert.True(t, NewSet(Keyboard(KeyB)).Equal(c))
	assert.Equal(t, 3, a.Len(), "clone must not alias")

	var nilSet Set
	assert.Equal(t, 0, nilSet.Clone().Len())
}

func TestFormatChordIsStable(t *testing.T) {
	chord := NewSet(Button(0, ButtonSouth), Keyboard(KeyLeftShift), Keyboard(KeyA))

	// keys sort before gamepad inputs, then by code
	assert.Equal(t, "A & LShift & Pad0:South", chord.String())
	assert.Equal(t, chord.String(), FormatChord([]Input{Keyboard(KeyLeftShift), Button(0, ButtonSouth), Keyboard(KeyA)}))
	assert.Equal(t, "", FormatChord(nil))
	assert.Equal(t, "A", FormatChord([]Input{Keyboard(KeyA), Keyboard(KeyA)}))
}

func TestSetSources(t *testing.T) {
	s := NewSet(Keyboard(KeyA), Mouse(MouseLeft), Button(1, ButtonEast), AxisPositive(1, AxisDPadX), Button(0, ButtonSouth))
	assert.Equal(t, []Source{KeyboardAndMouse, GamepadSource(0), GamepadSource(1)}, s.Sources())
}
