package padhost

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"padnav/internal/domain"
	"padnav/internal/input"
	"padnav/internal/toolkit"
)

// poller is the slice of ebiten's input API the host reads each tick
type poller interface {
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	MousePressed(b ebiten.MouseButton) bool
	MouseJustReleased(b ebiten.MouseButton) bool
	Cursor() (x, y int)
	Wheel() (x, y float64)
	Gamepads() []ebiten.GamepadID
	StandardLayout(id ebiten.GamepadID) bool
	ButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	ButtonValue(id ebiten.GamepadID, b ebiten.StandardGamepadButton) float64
	AxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64
}

// ebitenPoller reads the live ebiten state
type ebitenPoller struct{}

func (ebitenPoller) KeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenPoller) KeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenPoller) MousePressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenPoller) MouseJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (ebitenPoller) Cursor() (int, int)        { return ebiten.CursorPosition() }
func (ebitenPoller) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenPoller) Gamepads() []ebiten.GamepadID { return ebiten.AppendGamepadIDs(nil) }

func (ebitenPoller) StandardLayout(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (ebitenPoller) ButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (ebitenPoller) ButtonValue(id ebiten.GamepadID, b ebiten.StandardGamepadButton) float64 {
	return ebiten.StandardGamepadButtonValue(id, b)
}

func (ebitenPoller) AxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, a)
}

var keys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:      input.KeyUp,
	ebiten.KeyArrowDown:    input.KeyDown,
	ebiten.KeyArrowLeft:    input.KeyLeft,
	ebiten.KeyArrowRight:   input.KeyRight,
	ebiten.KeyEnter:        input.KeyEnter,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyDelete:       input.KeyDelete,
	ebiten.KeyInsert:       input.KeyInsert,
	ebiten.KeyHome:         input.KeyHome,
	ebiten.KeyEnd:          input.KeyEnd,
	ebiten.KeyPageUp:       input.KeyPageUp,
	ebiten.KeyPageDown:     input.KeyPageDown,
	ebiten.KeyShiftLeft:    input.KeyLeftShift,
	ebiten.KeyShiftRight:   input.KeyRightShift,
	ebiten.KeyControlLeft:  input.KeyLeftControl,
	ebiten.KeyControlRight: input.KeyRightControl,
	ebiten.KeyAltLeft:      input.KeyLeftAlt,
	ebiten.KeyAltRight:     input.KeyRightAlt,
	ebiten.KeyF1:           input.KeyF1,
	ebiten.KeyF2:           input.KeyF2,
	ebiten.KeyF3:           input.KeyF3,
	ebiten.KeyF4:           input.KeyF4,
	ebiten.KeyF5:           input.KeyF5,
	ebiten.KeyF6:           input.KeyF6,
	ebiten.KeyF7:           input.KeyF7,
	ebiten.KeyF8:           input.KeyF8,
	ebiten.KeyF9:           input.KeyF9,
	ebiten.KeyF10:          input.KeyF10,
	ebiten.KeyF11:          input.KeyF11,
	ebiten.KeyF12:          input.KeyF12,
}

func init() {
	for i := range 26 {
		keys[ebiten.KeyA+ebiten.Key(i)] = input.KeyA + input.Key(i)
	}
	for i := range 10 {
		keys[ebiten.KeyDigit0+ebiten.Key(i)] = input.Key0 + input.Key(i)
	}
}

// toolkitKeys are delivered to the toolkit as press events
var toolkitKeys = []ebiten.Key{ebiten.KeyTab, ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeySpace}

var mouseButtons = map[ebiten.MouseButton]input.MouseButton{
	ebiten.MouseButtonLeft:   input.MouseLeft,
	ebiten.MouseButtonRight:  input.MouseRight,
	ebiten.MouseButtonMiddle: input.MouseMiddle,
	ebiten.MouseButton3:      input.MouseBack,
	ebiten.MouseButton4:      input.MouseForward,
}

var padButtons = map[ebiten.StandardGamepadButton]input.GamepadButton{
	ebiten.StandardGamepadButtonRightBottom:      input.ButtonSouth,
	ebiten.StandardGamepadButtonRightRight:       input.ButtonEast,
	ebiten.StandardGamepadButtonRightLeft:        input.ButtonWest,
	ebiten.StandardGamepadButtonRightTop:         input.ButtonNorth,
	ebiten.StandardGamepadButtonFrontTopLeft:     input.ButtonLeftTrigger,
	ebiten.StandardGamepadButtonFrontBottomLeft:  input.ButtonLeftTrigger2,
	ebiten.StandardGamepadButtonFrontTopRight:    input.ButtonRightTrigger,
	ebiten.StandardGamepadButtonFrontBottomRight: input.ButtonRightTrigger2,
	ebiten.StandardGamepadButtonCenterLeft:       input.ButtonSelect,
	ebiten.StandardGamepadButtonCenterRight:      input.ButtonStart,
	ebiten.StandardGamepadButtonCenterCenter:     input.ButtonMode,
	ebiten.StandardGamepadButtonLeftStick:        input.ButtonLeftThumb,
	ebiten.StandardGamepadButtonRightStick:       input.ButtonRightThumb,
	ebiten.StandardGamepadButtonLeftTop:          input.ButtonDPadUp,
	ebiten.StandardGamepadButtonLeftBottom:       input.ButtonDPadDown,
	ebiten.StandardGamepadButtonLeftLeft:         input.ButtonDPadLeft,
	ebiten.StandardGamepadButtonLeftRight:        input.ButtonDPadRight,
}

// snapshot freezes the polled device state. Pads without the standard
// layout are skipped. Stick Y is flipped so that up is positive.
func snapshot(p poller) *input.Snapshot {
	snap := &input.Snapshot{}
	for ek, k := range keys {
		if p.KeyPressed(ek) {
			snap.Keys = append(snap.Keys, k)
		}
	}
	slices.Sort(snap.Keys)
	for eb, b := range mouseButtons {
		if p.MousePressed(eb) {
			snap.MouseButtons = append(snap.MouseButtons, b)
		}
	}
	slices.Sort(snap.MouseButtons)
	wx, wy := p.Wheel()
	snap.WheelX, snap.WheelY = float32(wx), float32(wy)

	for _, id := range p.Gamepads() {
		if !p.StandardLayout(id) {
			continue
		}
		pad := input.PadState{
			ID: input.GamepadID(id),
			Axes: map[input.GamepadAxis]float32{
				input.AxisLeftStickX:  float32(p.AxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)),
				input.AxisLeftStickY:  -float32(p.AxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)),
				input.AxisRightStickX: float32(p.AxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)),
				input.AxisRightStickY: -float32(p.AxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)),
				input.AxisLeftZ:       float32(p.ButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)),
				input.AxisRightZ:      float32(p.ButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)),
			},
		}
		for eb, b := range padButtons {
			if p.ButtonPressed(id, eb) {
				pad.Buttons = append(pad.Buttons, b)
			}
		}
		slices.Sort(pad.Buttons)
		snap.Pads = append(snap.Pads, pad)
	}
	return snap
}

// cell size of ebiten's debug font, used to map widget cells to pixels
const (
	cellW = 6
	cellH = 16
)

// pointer tracks the cursor between ticks to report movement
type pointer struct {
	pos  domain.Pos
	seen bool
}

// frameInput builds the toolkit's input for one tick
func (ptr *pointer) frameInput(p poller, now time.Duration) toolkit.FrameInput {
	in := toolkit.FrameInput{Now: now, Device: snapshot(p)}

	x, y := p.Cursor()
	pos := domain.Pos{X: float32(x) / cellW, Y: float32(y) / cellH}
	in.Pointer, in.HasPointer = pos, true
	in.PointerMoved = !ptr.seen || pos != ptr.pos
	ptr.pos, ptr.seen = pos, true

	for _, ek := range toolkitKeys {
		if p.KeyJustPressed(ek) {
			in.Keys = append(in.Keys, keys[ek])
		}
	}
	for _, eb := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if p.MouseJustReleased(eb) {
			in.Clicks = append(in.Clicks, mouseButtons[eb])
		}
	}
	return in
}
