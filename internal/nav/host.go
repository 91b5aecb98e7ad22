package nav

import (
	"time"

	"padnav/internal/domain"
	"padnav/internal/input"
)

// Toolkit is the host UI toolkit as seen from the navigator. All calls
// happen on the frame goroutine while the navigator's lock is held, so an
// implementation must not call back into the Navigator.
type Toolkit interface {
	// Now is the frame timestamp, measured from any fixed origin
	Now() time.Duration
	FocusedID() (domain.NodeID, bool)
	RequestFocus(id domain.NodeID)
	// InjectActivation makes the focused widget report a native click this
	// frame, exactly as if the toolkit's own activation key was pressed.
	InjectActivation()
	Device() input.Device
	ShowTooltip(anchor domain.Rect, text string)
	// PointerMoved reports pointer motion since the previous frame
	PointerMoved() bool
}

// Response is one widget as laid out this frame
type Response interface {
	ID() domain.NodeID
	Rect() domain.Rect
	Clicked() bool
	ClickedSecondary() bool
	ClickedMiddle() bool
	HasFocus() bool
	Hovered() bool
	RequestFocus()
	// LockFocus keeps the toolkit from moving focus off the widget on its
	// own (tab, escape) for this frame.
	LockFocus()
}
