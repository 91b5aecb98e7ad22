package nav

import (
	"time"

	"padnav/internal/bindings"
)

// PrepareHandle lets a Prepare callback inject commands for this frame and
// adjust its repeat timing. Injected commands go through the same edge and
// repeat timing as bound inputs.
type PrepareHandle struct {
	FirstDelay     time.Duration
	RepeatInterval time.Duration
	triggers       []bindings.Trigger
}

func (h *PrepareHandle) NavigateUp()    { h.Command(bindings.NavigateUp) }
func (h *PrepareHandle) NavigateDown()  { h.Command(bindings.NavigateDown) }
func (h *PrepareHandle) NavigateLeft()  { h.Command(bindings.NavigateLeft) }
func (h *PrepareHandle) NavigateRight() { h.Command(bindings.NavigateRight) }

// ActivateFocused clicks the focused node
func (h *PrepareHandle) ActivateFocused() { h.Command(bindings.Click) }

// Command injects cmd. All injected user commands share one trigger, so
// only the first of them counts in a frame.
func (h *PrepareHandle) Command(cmd bindings.Command) {
	h.triggers = append(h.triggers, bindings.Trigger{Command: cmd})
}
