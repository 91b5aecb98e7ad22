package nav

import (
	"padnav/internal/bindings"
	"padnav/internal/capture"
	"padnav/internal/eventbus"
	"padnav/internal/hold"
	"padnav/internal/input"
)

const pendingPrompt = "press an input"

// PendingInput turns the node into a binding recorder. Clicking it starts
// capture; the first input pressed afterwards is returned once released.
func (nd *Node) PendingInput() (input.Input, bool) {
	return nd.pendingSingle(capture.Single)
}

// PendingInputOfSource is PendingInput restricted to inputs from src
func (nd *Node) PendingInputOfSource(src input.Source) (input.Input, bool) {
	return nd.pendingSingle(capture.SingleOfSource(src))
}

// PendingChord records every input held together, returning the chord once
// all of them are released.
func (nd *Node) PendingChord() (input.Set, bool) {
	return nd.pendingChord(capture.Chord, 0)
}

// PendingChordOfSource records a chord made only of inputs from src
func (nd *Node) PendingChordOfSource(src input.Source) (input.Set, bool) {
	return nd.pendingChord(capture.OfSource(src), 0)
}

// PendingChordSameSource records a chord whose inputs all come from the
// device of its first input.
func (nd *Node) PendingChordSameSource() (input.Set, bool) {
	return nd.pendingChord(capture.SameSource, 0)
}

// PendingChordVetted records a chord of the inputs pred accepts given the
// chord accumulated so far.
func (nd *Node) PendingChordVetted(pred func(received input.Set, in input.Input) bool) (input.Set, bool) {
	return nd.pendingChord(capture.Vetted(pred), 0)
}

func (nd *Node) pendingSingle(accept capture.Accept) (input.Input, bool) {
	set, ok := nd.pendingChord(accept, 1)
	if !ok {
		return input.Input{}, false
	}
	for in := range set {
		return in, true
	}
	return input.Input{}, false
}

func (nd *Node) pendingChord(accept capture.Accept, limit int) (input.Set, bool) {
	n := nd.nav
	n.mu.Lock()
	defer n.mu.Unlock()

	r := nd.resp
	id := r.ID()

	if n.pending == nil {
		if nd.activatedLocked().Clicked() {
			n.startCapture(nd)
		}
		return nil, false
	}
	c := n.pending
	if c.Acceptor != id {
		return nil, false
	}

	n.acceptorSeen = true
	r.LockFocus()
	if !c.Started() {
		n.tk.ShowTooltip(r.Rect(), pendingPrompt)
		return nil, false
	}

	c.Process(accept, limit)
	if !c.Done(limit) {
		text := pendingPrompt
		if c.Received().Len() > 0 {
			text = c.Chord()
		}
		n.tk.ShowTooltip(r.Rect(), text)
		return nil, false
	}

	chord := c.Received().Clone()
	n.finishCapture(chord)
	return chord, true
}

func (n *Navigator) startCapture(nd *Node) {
	r := nd.resp
	c := capture.New(r.ID())
	n.pending = c
	n.acceptorSeen = true
	n.hold = hold.Invalidated{}
	r.RequestFocus()
	r.LockFocus()
	n.tk.ShowTooltip(r.Rect(), pendingPrompt)

	n.logger.Debug("nav: capture started", "session", c.Session, "node", c.Acceptor)
	n.bus.Publish(eventbus.CaptureStartedEvent{Session: c.Session.String(), Node: c.Acceptor})
}

func (n *Navigator) finishCapture(chord input.Set) {
	c := n.pending
	n.pending = nil
	n.repeater.SuppressHeld()
	n.hold = hold.Invalidated{Cooldown: n.settings.InvalidationCooldownFrames}

	n.logger.Debug("nav: capture finished", "session", c.Session, "node", c.Acceptor, "chord", chord)
	n.bus.Publish(eventbus.CaptureFinishedEvent{Session: c.Session.String(), Node: c.Acceptor, Chord: chord.String()})
}

func (n *Navigator) abandonCapture(reason string) {
	c := n.pending
	n.pending = nil
	n.acceptorSeen = false
	n.repeater.SuppressHeld()
	n.hold = hold.Invalidated{Cooldown: n.settings.InvalidationCooldownFrames}

	n.logger.Debug("nav: capture abandoned", "session", c.Session, "node", c.Acceptor, "reason", reason)
	n.bus.Publish(eventbus.CaptureAbandonedEvent{Session: c.Session.String(), Node: c.Acceptor, Reason: reason})
}

// preparePending runs the capture part of Prepare. It reports whether the
// frame belongs to the capture, in which case normal navigation is skipped.
func (n *Navigator) preparePending(raw map[bindings.TriggerID]struct{}, h *PrepareHandle) bool {
	c := n.pending
	switch {
	case !n.acceptorSeen:
		n.abandonCapture("acceptor not drawn")
		return false
	case n.frame.hasFocus && n.frame.focused != c.Acceptor:
		n.abandonCapture("focus moved")
		return false
	}

	n.acceptorSeen = false
	c.Tick(input.Pressed(n.tk.Device(), n.settings.CaptureFilter()))
	// keep edge detection current so nothing held now fires when capture ends
	n.repeater.Tick(raw, h.FirstDelay, h.RepeatInterval, n.tk.Now())
	return true
}
