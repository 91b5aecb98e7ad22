package nav

import (
	"padnav/internal/eventbus"
	"padnav/internal/hold"
)

// Node wraps one widget for the frame it was laid out in. Calls chain:
//
//	if nav.Node(ui.Button("Start")).InitialFocus().Navigable().Activated().Clicked() {
//		// ...
//	}
type Node struct {
	nav  *Navigator
	resp Response
}

// Node starts the builder chain for resp
func (n *Navigator) Node(resp Response) *Node {
	return &Node{nav: n, resp: resp}
}

// Response returns the wrapped widget
func (nd *Node) Response() Response {
	return nd.resp
}

// Navigable registers the node as a navigation target for this frame and
// applies any focus move decided for it. Clicking a navigable node focuses
// it, and so does hovering it when focus-on-mouse-movement is enabled.
func (nd *Node) Navigable() *Node {
	n := nd.nav
	n.mu.Lock()
	defer n.mu.Unlock()

	r := nd.resp
	id := r.ID()
	n.registry.Register(id, r.Rect())
	if n.pending != nil {
		return nd
	}

	switch {
	case n.frame.hasMove && n.frame.moveTo == id:
		r.RequestFocus()
	case r.HasFocus():
	case r.Clicked() || r.ClickedSecondary() || r.ClickedMiddle():
		r.RequestFocus()
	case n.settings.FocusOnMouseMovement && n.tk.PointerMoved() && r.Hovered():
		r.RequestFocus()
	}
	return nd
}

// InitialFocus focuses this node when the UI first appears, that is on a
// frame following one where no navigable node was drawn.
func (nd *Node) InitialFocus() *Node {
	return FocusLabel(nd, initialFocus{})
}

// Activated reports how the node was activated this frame. Pointer clicks
// and a bound Click on the focused node report Clicked; a user action
// fired while the node has focus reports User.
func (nd *Node) Activated() Activation {
	n := nd.nav
	n.mu.Lock()
	defer n.mu.Unlock()

	a := nd.activatedLocked()
	if a.Any() {
		n.bus.Publish(eventbus.ActivatedEvent{Node: nd.resp.ID(), Activation: a.Kind.String()})
	}
	return a
}

func (nd *Node) activatedLocked() Activation {
	n := nd.nav
	if n.frame.cleared || n.pending != nil {
		return Activation{}
	}

	r := nd.resp
	switch {
	case r.Clicked():
		return Activation{Kind: ActivationClicked}
	case r.ClickedSecondary():
		return Activation{Kind: ActivationClickedSecondary}
	case r.ClickedMiddle():
		return Activation{Kind: ActivationClickedMiddle}
	}
	if n.frame.hasFocus && n.frame.focused == r.ID() && len(n.frame.users) > 0 {
		return Activation{Kind: ActivationUser, payload: n.frame.users[0].Clone()}
	}
	return Activation{}
}

// ActivatedReleased reports an activation that completes on release: a
// bound Click or user action held on this node and released while the node
// kept focus. Pointer clicks, which toolkits already report on release,
// pass through unchanged.
func (nd *Node) ActivatedReleased() Activation {
	n := nd.nav
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.frame.cleared || n.pending != nil {
		return Activation{}
	}

	r := nd.resp
	id := r.ID()
	var a Activation
	if rel, ok := hold.Released(n.hold); ok && rel.Node == id {
		if rel.IsUser {
			a = Activation{Kind: ActivationUser, payload: rel.Payload}
			if rel.Payload != nil {
				a.payload = rel.Payload.Clone()
			}
		} else {
			a = Activation{Kind: ActivationClicked}
		}
	} else if !(n.frame.hasClickTarget && n.frame.clickTarget == id) {
		// the synthetic press of a bound Click reports on release instead
		switch {
		case r.Clicked():
			a = Activation{Kind: ActivationClicked}
		case r.ClickedSecondary():
			a = Activation{Kind: ActivationClickedSecondary}
		case r.ClickedMiddle():
			a = Activation{Kind: ActivationClickedMiddle}
		}
	}

	if a.Any() {
		n.bus.Publish(eventbus.ActivatedEvent{Node: id, Activation: a.Kind.String(), OnRelease: true})
	}
	return a
}
