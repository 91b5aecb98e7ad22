// Package hold derives "held" and "released" activation pulses from the
// per-frame activation triggers.
package hold

import (
	"fmt"

	"padnav/internal/bindings"
	"padnav/internal/domain"
)

// State is one of Idle, NodeHeld, NodeHoldReleased, GloballyHeld,
// GlobalHoldReleased or Invalidated.
type State interface {
	isState()
	fmt.Stringer
}

type Idle struct{}

// NodeHeld is a click or user action pressed while Node had focus
type NodeHeld struct {
	Node    domain.NodeID
	Trigger bindings.TriggerID
	IsUser  bool
	Payload bindings.Payload
}

// NodeHoldReleased lasts one frame: the hold on Node ended with focus intact
type NodeHoldReleased struct {
	Node    domain.NodeID
	IsUser  bool
	Payload bindings.Payload
}

// GloballyHeld is a user action pressed with nothing focused
type GloballyHeld struct {
	Trigger bindings.TriggerID
	Payload bindings.Payload
}

// GlobalHoldReleased lasts one frame
type GlobalHoldReleased struct {
	Payload bindings.Payload
}

// Invalidated swallows activations until Cooldown frames passed and every
// activation trigger is released.
type Invalidated struct {
	Cooldown int
}

func (Idle) isState()               {}
func (NodeHeld) isState()           {}
func (NodeHoldReleased) isState()   {}
func (GloballyHeld) isState()       {}
func (GlobalHoldReleased) isState() {}
func (Invalidated) isState()        {}

func (Idle) String() string { return "Idle" }

func (s NodeHeld) String() string {
	return fmt.Sprintf("NodeHeld(%s, %s)", s.Node, s.Trigger)
}

func (s NodeHoldReleased) String() string {
	return fmt.Sprintf("NodeHoldReleased(%s)", s.Node)
}

func (s GloballyHeld) String() string {
	return fmt.Sprintf("GloballyHeld(%s)", s.Trigger)
}

func (GlobalHoldReleased) String() string { return "GlobalHoldReleased" }

func (s Invalidated) String() string {
	return fmt.Sprintf("Invalidated(%d)", s.Cooldown)
}

// Activation is a click or user trigger seen this frame
type Activation struct {
	Trigger bindings.TriggerID
	Payload bindings.Payload
}

func (a Activation) IsUser() bool {
	return a.Trigger.Kind == bindings.CommandUser
}

// Frame is everything Step needs to know about the current frame
type Frame struct {
	// Fired holds the activations that are effective this frame
	Fired []Activation
	// Held is the raw (unthrottled) set of triggers down this frame
	Held     map[bindings.TriggerID]struct{}
	Focused  domain.NodeID
	HasFocus bool
}

func (f Frame) held(id bindings.TriggerID) bool {
	_, ok := f.Held[id]
	return ok
}

// heldActivation reports whether any click or user trigger is down.
// With user set it only looks at user triggers, with click set only at
// the click trigger.
func (f Frame) heldActivation(click, user bool) bool {
	for id := range f.Held {
		switch id.Kind {
		case bindings.CommandClick:
			if click {
				return true
			}
		case bindings.CommandUser:
			if user {
				return true
			}
		}
	}
	return false
}

// Step advances the machine by one frame
func Step(s State, f Frame) State {
	switch s := s.(type) {
	case NodeHeld:
		if !f.HasFocus || f.Focused != s.Node {
			// focus moved mid-hold, so the release must never fire
			return Invalidated{}
		}
		if f.heldActivation(s.IsUser, !s.IsUser) {
			return Invalidated{}
		}
		if !f.held(s.Trigger) {
			return NodeHoldReleased{Node: s.Node, IsUser: s.IsUser, Payload: s.Payload}
		}
		return s

	case GloballyHeld:
		if !f.held(s.Trigger) {
			return GlobalHoldReleased{Payload: s.Payload}
		}
		return s

	case Invalidated:
		if s.Cooldown > 0 {
			return Invalidated{Cooldown: s.Cooldown - 1}
		}
		if f.heldActivation(true, true) {
			return s
		}
		return Idle{}

	default:
		// Idle, and the one-frame released pulses
		return fromIdle(f)
	}
}

func fromIdle(f Frame) State {
	var click, user *Activation
	for i := range f.Fired {
		a := &f.Fired[i]
		if a.IsUser() {
			if user == nil {
				user = a
			}
		} else if a.Trigger.Kind == bindings.CommandClick && click == nil {
			click = a
		}
	}

	switch {
	case click != nil && user != nil:
		if f.HasFocus {
			return Invalidated{}
		}
		return GloballyHeld{Trigger: user.Trigger, Payload: user.Payload}
	case click != nil:
		if f.HasFocus {
			return NodeHeld{Node: f.Focused, Trigger: click.Trigger}
		}
	case user != nil:
		if f.HasFocus {
			return NodeHeld{Node: f.Focused, Trigger: user.Trigger, IsUser: true, Payload: user.Payload}
		}
		return GloballyHeld{Trigger: user.Trigger, Payload: user.Payload}
	}
	return Idle{}
}

// Released reports the node and payload of a release pulse on a node
func Released(s State) (NodeHoldReleased, bool) {
	r, ok := s.(NodeHoldReleased)
	return r, ok
}

// UserReleased returns the payload of any user-action release pulse, node
// scoped or global.
func UserReleased(s State) (bindings.Payload, bool) {
	switch s := s.(type) {
	case GlobalHoldReleased:
		return s.Payload, true
	case NodeHoldReleased:
		if s.IsUser {
			return s.Payload, true
		}
	}
	return nil, false
}
