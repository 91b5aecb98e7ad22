// Package capture records a new binding: a single input or a chord pressed
// over one or more frames while a node is in pending-input mode.
package capture

import (
	"fmt"

	"github.com/google/uuid"

	"padnav/internal/domain"
	"padnav/internal/input"
)

// Capture is the pending-input state of one acceptor node
type Capture struct {
	Session  uuid.UUID
	Acceptor domain.NodeID

	// ignored is nil until the first Tick. It holds inputs that were down
	// when capture started and have not been released since.
	ignored   input.Set
	thisFrame input.Set
	received  input.Set
}

func New(acceptor domain.NodeID) *Capture {
	return &Capture{
		Session:   uuid.New(),
		Acceptor:  acceptor,
		thisFrame: input.Set{},
		received:  input.Set{},
	}
}

// Tick feeds the full set of inputs currently down. The first tick only
// records the baseline to ignore.
func (c *Capture) Tick(current input.Set) {
	if c.ignored == nil {
		c.ignored = current.Clone()
		c.thisFrame = input.Set{}
		return
	}
	c.ignored.Intersect(current)
	c.thisFrame = current.Minus(c.ignored)
}

// Started reports whether the baseline has been taken
func (c *Capture) Started() bool {
	return c.ignored != nil
}

// ThisFrame lists the candidate inputs pressed this frame in stable order
func (c *Capture) ThisFrame() []input.Input {
	return c.thisFrame.Sorted()
}

// Received is the chord accumulated so far. Callers must not mutate it.
func (c *Capture) Received() input.Set {
	return c.received
}

// Accept decides whether a candidate joins the chord. It sees the capture
// as it is at that point, including inputs accepted earlier in the frame.
type Accept func(c *Capture, in input.Input) bool

// Process offers every candidate of this frame to accept. An accepted axis
// pole or wheel direction evicts its opposite. It panics if accept let more
// than limit inputs in; a limit of zero means no limit.
func (c *Capture) Process(accept Accept, limit int) {
	for _, in := range c.ThisFrame() {
		if accept(c, in) {
			c.received.AddExclusive(in)
		}
	}
	if limit > 0 && c.received.Len() > limit {
		panic(fmt.Sprintf("capture: session %s accepted %d inputs (%s), limit is %d",
			c.Session, c.received.Len(), c.received, limit))
	}
}

// Done reports whether the chord is complete: something was received and
// either nothing new is down, or limit inputs were received and none of
// them is still down. A limit of zero means no limit.
func (c *Capture) Done(limit int) bool {
	if c.received.Len() == 0 {
		return false
	}
	if c.thisFrame.Len() == 0 {
		return true
	}
	return limit > 0 && c.received.Len() >= limit && !c.received.Any(c.thisFrame)
}

// Chord formats the accumulated chord for the tooltip
func (c *Capture) Chord() string {
	return c.received.String()
}
