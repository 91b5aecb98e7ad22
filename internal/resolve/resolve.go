// Package resolve picks the next focus target for a directional command.
//
// Every direction is mapped onto the "move downward" case by a coordinate
// transform. Down is the identity and Up negates both axes. Left and Right
// transpose the axes (with negation for Left) instead of rotating them, so
// that with nothing focused Left starts like Up and Right starts like Down.
package resolve

import (
	"iter"

	"padnav/internal/domain"
)

func transformPos(d domain.Direction, p domain.Pos) domain.Pos {
	switch d {
	case domain.DirectionUp:
		return domain.Pos{X: -p.X, Y: -p.Y}
	case domain.DirectionLeft:
		return domain.Pos{X: -p.Y, Y: -p.X}
	case domain.DirectionRight:
		return domain.Pos{X: p.Y, Y: p.X}
	default:
		return p
	}
}

// Downward maps r into the canonical downward frame for d. The result is
// normalized so Min <= Max on both axes.
func Downward(d domain.Direction, r domain.Rect) domain.Rect {
	a := transformPos(d, r.Min)
	b := transformPos(d, r.Max)
	if b.X < a.X {
		a.X, b.X = b.X, a.X
	}
	if b.Y < a.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return domain.Rect{Min: a, Max: b}
}

// candidate measures one node relative to the focused node, in the
// downward frame.
type candidate struct {
	id     domain.NodeID
	minY   float32
	maxY   float32
	xDrift float32
}

// less is the two-tier ranking: when the two candidates' vertical spans are
// disjoint only horizontal drift counts, otherwise distance plus drift.
func less(a, b candidate) bool {
	if a.maxY < b.minY && b.maxY < a.minY {
		return a.xDrift < b.xDrift
	}
	return a.minY+a.xDrift < b.minY+b.xDrift
}

// xDrift is zero when the spans overlap horizontally, otherwise the gap
// between them.
func xDrift(focused, r domain.Rect) float32 {
	switch {
	case focused.Max.X < r.Min.X:
		return r.Min.X - focused.Max.X
	case r.Max.X < focused.Min.X:
		return focused.Min.X - r.Max.X
	default:
		return 0
	}
}

// Resolve returns the node focus should move to when d is pressed. nodes is
// iterated in registration order and the first of equally ranked
// candidates wins. When hasFocus is false the topmost-then-leftmost node in
// the transformed frame is picked. A focused id that is not among nodes
// yields no move.
func Resolve(d domain.Direction, nodes iter.Seq2[domain.NodeID, domain.Rect], focused domain.NodeID, hasFocus bool) (domain.NodeID, bool) {
	if !hasFocus {
		return first(d, nodes)
	}

	var focusedRect domain.Rect
	found := false
	for id, rect := range nodes {
		if id == focused {
			focusedRect = Downward(d, rect)
			found = true
			break
		}
	}
	if !found {
		return 0, false
	}

	var best candidate
	haveBest := false
	for id, rect := range nodes {
		if id == focused {
			continue
		}
		r := Downward(d, rect)
		minY := r.Min.Y - focusedRect.Max.Y
		if minY < 0 {
			continue
		}
		c := candidate{
			id:     id,
			minY:   minY,
			maxY:   r.Max.Y - focusedRect.Max.Y,
			xDrift: xDrift(focusedRect, r),
		}
		if !haveBest || less(c, best) {
			best = c
			haveBest = true
		}
	}
	return best.id, haveBest
}

func first(d domain.Direction, nodes iter.Seq2[domain.NodeID, domain.Rect]) (domain.NodeID, bool) {
	var (
		bestID   domain.NodeID
		bestRect domain.Rect
		found    bool
	)
	for id, rect := range nodes {
		r := Downward(d, rect)
		if !found || r.Min.Y < bestRect.Min.Y || (r.Min.Y == bestRect.Min.Y && r.Min.X < bestRect.Min.X) {
			bestID, bestRect, found = id, r, true
		}
	}
	return bestID, found
}
