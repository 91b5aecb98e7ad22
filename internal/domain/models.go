package domain

import "fmt"

// NodeID identifies an interactive element across frames.
// Hosts derive it from their own per-widget id.
type NodeID uint64

// String renders the id in the short hex form used in logs
func (id NodeID) String() string {
	return fmt.Sprintf("node#%x", uint64(id))
}

// Pos is a point in logical pixel (or cell) space
type Pos struct {
	X float32
	Y float32
}

// Rect is an axis-aligned rectangle given by its min and max corners
type Rect struct {
	Min Pos
	Max Pos
}

// RectXYWH builds a rectangle from its top-left corner and size
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{
		Min: Pos{X: x, Y: y},
		Max: Pos{X: x + w, Y: y + h},
	}
}

// Width returns the horizontal extent
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether p lies inside the rectangle (max edges exclusive)
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Direction is one of the four navigation directions
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the lowercase direction name
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}
