package bindings

import "fmt"

// Payload is a type-erased user action value. Every fired user command gets
// its own Payload, so holds on different nodes never share an instance.
type Payload interface {
	Clone() Payload
	// Any exposes the wrapped value for logging
	Any() any
}

// Cloner lets a payload type provide a deep copy. Types that do not
// implement it are copied by value.
type Cloner[T any] interface {
	Clone() T
}

type value[T any] struct {
	v T
}

func (p value[T]) Clone() Payload {
	if c, ok := any(p.v).(Cloner[T]); ok {
		return value[T]{v: c.Clone()}
	}
	return value[T]{v: p.v}
}

func (p value[T]) Any() any {
	return p.v
}

func (p value[T]) String() string {
	return fmt.Sprintf("%v", p.v)
}

// Wrap erases v into a Payload
func Wrap[T any](v T) Payload {
	return value[T]{v: v}
}

// Downcast recovers the concrete value. A nil payload or a payload of a
// different type is reported as no match.
func Downcast[T any](p Payload) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	v, ok := p.(value[T])
	if !ok {
		return zero, false
	}
	return v.v, true
}
