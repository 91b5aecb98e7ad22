package nav

import "padnav/internal/bindings"

// ActivationKind says how a node was activated
type ActivationKind uint8

const (
	ActivationNone ActivationKind = iota
	ActivationClicked
	ActivationClickedSecondary
	ActivationClickedMiddle
	ActivationUser
)

func (k ActivationKind) String() string {
	switch k {
	case ActivationClicked:
		return "clicked"
	case ActivationClickedSecondary:
		return "clicked-secondary"
	case ActivationClickedMiddle:
		return "clicked-middle"
	case ActivationUser:
		return "user"
	default:
		return "none"
	}
}

// Activation is the result of an activation query
type Activation struct {
	Kind    ActivationKind
	payload bindings.Payload
}

// Any reports whether the node was activated in any way
func (a Activation) Any() bool {
	return a.Kind != ActivationNone
}

// Clicked reports a primary activation, from the pointer or a bound Click
func (a Activation) Clicked() bool {
	return a.Kind == ActivationClicked
}

// UserOf extracts the user action payload if it has type T
func UserOf[T any](a Activation) (T, bool) {
	if a.Kind != ActivationUser {
		var zero T
		return zero, false
	}
	return bindings.Downcast[T](a.payload)
}

func (a Activation) String() string {
	if a.Kind == ActivationUser && a.payload != nil {
		return "user(" + describe(a.payload) + ")"
	}
	return a.Kind.String()
}
