package demo

import (
	"padnav/internal/bindings"
	"padnav/internal/config"
	"padnav/internal/input"
)

// Action is the demo's user action payload
type Action int

const (
	ActionPrevMenu Action = iota + 1
	ActionNextMenu
	ActionDelete
	ActionBack
)

func (a Action) String() string {
	switch a {
	case ActionPrevMenu:
		return "PrevMenu"
	case ActionNextMenu:
		return "NextMenu"
	case ActionDelete:
		return "Delete"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Bindings extends the default table with the demo's user actions
func Bindings(s *config.Settings) *bindings.Bindings {
	return bindings.DefaultWith(bindings.Options{
		DisableNavigation: s.DisableDefaultNavigation,
		DisableActivation: s.DisableDefaultActivation,
	}).
		WithKey(input.KeyPageUp, bindings.User(ActionPrevMenu)).
		WithKey(input.KeyPageDown, bindings.User(ActionNextMenu)).
		WithGamepadButton(input.ButtonLeftTrigger, bindings.User(ActionPrevMenu)).
		WithGamepadButton(input.ButtonRightTrigger, bindings.User(ActionNextMenu)).
		WithKey(input.KeyDelete, bindings.User(ActionDelete)).
		WithGamepadButton(input.ButtonWest, bindings.User(ActionDelete)).
		WithKey(input.KeyEscape, bindings.User(ActionBack)).
		WithGamepadButton(input.ButtonEast, bindings.User(ActionBack))
}
