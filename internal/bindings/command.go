package bindings

import (
	"fmt"

	"padnav/internal/domain"
	"padnav/internal/input"
)

// CommandKind is the abstract navigation command class
type CommandKind uint8

const (
	CommandNone CommandKind = iota
	CommandNavigateUp
	CommandNavigateDown
	CommandNavigateLeft
	CommandNavigateRight
	CommandClick
	CommandUser
)

func (k CommandKind) String() string {
	switch k {
	case CommandNavigateUp:
		return "NavigateUp"
	case CommandNavigateDown:
		return "NavigateDown"
	case CommandNavigateLeft:
		return "NavigateLeft"
	case CommandNavigateRight:
		return "NavigateRight"
	case CommandClick:
		return "Click"
	case CommandUser:
		return "User"
	default:
		return "None"
	}
}

// Command is what a physical input is bound to. User commands carry a
// factory that builds a fresh payload every time the binding fires.
type Command struct {
	Kind    CommandKind
	factory func() Payload
	label   string
}

var (
	NavigateUp    = Command{Kind: CommandNavigateUp}
	NavigateDown  = Command{Kind: CommandNavigateDown}
	NavigateLeft  = Command{Kind: CommandNavigateLeft}
	NavigateRight = Command{Kind: CommandNavigateRight}
	Click         = Command{Kind: CommandClick}
)

// User binds a user action whose payload is a copy of v
func User[T any](v T) Command {
	return Command{
		Kind:    CommandUser,
		factory: func() Payload { return Wrap(v).Clone() },
		label:   fmt.Sprintf("%v", v),
	}
}

// UserFunc binds a user action whose payload is produced by f on each fire
func UserFunc[T any](f func() T) Command {
	var zero T
	return Command{
		Kind:    CommandUser,
		factory: func() Payload { return Wrap(f()) },
		label:   fmt.Sprintf("%T", zero),
	}
}

// Navigate returns the command for a direction
func Navigate(d domain.Direction) Command {
	switch d {
	case domain.DirectionUp:
		return NavigateUp
	case domain.DirectionDown:
		return NavigateDown
	case domain.DirectionLeft:
		return NavigateLeft
	default:
		return NavigateRight
	}
}

// Direction reports the direction of a navigation command
func (c Command) Direction() (domain.Direction, bool) {
	switch c.Kind {
	case CommandNavigateUp:
		return domain.DirectionUp, true
	case CommandNavigateDown:
		return domain.DirectionDown, true
	case CommandNavigateLeft:
		return domain.DirectionLeft, true
	case CommandNavigateRight:
		return domain.DirectionRight, true
	}
	return 0, false
}

// Payload builds a fresh payload. It is nil for anything but user commands.
func (c Command) Payload() Payload {
	if c.Kind != CommandUser || c.factory == nil {
		return nil
	}
	return c.factory()
}

func (c Command) String() string {
	if c.Kind == CommandUser {
		return "User(" + c.label + ")"
	}
	return c.Kind.String()
}

// TriggerID identifies one logical trigger for edge detection and repeat
// timing. Built-in commands collapse onto their kind no matter which input
// produced them; user commands are keyed by the bound input so distinct
// actions time independently.
type TriggerID struct {
	Kind   CommandKind
	Origin input.Input
}

func (id TriggerID) String() string {
	if id.Kind == CommandUser {
		return "User(" + id.Origin.String() + ")"
	}
	return id.Kind.String()
}

// Trigger is a command fired by a concrete input this frame
type Trigger struct {
	Command Command
	Origin  input.Input
}

func (t Trigger) ID() TriggerID {
	if t.Command.Kind == CommandUser {
		return TriggerID{Kind: CommandUser, Origin: t.Origin}
	}
	return TriggerID{Kind: t.Command.Kind}
}
