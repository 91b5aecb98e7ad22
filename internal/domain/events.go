package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFocusMoved       EventType = "FocusMoved"
	EventActivated        EventType = "Activated"
	EventUserAction       EventType = "UserAction"
	EventCaptureStarted   EventType = "CaptureStarted"
	EventCaptureFinished  EventType = "CaptureFinished"
	EventCaptureAbandoned EventType = "CaptureAbandoned"
	EventInputCleared     EventType = "InputCleared"
	EventSettingsLoaded   EventType = "SettingsLoaded"
	EventSettingsSaved    EventType = "SettingsSaved"
	EventSettingsReloaded EventType = "SettingsReloaded"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FocusMovedEvent is emitted when a directional command picked a new focus target
type FocusMovedEvent struct {
	From      NodeID
	HadFocus  bool
	To        NodeID
	Direction Direction
}

func (e FocusMovedEvent) Type() EventType { return EventFocusMoved }

// ActivatedEvent is emitted when a node reports an activation to the UI code
type ActivatedEvent struct {
	Node       NodeID
	Activation string // "clicked", "clicked-secondary", "clicked-middle", "user"
	OnRelease  bool
}

func (e ActivatedEvent) Type() EventType { return EventActivated }

// UserActionEvent is emitted when a bound user command fires
type UserActionEvent struct {
	Focused  NodeID
	HasFocus bool
	Payload  string // fmt %v of the payload, for logs only
}

func (e UserActionEvent) Type() EventType { return EventUserAction }

// CaptureStartedEvent is emitted when a node enters pending-input capture
type CaptureStartedEvent struct {
	Session string
	Node    NodeID
}

func (e CaptureStartedEvent) Type() EventType { return EventCaptureStarted }

// CaptureFinishedEvent is emitted when a capture produced its chord
type CaptureFinishedEvent struct {
	Session string
	Node    NodeID
	Chord   string
}

func (e CaptureFinishedEvent) Type() EventType { return EventCaptureFinished }

// CaptureAbandonedEvent is emitted when the acceptor disappeared or lost focus
type CaptureAbandonedEvent struct {
	Session string
	Node    NodeID
	Reason  string
}

func (e CaptureAbandonedEvent) Type() EventType { return EventCaptureAbandoned }

// InputClearedEvent is emitted when application code called ClearInput
type InputClearedEvent struct{}

func (e InputClearedEvent) Type() EventType { return EventInputCleared }

// SettingsLoadedEvent is emitted when settings are read from disk (or defaulted)
type SettingsLoadedEvent struct {
	Path string
}

func (e SettingsLoadedEvent) Type() EventType { return EventSettingsLoaded }

// SettingsSavedEvent is emitted after settings were written
type SettingsSavedEvent struct {
	Path string
}

func (e SettingsSavedEvent) Type() EventType { return EventSettingsSaved }

// SettingsReloadedEvent is emitted when the settings watcher picked up a change
type SettingsReloadedEvent struct {
	Path string
}

func (e SettingsReloadedEvent) Type() EventType { return EventSettingsReloaded }

// ErrorEvent is emitted when a background operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
