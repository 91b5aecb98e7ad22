package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"padnav/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventFocusMoved       = domain.EventFocusMoved
	EventActivated        = domain.EventActivated
	EventUserAction       = domain.EventUserAction
	EventCaptureStarted   = domain.EventCaptureStarted
	EventCaptureFinished  = domain.EventCaptureFinished
	EventCaptureAbandoned = domain.EventCaptureAbandoned
	EventInputCleared     = domain.EventInputCleared
	EventSettingsLoaded   = domain.EventSettingsLoaded
	EventSettingsSaved    = domain.EventSettingsSaved
	EventSettingsReloaded = domain.EventSettingsReloaded
	EventError            = domain.EventError
)

// Re-export domain event types
type FocusMovedEvent = domain.FocusMovedEvent
type ActivatedEvent = domain.ActivatedEvent
type UserActionEvent = domain.UserActionEvent
type CaptureStartedEvent = domain.CaptureStartedEvent
type CaptureFinishedEvent = domain.CaptureFinishedEvent
type CaptureAbandonedEvent = domain.CaptureAbandonedEvent
type InputClearedEvent = domain.InputClearedEvent
type SettingsLoadedEvent = domain.SettingsLoadedEvent
type SettingsSavedEvent = domain.SettingsSavedEvent
type SettingsReloadedEvent = domain.SettingsReloadedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
}

// New creates a new event bus. Handlers run on their own goroutines, so
// publishing from inside a frame never blocks the UI pass.
func New(logger *slog.Logger) EventBus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		logger:    logger,
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventFocusMoved, EventUserAction:
		// too frequent for the log
	default:
		b.logger.Debug("eventbus: publishing", "event", event.Type())
	}

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("eventbus: channel full, dropping event", "event", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and discards queued events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// copy so handlers run without holding the lock
			handlersCopy := make([]EventHandler, len(subs))
			for i, s := range subs {
				handlersCopy[i] = s.handler
			}
			b.mu.RUnlock()

			for _, handler := range handlersCopy {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							b.logger.Error("eventbus: handler panic", "event", eventType, "panic", r, "stack", string(debug.Stack()))
						}
					}()
					h(event)
				}(handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(DomainEvent)                      {}
func (NullBus) Subscribe(EventType, EventHandler) func() { return func() {} }
func (NullBus) Close()                                   {}
