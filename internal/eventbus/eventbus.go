package eventbus

import (
	"runtime/debug"
	"sync"

	"flingr/internal/domain"
	"flingr/internal/logger"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventAppLaunched   = domain.EventAppLaunched
	EventLaunchFailed  = domain.EventLaunchFailed
	EventThemeApplied  = domain.EventThemeApplied
	EventScanStarted   = domain.EventScanStarted
	EventScanCompleted = domain.EventScanCompleted
	EventConfigSaved   = domain.EventConfigSaved
	EventError         = domain.EventError
)

// Re-export domain event types
type AppLaunchedEvent = domain.AppLaunchedEvent
type LaunchFailedEvent = domain.LaunchFailedEvent
type ThemeAppliedEvent = domain.ThemeAppliedEvent
type ScanStartedEvent = domain.ScanStartedEvent
type ScanCompletedEvent = domain.ScanCompletedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus carries executor and index status back to the UI without
// blocking the keystroke path.
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]EventHandler
	eventChan chan DomainEvent
	quit      chan struct{}
	once      sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]EventHandler),
		eventChan: make(chan DomainEvent, 100),
		quit:      make(chan struct{}),
	}
	go b.dispatch()
	return b
}

// Publish publishes an event to all subscribers. Never blocks: if the
// channel is full the event is dropped and logged.
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		logger.Log.Warn("event bus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe registers a handler for one event type and returns an
// unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	idx := len(b.handlers[eventType]) - 1

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		handlers := b.handlers[eventType]
		if idx < len(handlers) {
			b.handlers[eventType] = append(handlers[:idx], handlers[idx+1:]...)
		}
	}
}

// Close stops the dispatcher
func (b *bus) Close() {
	b.once.Do(func() { close(b.quit) })
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			handlers := make([]EventHandler, len(b.handlers[event.Type()]))
			copy(handlers, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, handler := range handlers {
				func(h EventHandler) {
					defer func() {
						if r := recover(); r != nil {
							logger.Log.Error("event handler panic",
								"type", event.Type(), "panic", r, "stack", string(debug.Stack()))
						}
					}()
					h(event)
				}(handler)
			}

		case <-b.quit:
			return
		}
	}
}
