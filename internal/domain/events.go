package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventAppLaunched   EventType = "AppLaunched"
	EventLaunchFailed  EventType = "LaunchFailed"
	EventThemeApplied  EventType = "ThemeApplied"
	EventScanStarted   EventType = "ScanStarted"
	EventScanCompleted EventType = "ScanCompleted"
	EventConfigSaved   EventType = "ConfigSaved"
	EventError         EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// AppLaunchedEvent is emitted after an application process was spawned
type AppLaunchedEvent struct {
	Label string
}

func (e AppLaunchedEvent) Type() EventType { return EventAppLaunched }

// LaunchFailedEvent is emitted when the executor could not start a target
type LaunchFailedEvent struct {
	Label string
	Err   error
}

func (e LaunchFailedEvent) Type() EventType { return EventLaunchFailed }

// ThemeAppliedEvent is emitted after a theme change took effect
type ThemeAppliedEvent struct {
	Name string
}

func (e ThemeAppliedEvent) Type() EventType { return EventThemeApplied }

// ScanStartedEvent is emitted when a desktop-entry scan begins
type ScanStartedEvent struct{}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when the application index is rebuilt
type ScanCompletedEvent struct {
	AppsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ConfigSavedEvent is emitted after the config file was written
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
