package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDirectoryLoaded  EventType = "DirectoryLoaded"
	EventFilterChanged    EventType = "FilterChanged"
	EventSuggestionPicked EventType = "SuggestionPicked"
	EventLinkCopied       EventType = "LinkCopied"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DirectoryLoadedEvent is emitted once, when the directory fetch resolves
type DirectoryLoadedEvent struct {
	Count  int
	Failed bool
}

func (e DirectoryLoadedEvent) Type() EventType { return EventDirectoryLoaded }

// FilterChangedEvent is emitted after every filter state mutation
type FilterChangedEvent struct {
	Field   string // search, consultation, specialties, sort or all
	State   FilterState
	Address string
	Visible int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// SuggestionPickedEvent is emitted when the user picks an autocomplete suggestion
type SuggestionPickedEvent struct {
	Name string
}

func (e SuggestionPickedEvent) Type() EventType { return EventSuggestionPicked }

// LinkCopiedEvent is emitted when the shareable link is copied to the clipboard
type LinkCopiedEvent struct {
	Link string
}

func (e LinkCopiedEvent) Type() EventType { return EventLinkCopied }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
