package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode, one per focus zone
type Mode int

const (
	ModeSearch Mode = iota
	ModeFilters
	ModeResults
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeFilters:
		return "filters"
	case ModeResults:
		return "results"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	SuggestionsOpen() bool
	FilterCount() int
	ResultCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
