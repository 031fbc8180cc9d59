package state

// Focus is the UI zone that receives key input
type Focus int

const (
	FocusSearch Focus = iota
	FocusFilters
	FocusResults
)

// AppState contains the UI state that is not part of the filter state
type AppState struct {
	Focus Focus

	// Filter panel
	FilterCursor int // index into the filter options

	// Results panel
	ResultsCursor  int // highlighted card
	ResultsOffset  int // first visible card
	ResultsVisible int // number of cards that fit

	// UI state
	Width         int
	Height        int
	ShowHelp      bool
	StatusMessage string // status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Focus:          FocusSearch,
		ResultsVisible: 4, // Default until the first resize
	}
}

// MoveFilterCursor moves the filter cursor by delta within [0, count)
func (s *AppState) MoveFilterCursor(delta, count int) {
	s.FilterCursor = clamp(s.FilterCursor+delta, 0, count-1)
}

// MoveResultsCursor moves the results cursor by delta and keeps it visible
func (s *AppState) MoveResultsCursor(delta, count int) {
	s.ResultsCursor = clamp(s.ResultsCursor+delta, 0, count-1)
	s.EnsureResultVisible(count)
}

// EnsureResultVisible clamps the cursor to count results and scrolls the
// viewport so the cursor card is on screen
func (s *AppState) EnsureResultVisible(count int) {
	s.ResultsCursor = clamp(s.ResultsCursor, 0, count-1)

	visible := s.ResultsVisible
	if visible < 1 {
		visible = 1
	}
	if s.ResultsCursor < s.ResultsOffset {
		s.ResultsOffset = s.ResultsCursor
	}
	if s.ResultsCursor >= s.ResultsOffset+visible {
		s.ResultsOffset = s.ResultsCursor - visible + 1
	}
	s.ResultsOffset = clamp(s.ResultsOffset, 0, count-visible)
}

// ResetResults scrolls back to the first card
func (s *AppState) ResetResults() {
	s.ResultsCursor = 0
	s.ResultsOffset = 0
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
