package search

import "docfinder/internal/domain"

// State holds the autocomplete dropdown state
type State struct {
	Query       string
	Suggestions []domain.Doctor
	Cursor      int // highlighted suggestion, -1 when none
}

// Event types
type SuggestionsUpdatedEvent struct {
	Query string
	Count int
}

type SuggestionsClearedEvent struct{}

type SuggestionHighlightedEvent struct {
	OldIndex int
	NewIndex int
}
