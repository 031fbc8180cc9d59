package search

import (
	"strings"

	"docfinder/internal/domain"
	"docfinder/internal/ui/services/events"
)

// Service tracks which autocomplete suggestion is highlighted
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Cursor: -1},
		bus:   bus,
	}
}

// Show replaces the suggestions for a query. The highlight is reset.
func (s *Service) Show(query string, suggestions []domain.Doctor) {
	if len(suggestions) == 0 {
		s.Clear()
		return
	}

	s.state.Query = query
	s.state.Suggestions = suggestions
	s.state.Cursor = -1

	s.bus.Publish(SuggestionsUpdatedEvent{Query: query, Count: len(suggestions)})
}

// Clear hides the suggestions
func (s *Service) Clear() {
	wasOpen := s.IsOpen()
	s.state.Query = ""
	s.state.Suggestions = nil
	s.state.Cursor = -1
	if wasOpen {
		s.bus.Publish(SuggestionsClearedEvent{})
	}
}

// IsOpen reports whether any suggestion is shown
func (s *Service) IsOpen() bool {
	return len(s.state.Suggestions) > 0
}

// Suggestions returns the shown suggestions
func (s *Service) Suggestions() []domain.Doctor {
	return s.state.Suggestions
}

// Cursor returns the highlighted suggestion index, -1 when none
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// Next highlights the next suggestion, wrapping around
func (s *Service) Next() {
	if !s.IsOpen() {
		return
	}
	old := s.state.Cursor
	s.state.Cursor = (s.state.Cursor + 1) % len(s.state.Suggestions)
	s.bus.Publish(SuggestionHighlightedEvent{OldIndex: old, NewIndex: s.state.Cursor})
}

// Previous highlights the previous suggestion, wrapping around
func (s *Service) Previous() {
	if !s.IsOpen() {
		return
	}
	old := s.state.Cursor
	s.state.Cursor--
	if s.state.Cursor < 0 {
		s.state.Cursor = len(s.state.Suggestions) - 1
	}
	s.bus.Publish(SuggestionHighlightedEvent{OldIndex: old, NewIndex: s.state.Cursor})
}

// Highlight helpers for UI

// MatchRange returns the byte range of the query inside name, or -1, -1.
// ToLower can change byte lengths outside ASCII, so ranges are only reported
// when the lowered name keeps the original length.
func (s *Service) MatchRange(name string) (int, int) {
	if s.state.Query == "" {
		return -1, -1
	}
	lowerName := strings.ToLower(name)
	if len(lowerName) != len(name) {
		return -1, -1
	}
	i := strings.Index(lowerName, strings.ToLower(s.state.Query))
	if i < 0 {
		return -1, -1
	}
	return i, i + len(s.state.Query)
}
