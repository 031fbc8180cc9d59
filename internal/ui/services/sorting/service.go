package sorting

import (
	"docfinder/internal/domain"
	"docfinder/internal/ui/services/events"
)

// Service tracks the active sort key and cycles through the options
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new sorting service starting at key
func NewService(bus events.EventBus, key domain.SortKey) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{CurrentKey: key},
		bus:   bus,
	}
}

// SetKey sets the sort key
func (s *Service) SetKey(key domain.SortKey) {
	if key == s.state.CurrentKey {
		return
	}

	oldKey := s.state.CurrentKey
	s.state.CurrentKey = key

	s.bus.Publish(SortKeyChangedEvent{
		OldKey: oldKey,
		NewKey: key,
	})
}

// NextKey returns the key after the current one: unset, fees, experience, unset...
// Unknown keys read from an address continue with the first option.
func (s *Service) NextKey() domain.SortKey {
	keys := append([]domain.SortKey{domain.SortUnset}, domain.SortKeys...)

	for i, key := range keys {
		if key == s.state.CurrentKey {
			return keys[(i+1)%len(keys)]
		}
	}
	return domain.SortKeys[0]
}

// GetKeyString returns a short label for the status line
func (s *Service) GetKeyString() string {
	switch s.state.CurrentKey {
	case domain.SortFees:
		return "fees"
	case domain.SortExperience:
		return "experience"
	case domain.SortUnset:
		return "default"
	default:
		return "unknown"
	}
}
