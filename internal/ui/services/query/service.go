package query

import (
	"fmt"
	"net/url"
	"strings"

	"docfinder/internal/domain"
	"docfinder/internal/ui/services/events"
)

// Service keeps the filter state and the shareable address in sync
type Service struct {
	store Store
	bus   events.EventBus
}

// NewService creates a query service over a store
func NewService(store Store, bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		store: store,
		bus:   bus,
	}
}

// ParseAddress accepts a bare query string, a "?"-prefixed one, a full URL
// or a docfinder:// link and returns its parameters.
func ParseAddress(raw string) (url.Values, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return url.Values{}, nil
	}

	if strings.HasPrefix(raw, "?") {
		raw = strings.TrimPrefix(raw, "?")
		if i := strings.Index(raw, "#"); i >= 0 {
			raw = raw[:i]
		}
	} else if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		// Only a link with a scheme carries a prefix; anything else is the query itself
		raw = u.RawQuery
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse address %q: %w", raw, err)
	}
	return values, nil
}

// Seed reads the initial filter state out of the store. Absent keys mean defaults.
func (s *Service) Seed() domain.FilterState {
	consultation, _ := domain.ParseConsultationType(s.store.Get(KeyConsultation))
	sortKey, _ := domain.ParseSortKey(s.store.Get(KeySort))

	return domain.FilterState{
		SearchText:   s.store.Get(KeySearch),
		Consultation: consultation,
		Specialties:  dedupe(s.store.Values(KeySpecialties)),
		Sort:         sortKey,
	}
}

// SetSearch writes the search text
func (s *Service) SetSearch(text string) {
	s.setSingle(KeySearch, text)
}

// SetConsultation writes the consultation type
func (s *Service) SetConsultation(c domain.ConsultationType) {
	s.setSingle(KeyConsultation, string(c))
}

// SetSort writes the sort key
func (s *Service) SetSort(k domain.SortKey) {
	s.setSingle(KeySort, string(k))
}

// SetSpecialties replaces the whole specialties set
func (s *Service) SetSpecialties(specialties []string) {
	s.store.Replace(KeySpecialties, specialties)
	s.publish(KeySpecialties)
}

// WriteState writes every field of the state
func (s *Service) WriteState(state domain.FilterState) {
	s.SetSearch(state.SearchText)
	s.SetConsultation(state.Consultation)
	s.SetSpecialties(state.Specialties)
	s.SetSort(state.Sort)
}

// Clear removes every filter key
func (s *Service) Clear() {
	for _, key := range []string{KeySearch, KeyConsultation, KeySpecialties, KeySort} {
		s.store.Del(key)
	}
	s.publish("")
}

// Encode returns the canonical query string
func (s *Service) Encode() string {
	return s.store.Encode()
}

// Link returns the shareable link for the current address
func (s *Service) Link() string {
	encoded := s.store.Encode()
	if encoded == "" {
		return LinkPrefix
	}
	return LinkPrefix + "?" + encoded
}

// Empty values remove the key to keep the address compact
func (s *Service) setSingle(key, value string) {
	if value == "" {
		s.store.Del(key)
	} else {
		s.store.Set(key, value)
	}
	s.publish(key)
}

func (s *Service) publish(key string) {
	s.bus.Publish(AddressChangedEvent{Key: key, Address: s.store.Encode()})
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
