package viewmodels

import (
	"go.uber.org/zap"

	"docfinder/internal/domain"
	"docfinder/internal/ui/logic"
	"docfinder/internal/ui/services/events"
	"docfinder/internal/ui/services/query"
	"docfinder/internal/ui/services/search"
	"docfinder/internal/ui/services/sorting"
)

// Phase is the loading state of the directory
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	if p == PhaseReady {
		return "ready"
	}
	return "loading"
}

// DirectoryViewModel owns the filter state and the displayed list.
// Every mutation updates the state, writes the address, then recomputes
// the displayed list before returning.
type DirectoryViewModel struct {
	phase     Phase
	all       []domain.Doctor
	state     domain.FilterState
	displayed []domain.Doctor

	query       *query.Service
	suggestions *search.Service
	sorting     *sorting.Service
	bus         events.EventBus
	logger      *zap.Logger
}

// NewDirectoryViewModel seeds the filter state from the address once
func NewDirectoryViewModel(q *query.Service, bus events.EventBus, logger *zap.Logger) *DirectoryViewModel {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	state := q.Seed()
	vm := &DirectoryViewModel{
		phase:       PhaseLoading,
		state:       state,
		query:       q,
		suggestions: search.NewService(bus),
		sorting:     sorting.NewService(bus, state.Sort),
		bus:         bus,
		logger:      logger,
	}
	vm.recompute()

	logger.Debug("filter state seeded from address",
		zap.String("address", q.Encode()),
		zap.Bool("empty", state.IsEmpty()))
	for _, name := range state.Specialties {
		if !domain.IsKnownSpecialty(name) {
			logger.Warn("unknown specialty in address, it matches no doctor", zap.String("specialty", name))
		}
	}
	return vm
}

// SetDirectory stores the fetched list and moves to Ready.
// Only the first call has an effect; it reports whether it did.
func (vm *DirectoryViewModel) SetDirectory(doctors []domain.Doctor, failed bool) bool {
	if vm.phase == PhaseReady {
		vm.logger.Warn("directory already loaded, ignoring second result")
		return false
	}

	vm.all = append([]domain.Doctor(nil), doctors...)
	vm.phase = PhaseReady
	vm.recompute()

	vm.bus.Publish(domain.DirectoryLoadedEvent{Count: len(vm.all), Failed: failed})
	return true
}

// SetSearchText updates the search text and the suggestions
func (vm *DirectoryViewModel) SetSearchText(text string) {
	vm.state.SearchText = text
	vm.query.SetSearch(text)
	vm.suggestions.Show(text, logic.Suggest(vm.all, text))
	vm.changed(query.KeySearch)
}

// SelectSuggestion copies the name of suggestion i into the search text
// and hides the suggestions. It reports whether i was a valid row.
func (vm *DirectoryViewModel) SelectSuggestion(i int) bool {
	shown := vm.suggestions.Suggestions()
	if i < 0 || i >= len(shown) {
		return false
	}

	name := shown[i].Name
	vm.state.SearchText = name
	vm.query.SetSearch(name)
	vm.suggestions.Clear()
	vm.changed(query.KeySearch)

	vm.bus.Publish(domain.SuggestionPickedEvent{Name: name})
	return true
}

// SetConsultation selects a consultation type. Unset clears the filter.
func (vm *DirectoryViewModel) SetConsultation(c domain.ConsultationType) {
	vm.state.Consultation = c
	vm.query.SetConsultation(c)
	vm.changed(query.KeyConsultation)
}

// ToggleSpecialty adds or removes a specialty from the selection
func (vm *DirectoryViewModel) ToggleSpecialty(name string) {
	updated := make([]string, 0, len(vm.state.Specialties)+1)
	found := false
	for _, s := range vm.state.Specialties {
		if s == name {
			found = true
			continue
		}
		updated = append(updated, s)
	}
	if !found {
		updated = append(updated, name)
	}
	if len(updated) == 0 {
		updated = nil
	}

	vm.state.Specialties = updated
	vm.query.SetSpecialties(updated)
	vm.changed(query.KeySpecialties)
}

// SetSort selects the sort key. Unset restores fetch order.
func (vm *DirectoryViewModel) SetSort(k domain.SortKey) {
	vm.state.Sort = k
	vm.sorting.SetKey(k)
	vm.query.SetSort(k)
	vm.changed(query.KeySort)
}

// CycleSort moves to the next sort option
func (vm *DirectoryViewModel) CycleSort() domain.SortKey {
	next := vm.sorting.NextKey()
	vm.SetSort(next)
	return next
}

// ClearFilters resets every field to its default and empties the address
func (vm *DirectoryViewModel) ClearFilters() {
	vm.state = domain.FilterState{}
	vm.query.Clear()
	vm.suggestions.Clear()
	vm.sorting.SetKey(domain.SortUnset)
	vm.changed("all")
}

// Phase returns the loading phase
func (vm *DirectoryViewModel) Phase() Phase {
	return vm.phase
}

// State returns a copy of the filter state
func (vm *DirectoryViewModel) State() domain.FilterState {
	return vm.state.Clone()
}

// All returns the fetched list. Callers must not modify it.
func (vm *DirectoryViewModel) All() []domain.Doctor {
	return vm.all
}

// Displayed returns the filtered, sorted list. Callers must not modify it.
func (vm *DirectoryViewModel) Displayed() []domain.Doctor {
	return vm.displayed
}

// Suggestions returns the shown autocomplete suggestions
func (vm *DirectoryViewModel) Suggestions() []domain.Doctor {
	return vm.suggestions.Suggestions()
}

// SuggestionService exposes the highlight state of the suggestions
func (vm *DirectoryViewModel) SuggestionService() *search.Service {
	return vm.suggestions
}

// SortLabel returns a short label for the active sort
func (vm *DirectoryViewModel) SortLabel() string {
	return vm.sorting.GetKeyString()
}

// Address returns the shareable link
func (vm *DirectoryViewModel) Address() string {
	return vm.query.Link()
}

// Recompute rebuilds the displayed list from the full list and the filter state
func (vm *DirectoryViewModel) Recompute() {
	vm.recompute()
}

func (vm *DirectoryViewModel) recompute() {
	vm.displayed = logic.ApplyFilters(vm.all, vm.state)
}

func (vm *DirectoryViewModel) changed(field string) {
	vm.recompute()
	vm.bus.Publish(domain.FilterChangedEvent{
		Field:   field,
		State:   vm.state.Clone(),
		Address: vm.query.Encode(),
		Visible: len(vm.displayed),
	})
}
