package viewmodels

import "docfinder/internal/domain"

// OptionKind identifies the filter group an option belongs to
type OptionKind int

const (
	OptionConsultation OptionKind = iota
	OptionSpecialty
	OptionSort
)

// Section returns the panel header of the group
func (k OptionKind) Section() string {
	switch k {
	case OptionConsultation:
		return "Consultation Type"
	case OptionSpecialty:
		return "Specialties"
	default:
		return "Sort By"
	}
}

// SectionTestID returns the identifier of the group header
func (k OptionKind) SectionTestID() string {
	switch k {
	case OptionConsultation:
		return "filter-header-moc"
	case OptionSpecialty:
		return "filter-header-speciality"
	default:
		return "filter-header-sort"
	}
}

// FilterOption is one radio or checkbox row of the filter panel
type FilterOption struct {
	Kind  OptionKind
	Value string
}

// Label returns the text shown next to the control
func (o FilterOption) Label() string {
	if o.Kind == OptionSort {
		return domain.SortKey(o.Value).Label()
	}
	return o.Value
}

// TestID returns the identifier of the control
func (o FilterOption) TestID() string {
	switch o.Kind {
	case OptionConsultation:
		return domain.ConsultationType(o.Value).TestID()
	case OptionSpecialty:
		return domain.SpecialtyTestID(o.Value)
	default:
		return domain.SortKey(o.Value).TestID()
	}
}

// IsRadio reports whether the option is exclusive within its group
func (o FilterOption) IsRadio() bool {
	return o.Kind != OptionSpecialty
}

// FilterOptions returns every filter row in panel order:
// the consultation types, the specialties, then the sort keys.
func FilterOptions() []FilterOption {
	options := make([]FilterOption, 0, len(domain.ConsultationTypes)+len(domain.Specialties)+len(domain.SortKeys))
	for _, c := range domain.ConsultationTypes {
		options = append(options, FilterOption{Kind: OptionConsultation, Value: string(c)})
	}
	for _, s := range domain.Specialties {
		options = append(options, FilterOption{Kind: OptionSpecialty, Value: s})
	}
	for _, k := range domain.SortKeys {
		options = append(options, FilterOption{Kind: OptionSort, Value: string(k)})
	}
	return options
}

// IsChecked reports whether the option is selected in the filter state
func (o FilterOption) IsChecked(state domain.FilterState) bool {
	switch o.Kind {
	case OptionConsultation:
		return string(state.Consultation) == o.Value
	case OptionSpecialty:
		return state.HasSpecialty(o.Value)
	default:
		return string(state.Sort) == o.Value
	}
}

// Activate applies the option: radios select their value, checkboxes toggle
func (vm *DirectoryViewModel) Activate(o FilterOption) {
	switch o.Kind {
	case OptionConsultation:
		vm.SetConsultation(domain.ConsultationType(o.Value))
	case OptionSpecialty:
		vm.ToggleSpecialty(o.Value)
	case OptionSort:
		vm.SetSort(domain.SortKey(o.Value))
	}
}
