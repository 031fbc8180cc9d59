package domain

import "strings"

// Doctor represents one entry of the fetched directory
type Doctor struct {
	Name             string           `json:"name" validate:"required"`
	Specialties      []string         `json:"specialties"`
	ConsultationType ConsultationType `json:"consultation_type" validate:"omitempty,oneof='Video Consult' 'In Clinic'"`
	Experience       int              `json:"experience" validate:"gte=0"`
	Fees             float64          `json:"fees" validate:"gte=0"`
}

// HasSpecialty reports whether the doctor lists the given specialty
func (d Doctor) HasSpecialty(name string) bool {
	for _, s := range d.Specialties {
		if s == name {
			return true
		}
	}
	return false
}

// SpecialtyLine joins the specialties for display
func (d Doctor) SpecialtyLine() string {
	return strings.Join(d.Specialties, ", ")
}

// ConsultationType is the way a doctor sees patients
type ConsultationType string

const (
	ConsultationUnset ConsultationType = ""
	VideoConsult      ConsultationType = "Video Consult"
	InClinic          ConsultationType = "In Clinic"
)

// ConsultationTypes lists the selectable consultation types in display order
var ConsultationTypes = []ConsultationType{VideoConsult, InClinic}

// ParseConsultationType returns the consultation type for s and whether it is a known value.
// Unknown values are returned verbatim so they survive a round trip through the address.
func ParseConsultationType(s string) (ConsultationType, bool) {
	switch ConsultationType(s) {
	case VideoConsult, InClinic:
		return ConsultationType(s), true
	default:
		return ConsultationType(s), false
	}
}

// TestID returns the identifier used to address the radio control
func (c ConsultationType) TestID() string {
	switch c {
	case VideoConsult:
		return "filter-video-consult"
	case InClinic:
		return "filter-in-clinic"
	default:
		return ""
	}
}

// SortKey selects the order of the displayed list
type SortKey string

const (
	SortUnset      SortKey = ""
	SortFees       SortKey = "fees"
	SortExperience SortKey = "experience"
)

// SortKeys lists the selectable sort keys in display order
var SortKeys = []SortKey{SortFees, SortExperience}

// ParseSortKey returns the sort key for s and whether it is a known value
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortFees, SortExperience:
		return SortKey(s), true
	default:
		return SortKey(s), false
	}
}

// Label returns the human readable sort label
func (k SortKey) Label() string {
	switch k {
	case SortFees:
		return "Fees (Low to High)"
	case SortExperience:
		return "Experience (High to Low)"
	default:
		return "Default order"
	}
}

// TestID returns the identifier used to address the radio control
func (k SortKey) TestID() string {
	switch k {
	case SortFees:
		return "sort-fees"
	case SortExperience:
		return "sort-experience"
	default:
		return ""
	}
}

// Specialties is the fixed list of specialties offered as filters
var Specialties = []string{
	"General Physician", "Dentist", "Dermatologist", "Paediatrician", "Gynaecologist", "ENT", "Diabetologist",
	"Cardiologist", "Physiotherapist", "Endocrinologist", "Orthopaedic", "Ophthalmologist", "Gastroenterologist",
	"Pulmonologist", "Psychiatrist", "Urologist", "Dietitian/Nutritionist", "Psychologist", "Sexologist",
	"Nephrologist", "Neurologist", "Oncologist", "Ayurveda", "Homeopath",
}

// IsKnownSpecialty reports whether name is part of the fixed list
func IsKnownSpecialty(name string) bool {
	for _, s := range Specialties {
		if s == name {
			return true
		}
	}
	return false
}

// SpecialtyTestID returns the identifier of the checkbox for a specialty
func SpecialtyTestID(name string) string {
	id := strings.ReplaceAll(name, "/", "-")
	id = strings.Join(strings.Fields(id), "-")
	return "filter-specialty-" + id
}

// FilterState holds the user's current search, filter and sort selections
type FilterState struct {
	SearchText   string
	Consultation ConsultationType
	Specialties  []string // selection order, no duplicates
	Sort         SortKey
}

// HasSpecialty reports whether the specialty is selected
func (s FilterState) HasSpecialty(name string) bool {
	for _, sel := range s.Specialties {
		if sel == name {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no filter, search or sort is active
func (s FilterState) IsEmpty() bool {
	return s.SearchText == "" && s.Consultation == ConsultationUnset &&
		len(s.Specialties) == 0 && s.Sort == SortUnset
}

// Clone returns a copy that shares no slices with s
func (s FilterState) Clone() FilterState {
	c := s
	if s.Specialties != nil {
		c.Specialties = append([]string(nil), s.Specialties...)
	}
	return c
}
