package views

// Element is a piece of text that carries a stable identifier
type Element struct {
	TestID string
	Text   string
}

// SuggestionRow is one autocomplete suggestion
type SuggestionRow struct {
	TestID      string
	Name        string
	MatchStart  int // byte range of the typed text, -1 when unknown
	MatchEnd    int
	Highlighted bool
}

// FilterRow is a radio or checkbox control in the filter panel
type FilterRow struct {
	Section       string
	SectionTestID string
	TestID        string
	Label         string
	Radio         bool
	Checked       bool
}

// DoctorCard is one entry of the results list
type DoctorCard struct {
	TestID     string
	Name       Element
	Specialty  Element
	Experience Element
	Fee        Element
	Accent     string // consultation type, used for the card marker
}

// Lines returns the card fields in display order
func (c DoctorCard) Lines() []Element {
	return []Element{c.Name, c.Specialty, c.Experience, c.Fee}
}

// CardHeight is the number of lines a card takes, including the gap
const CardHeight = 5

// reservedLines counts every line outside the filter and results panels:
// container padding, title, search, suggestions, panel borders, status and help.
const reservedLines = 2 + 2 + 1 + 3 + 1 + 2 + 1 + 1

// BodyHeight returns the height available to the filter and results panels
func BodyHeight(height int) int {
	body := height - reservedLines
	if body < CardHeight {
		body = CardHeight
	}
	return body
}

// ResultsCapacity returns how many cards fit on screen, leaving room for
// the scroll indicators
func ResultsCapacity(height int) int {
	n := (BodyHeight(height) - 2) / CardHeight
	if n < 1 {
		n = 1
	}
	return n
}
