package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"docfinder/internal/ui/state"
	"docfinder/internal/ui/views"
)

// SearchInputTestID identifies the search box
const SearchInputTestID = "autocomplete-input"

// InputTransformer turns the text input into the search line of the view
type InputTransformer struct {
	focus     state.Focus
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		focus:     state.FocusSearch,
		textInput: textInput,
	}
}

// SetFocus sets the zone that owns the keyboard
func (it *InputTransformer) SetFocus(focus state.Focus) {
	it.focus = focus
}

// GetInputElement returns the search line for the view
func (it *InputTransformer) GetInputElement() views.Element {
	prefix := "  Search: "
	if it.focus == state.FocusSearch {
		prefix = "▸ Search: "
	}
	return views.Element{
		TestID: SearchInputTestID,
		Text:   prefix + it.textInput.View(),
	}
}

// GetFocusString returns the name of the focused zone
func (it *InputTransformer) GetFocusString() string {
	switch it.focus {
	case state.FocusSearch:
		return "search"
	case state.FocusFilters:
		return "filters"
	case state.FocusResults:
		return "results"
	default:
		return ""
	}
}
