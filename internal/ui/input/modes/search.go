package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docfinder/internal/ui/input/keys"
	"docfinder/internal/ui/input/types"
)

// SearchMode edits the search text and drives the suggestion list.
// Keys it does not consume are typed into the text input.
type SearchMode struct {
	keys      keys.KeyMap
	textInput *textinput.Model
}

func NewSearchMode(km keys.KeyMap, ti *textinput.Model) *SearchMode {
	return &SearchMode{
		keys:      km,
		textInput: ti,
	}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		// The text is part of the filter state, so it is kept
		m.textInput.Blur()
	}
	return []types.Action{types.DismissSuggestionsAction{}}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.NextZone):
		return []types.Action{types.ChangeModeAction{Mode: next(types.ModeSearch)}}, true

	case key.Matches(msg, m.keys.PrevZone):
		return []types.Action{types.ChangeModeAction{Mode: prev(types.ModeSearch)}}, true

	case msg.Type == tea.KeyUp:
		if ctx.SuggestionsOpen() {
			return []types.Action{types.HighlightSuggestionAction{Delta: -1}}, true
		}
		return nil, true

	case msg.Type == tea.KeyDown:
		if ctx.SuggestionsOpen() {
			return []types.Action{types.HighlightSuggestionAction{Delta: 1}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Pick):
		if ctx.SuggestionsOpen() {
			return []types.Action{types.PickSuggestionAction{}}, true
		}
		// Nothing to pick: move on to the results
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true

	case key.Matches(msg, m.keys.Dismiss):
		return []types.Action{types.DismissSuggestionsAction{}}, true
	}
	return nil, false
}
