package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docfinder/internal/ui/input/keys"
	"docfinder/internal/ui/input/types"
)

type fakeContext struct {
	suggestions bool
	filters     int
	results     int
}

func (c fakeContext) SuggestionsOpen() bool { return c.suggestions }
func (c fakeContext) FilterCount() int      { return c.filters }
func (c fakeContext) ResultCount() int      { return c.results }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newHandler() *Handler {
	return New(keys.DefaultKeyMap(), func() int { return 4 })
}

func TestTypingInSearchMode(t *testing.T) {
	h := newHandler()
	ctx := fakeContext{}

	actions, _ := h.HandleKey(runes("q"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "q"}, actions[0], "q is typed while searching")

	actions, _ = h.HandleKey(runes("s"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "qs"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "q"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctx)
	assert.Empty(t, actions, "moving the cursor does not change the text")
}

func TestSuggestionKeys(t *testing.T) {
	h := newHandler()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, fakeContext{suggestions: true})
	assert.Equal(t, []types.Action{types.HighlightSuggestionAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, fakeContext{suggestions: true})
	assert.Equal(t, []types.Action{types.HighlightSuggestionAction{Delta: -1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{suggestions: true})
	assert.Equal(t, []types.Action{types.PickSuggestionAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, fakeContext{})
	assert.Empty(t, actions)
}

func TestFocusCycleKeepsText(t *testing.T) {
	h := newHandler()
	ctx := fakeContext{filters: 28, results: 2}

	h.HandleKey(runes("b"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, types.ModeFilters, h.CurrentMode())
	assert.Contains(t, actions, types.Action(types.DismissSuggestionsAction{}))
	assert.Contains(t, actions, types.Action(types.ChangeModeAction{Mode: types.ModeFilters}))
	assert.Equal(t, "b", h.GetTextInput().Value())

	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, types.ModeResults, h.CurrentMode())

	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, "b", h.GetTextInput().Value())

	h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx)
	assert.Equal(t, types.ModeResults, h.CurrentMode())
}

func TestFilterModeKeys(t *testing.T) {
	h := newHandler()
	ctx := fakeContext{filters: 28, results: 1}
	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	require.Equal(t, types.ModeFilters, h.CurrentMode())

	tests := []struct {
		msg  tea.KeyMsg
		want types.Action
	}{
		{runes("j"), types.MoveCursorAction{Delta: 1}},
		{tea.KeyMsg{Type: tea.KeyUp}, types.MoveCursorAction{Delta: -1}},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, types.ActivateRowAction{}},
		{tea.KeyMsg{Type: tea.KeyEnter}, types.ActivateRowAction{}},
		{runes("s"), types.CycleSortAction{}},
		{runes("x"), types.ClearFiltersAction{}},
		{runes("y"), types.CopyLinkAction{}},
		{runes("p"), types.OpenPagerAction{}},
		{runes("?"), types.ToggleHelpAction{}},
		{runes("q"), types.QuitAction{}},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			actions, _ := h.HandleKey(tt.msg, ctx)
			assert.Equal(t, []types.Action{tt.want}, actions)
		})
	}
}

func TestResultsModeKeys(t *testing.T) {
	h := newHandler()
	ctx := fakeContext{results: 10}
	h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx)
	require.Equal(t, types.ModeResults, h.CurrentMode())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyPgDown}, ctx)
	assert.Equal(t, []types.Action{types.MoveCursorAction{Delta: 4}}, actions)

	actions, _ = h.HandleKey(runes("G"), ctx)
	assert.Equal(t, []types.Action{types.MoveCursorAction{Jump: "end"}}, actions)

	actions, _ = h.HandleKey(runes("/"), ctx)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Contains(t, actions, types.Action(types.ChangeModeAction{Mode: types.ModeSearch}))
}

func TestPagerNeedsResults(t *testing.T) {
	h := newHandler()
	ctx := fakeContext{}
	h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx)
	require.Equal(t, types.ModeResults, h.CurrentMode())

	actions, _ := h.HandleKey(runes("p"), ctx)
	assert.Empty(t, actions)
}

func TestSetText(t *testing.T) {
	h := newHandler()
	h.SetText("Bob Lee")
	assert.Equal(t, "Bob Lee", h.GetTextInput().Value())
}
