package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"docfinder/internal/ui/input/keys"
	"docfinder/internal/ui/input/types"
)

// ResultsMode scrolls through the doctor cards
type ResultsMode struct {
	BrowseMode
	pageSize func() int
}

// NewResultsMode creates the results mode; pageSize reports how many cards fit
func NewResultsMode(km keys.KeyMap, pageSize func() int) *ResultsMode {
	if pageSize == nil {
		pageSize = func() int { return 1 }
	}
	return &ResultsMode{
		BrowseMode: NewBrowseMode(types.ModeResults, "results", km),
		pageSize:   pageSize,
	}
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.MoveCursorAction{Delta: -m.pageSize()}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.MoveCursorAction{Delta: m.pageSize()}}, true

	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.MoveCursorAction{Jump: "home"}}, true

	case key.Matches(msg, m.keys.End):
		return []types.Action{types.MoveCursorAction{Jump: "end"}}, true
	}
	return m.BrowseMode.HandleKey(msg, ctx)
}
