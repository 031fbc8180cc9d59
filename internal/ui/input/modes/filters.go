package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"docfinder/internal/ui/input/keys"
	"docfinder/internal/ui/input/types"
)

// FiltersMode moves through the filter controls and toggles them
type FiltersMode struct {
	BrowseMode
}

func NewFiltersMode(km keys.KeyMap) *FiltersMode {
	return &FiltersMode{
		BrowseMode: NewBrowseMode(types.ModeFilters, "filters", km),
	}
}

func (m *FiltersMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.MoveCursorAction{Jump: "home"}}, true

	case key.Matches(msg, m.keys.End):
		return []types.Action{types.MoveCursorAction{Jump: "end"}}, true

	case key.Matches(msg, m.keys.Toggle):
		if ctx.FilterCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ActivateRowAction{}}, true
	}
	return m.BrowseMode.HandleKey(msg, ctx)
}
