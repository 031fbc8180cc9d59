package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"docfinder/internal/ui/input/keys"
	"docfinder/internal/ui/input/types"
)

// BrowseMode holds the keys shared by the filter and result panels
type BrowseMode struct {
	mode types.Mode
	name string
	keys keys.KeyMap
}

func NewBrowseMode(mode types.Mode, name string, km keys.KeyMap) BrowseMode {
	return BrowseMode{
		mode: mode,
		name: name,
		keys: km,
	}
}

func (m BrowseMode) Name() string {
	return m.name
}

func (m BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey handles focus changes and the panel independent commands
func (m BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.NextZone):
		return []types.Action{types.ChangeModeAction{Mode: next(m.mode)}}, true

	case key.Matches(msg, m.keys.PrevZone):
		return []types.Action{types.ChangeModeAction{Mode: prev(m.mode)}}, true

	case key.Matches(msg, m.keys.FocusInput):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.CycleSort):
		return []types.Action{types.CycleSortAction{}}, true

	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearFiltersAction{}}, true

	case key.Matches(msg, m.keys.CopyLink):
		return []types.Action{types.CopyLinkAction{}}, true

	case key.Matches(msg, m.keys.Pager):
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenPagerAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}

func next(mode types.Mode) types.Mode {
	return (mode + 1) % 3
}

func prev(mode types.Mode) types.Mode {
	return (mode + 2) % 3
}
