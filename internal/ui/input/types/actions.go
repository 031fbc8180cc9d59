package types

// Navigation actions
type MoveCursorAction struct {
	Delta int
	Jump  string // "", "home", "end"
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Suggestion actions
type HighlightSuggestionAction struct {
	Delta int // +1 next, -1 previous
}

func (a HighlightSuggestionAction) Type() string { return "highlight_suggestion" }

type PickSuggestionAction struct{}

func (a PickSuggestionAction) Type() string { return "pick_suggestion" }

type DismissSuggestionsAction struct{}

func (a DismissSuggestionsAction) Type() string { return "dismiss_suggestions" }

// Filter actions
type ActivateRowAction struct{}

func (a ActivateRowAction) Type() string { return "activate_row" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Output actions
type CopyLinkAction struct{}

func (a CopyLinkAction) Type() string { return "copy_link" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
