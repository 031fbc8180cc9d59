package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docfinder/internal/ui/input/keys"
	"docfinder/internal/ui/input/modes"
	"docfinder/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Search box, shared with the search mode
	keys        keys.KeyMap
}

// New creates a handler that starts in search mode. pageSize reports how
// many result cards fit on screen.
func New(km keys.KeyMap, pageSize func() int) *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search doctors by name"
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.CharLimit = 128
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        km,
	}

	h.modes[types.ModeSearch] = modes.NewSearchMode(km, h.textInput)
	h.modes[types.ModeFilters] = modes.NewFiltersMode(km)
	h.modes[types.ModeResults] = modes.NewResultsMode(km, pageSize)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}

		allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		h.currentMode = changeMode.Mode
		allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
		allActions = append(allActions, changeMode)

		if h.currentMode == types.ModeSearch {
			cmd = textinput.Blink
		}
	}

	// Keys the search mode leaves alone are typed into the text input
	if !consumed && h.currentMode == types.ModeSearch {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeSearch
	}
	return h.currentMode
}

// SetText replaces the search text, for example after a suggestion was picked
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeSearch {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

// GetTextInput returns the text input model
func (h *Handler) GetTextInput() *textinput.Model {
	if h == nil {
		return nil
	}
	return h.textInput
}

// Keys returns the key bindings
func (h *Handler) Keys() keys.KeyMap {
	return h.keys
}
