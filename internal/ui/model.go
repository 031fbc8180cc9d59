package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"docfinder/internal/config"
	"docfinder/internal/directory"
	"docfinder/internal/domain"
	"docfinder/internal/ui/input"
	"docfinder/internal/ui/input/keys"
	inputtypes "docfinder/internal/ui/input/types"
	"docfinder/internal/ui/services/events"
	"docfinder/internal/ui/services/query"
	"docfinder/internal/ui/state"
	"docfinder/internal/ui/viewmodels"
	"docfinder/internal/ui/views"
)

// statusTimeout is how long transient status messages stay visible
const statusTimeout = 3 * time.Second

// Model is the Bubble Tea model of the browser
type Model struct {
	bus    events.EventBus
	config *config.Config
	state  *state.AppState
	logger *zap.Logger

	width   int
	height  int
	help    help.Model
	spinner spinner.Model

	source       directory.Source
	directory    *viewmodels.DirectoryViewModel
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler

	clipboard func(string) error
	pager     func(string) tea.ExecCommand

	statusSeq int
}

// NewModel creates the UI model. The filter state is seeded from q before
// the first frame; the directory is fetched from src when the program starts.
func NewModel(cfg *config.Config, src directory.Source, q *query.Service, bus events.EventBus, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if bus == nil {
		bus = &events.NullBus{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	appState := state.NewAppState()
	m := &Model{
		bus:       bus,
		config:    cfg,
		state:     appState,
		logger:    logger,
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		source:    src,
		directory: viewmodels.NewDirectoryViewModel(q, bus, logger),
		renderer:  views.NewRenderer(),
		clipboard: clipboard.WriteAll,
		pager: func(content string) tea.ExecCommand {
			return newPagerCommand(content)
		},
	}

	km := keys.DefaultKeyMap()
	m.inputHandler = input.New(km, func() int { return m.state.ResultsVisible })
	m.inputHandler.SetText(m.directory.State().SearchText)

	m.viewModel = viewmodels.NewViewModel(appState, m.directory, cfg, *m.inputHandler.GetTextInput())
	m.viewModel.SetHelp(m.help, km, helpSections(km))

	return m
}

// SetClipboard replaces the function used to copy the shareable link
func (m *Model) SetClipboard(write func(string) error) {
	m.clipboard = write
}

// Address returns the current shareable link
func (m *Model) Address() string {
	return m.directory.Address()
}

// Directory exposes the directory view model
func (m *Model) Directory() *viewmodels.DirectoryViewModel {
	return m.directory
}

// Init starts the spinner, the cursor blink and the one-time fetch
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchDirectory(), m.inputHandler.Init())
}

// fetchDirectory returns a command that loads the directory once
func (m *Model) fetchDirectory() tea.Cmd {
	src := m.source
	timeout := m.config.Timeout.Duration
	logger := m.logger
	return func() tea.Msg {
		if src == nil {
			return directoryLoadedMsg{doctors: []domain.Doctor{}, failed: true}
		}
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		doctors, failed := directory.Load(ctx, src, logger)
		return directoryLoadedMsg{doctors: doctors, failed: failed}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.viewModel.SetHelp(m.help, m.inputHandler.Keys(), helpSections(m.inputHandler.Keys()))
		m.updateResultsCapacity()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case directoryLoadedMsg:
		if m.directory.SetDirectory(msg.doctors, msg.failed) {
			m.state.EnsureResultVisible(len(m.directory.Displayed()))
			if msg.failed {
				return m, m.setStatus("Could not load the doctor directory", true)
			}
		}
		return m, nil

	case spinner.TickMsg:
		if m.directory.Phase() != viewmodels.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("failed to copy link", zap.Error(msg.err))
			m.bus.Publish(domain.ErrorEvent{Message: "failed to copy link", Err: msg.err})
			return m, m.setStatus(fmt.Sprintf("Copy failed: %s", msg.link), true)
		}
		m.bus.Publish(domain.LinkCopiedEvent{Link: msg.link})
		return m, m.setStatus("Link copied to clipboard", false)

	case pagerExitMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
			m.bus.Publish(domain.ErrorEvent{Message: "pager failed", Err: msg.err})
			return m, m.setStatus("Could not open the pager", true)
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq != m.statusSeq {
			// A newer status is showing
			return m, nil
		}
		m.state.StatusMessage = ""
		m.viewModel.SetStatusError(false)
		return m, nil

	default:
		// Cursor blink and other text input messages
		cmd := m.inputHandler.Update(msg)
		m.viewModel.UpdateTextInput(*m.inputHandler.GetTextInput())
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The help popup swallows keys until it is closed
	if m.state.ShowHelp {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "?", "esc", "q":
			m.state.ShowHelp = false
		}
		return m, nil
	}

	ctx := &input.ModelContext{
		Directory: m.directory,
		Options:   m.viewModel.Options(),
	}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}

	m.viewModel.UpdateTextInput(*m.inputHandler.GetTextInput())
	return m, tea.Batch(cmds...)
}

// processAction executes a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.ChangeModeAction:
		m.state.Focus = focusFor(a.Mode)

	case inputtypes.UpdateTextAction:
		m.directory.SetSearchText(a.Text)
		m.filtersChanged()

	case inputtypes.HighlightSuggestionAction:
		suggestions := m.directory.SuggestionService()
		if a.Delta < 0 {
			suggestions.Previous()
		} else {
			suggestions.Next()
		}

	case inputtypes.PickSuggestionAction:
		i := m.directory.SuggestionService().Cursor()
		if i < 0 {
			i = 0
		}
		if m.directory.SelectSuggestion(i) {
			m.inputHandler.SetText(m.directory.State().SearchText)
			m.filtersChanged()
		}

	case inputtypes.DismissSuggestionsAction:
		m.directory.SuggestionService().Clear()

	case inputtypes.MoveCursorAction:
		m.moveCursor(a)

	case inputtypes.ActivateRowAction:
		options := m.viewModel.Options()
		if m.state.FilterCursor >= 0 && m.state.FilterCursor < len(options) {
			m.directory.Activate(options[m.state.FilterCursor])
			m.filtersChanged()
		}

	case inputtypes.CycleSortAction:
		m.directory.CycleSort()
		m.filtersChanged()

	case inputtypes.ClearFiltersAction:
		m.directory.ClearFilters()
		m.inputHandler.SetText("")
		m.filtersChanged()

	case inputtypes.CopyLinkAction:
		return m.copyLink()

	case inputtypes.OpenPagerAction:
		report := buildResultsReport(m.directory.Address(), m.directory.Displayed(), len(m.directory.All()))
		return tea.Exec(m.pager(report), func(err error) tea.Msg {
			return pagerExitMsg{err: err}
		})

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
	}
	return nil
}

func (m *Model) moveCursor(a inputtypes.MoveCursorAction) {
	switch m.state.Focus {
	case state.FocusFilters:
		count := len(m.viewModel.Options())
		switch a.Jump {
		case "home":
			m.state.FilterCursor = 0
		case "end":
			m.state.FilterCursor = count - 1
		default:
			m.state.MoveFilterCursor(a.Delta, count)
		}
	case state.FocusResults:
		count := len(m.directory.Displayed())
		switch a.Jump {
		case "home":
			m.state.ResultsCursor = 0
			m.state.EnsureResultVisible(count)
		case "end":
			m.state.ResultsCursor = count - 1
			m.state.EnsureResultVisible(count)
		default:
			m.state.MoveResultsCursor(a.Delta, count)
		}
	}
}

// filtersChanged scrolls the results back to the top
func (m *Model) filtersChanged() {
	m.state.ResetResults()
	m.state.EnsureResultVisible(len(m.directory.Displayed()))
}

func (m *Model) updateResultsCapacity() {
	visible := views.ResultsCapacity(m.height)
	if limit := m.config.UISettings.ResultsHeight; limit > 0 && limit < visible {
		visible = limit
	}
	m.state.ResultsVisible = visible
	m.state.EnsureResultVisible(len(m.directory.Displayed()))
}

func (m *Model) copyLink() tea.Cmd {
	link := m.directory.Address()
	write := m.clipboard
	return func() tea.Msg {
		return clipboardMsg{link: link, err: write(link)}
	}
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.state.StatusMessage = message
	m.viewModel.SetStatusError(isError)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func focusFor(mode inputtypes.Mode) state.Focus {
	switch mode {
	case inputtypes.ModeFilters:
		return state.FocusFilters
	case inputtypes.ModeResults:
		return state.FocusResults
	default:
		return state.FocusSearch
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	m.viewModel.SetSpinnerView(m.spinner.View())
	return m.renderer.Render(m.viewModel.BuildViewState())
}
