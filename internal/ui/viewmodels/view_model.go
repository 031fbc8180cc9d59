package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"docfinder/internal/config"
	"docfinder/internal/ui/state"
	"docfinder/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	directory        *DirectoryViewModel
	config           *config.Config
	width            int
	height           int
	help             help.Model
	helpKeys         help.KeyMap
	helpSections     []views.HelpSection
	spinnerView      string
	statusIsError    bool
	options          []FilterOption
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, directory *DirectoryViewModel, cfg *config.Config, textInput textinput.Model) *ViewModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &ViewModel{
		state:            appState,
		directory:        directory,
		config:           cfg,
		options:          FilterOptions(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings shown in the help bar
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap, sections []views.HelpSection) {
	vm.help = helpModel
	vm.helpKeys = keys
	vm.helpSections = sections
}

// SetSpinnerView sets the current spinner frame
func (vm *ViewModel) SetSpinnerView(view string) {
	vm.spinnerView = view
}

// SetStatusError marks the status message as an error
func (vm *ViewModel) SetStatusError(isError bool) {
	vm.statusIsError = isError
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// Options returns the filter panel rows
func (vm *ViewModel) Options() []FilterOption {
	return vm.options
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vm.inputTransformer.SetFocus(vm.state.Focus)
	filterState := vm.directory.State()
	displayed := vm.directory.Displayed()

	rows := make([]views.FilterRow, len(vm.options))
	for i, o := range vm.options {
		rows[i] = views.FilterRow{
			Section:       o.Kind.Section(),
			SectionTestID: o.Kind.SectionTestID(),
			TestID:        o.TestID(),
			Label:         o.Label(),
			Radio:         o.IsRadio(),
			Checked:       o.IsChecked(filterState),
		}
	}

	suggestionService := vm.directory.SuggestionService()
	var suggestions []views.SuggestionRow
	for i, d := range suggestionService.Suggestions() {
		start, end := suggestionService.MatchRange(d.Name)
		suggestions = append(suggestions, views.SuggestionRow{
			TestID:      "suggestion-item",
			Name:        d.Name,
			MatchStart:  start,
			MatchEnd:    end,
			Highlighted: i == suggestionService.Cursor(),
		})
	}

	start := vm.state.ResultsOffset
	if start > len(displayed) {
		start = len(displayed)
	}
	end := start + vm.state.ResultsVisible
	if end > len(displayed) {
		end = len(displayed)
	}
	cards := make([]views.DoctorCard, 0, end-start)
	for _, d := range displayed[start:end] {
		cards = append(cards, views.NewDoctorCard(d))
	}

	active := len(filterState.Specialties)
	if filterState.SearchText != "" {
		active++
	}
	if filterState.Consultation != "" {
		active++
	}

	sortLabel := ""
	if filterState.Sort != "" {
		sortLabel = vm.directory.SortLabel()
	}

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Focus:         vm.state.Focus,
		Loading:       vm.directory.Phase() == PhaseLoading,
		SpinnerView:   vm.spinnerView,
		SearchInput:   vm.inputTransformer.GetInputElement(),
		Suggestions:   suggestions,
		FilterRows:    rows,
		FilterCursor:  vm.state.FilterCursor,
		Cards:         cards,
		ResultsCursor: vm.state.ResultsCursor - start,
		ResultsOffset: start,
		TotalResults:  len(displayed),
		TotalDoctors:  len(vm.directory.All()),
		ActiveFilters: active,
		SortLabel:     sortLabel,
		Link:          vm.directory.Address(),
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.statusIsError,
		ShowHelp:      vm.state.ShowHelp,
		ShowHelpBar:   vm.config.UISettings.ShowHelpBar,
		HelpModel:     vm.help,
		HelpKeys:      vm.helpKeys,
		HelpSections:  vm.helpSections,
	}
}
