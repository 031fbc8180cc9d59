package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"docfinder/internal/ui/state"
)

// EmptyResultsText is shown when no doctor matches the filters
const EmptyResultsText = "No doctors found."

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Focus  state.Focus

	Loading     bool
	SpinnerView string

	SearchInput Element // rendered text input, TestID autocomplete-input
	Suggestions []SuggestionRow

	FilterRows   []FilterRow
	FilterCursor int

	Cards         []DoctorCard // visible window of the results
	ResultsCursor int          // index within Cards, -1 when none
	ResultsOffset int
	TotalResults  int
	TotalDoctors  int
	ActiveFilters int
	SortLabel     string
	Link          string
	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	ShowHelpBar   bool
	HelpModel     help.Model
	HelpKeys      help.KeyMap
	HelpSections  []HelpSection
}

// HelpSection is a titled group of key descriptions for the help popup
type HelpSection struct {
	Title string
	Keys  [][2]string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	cardRender   *CardRenderer
	filterRender *FilterRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		cardRender:   NewCardRenderer(styles),
		filterRender: NewFilterRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderSearch(state))
	content.WriteString("\n")

	bodyHeight := BodyHeight(state.Height)
	filters := r.renderFilterPanel(state, bodyHeight)
	results := r.renderResultsPanel(state, bodyHeight, lipgloss.Width(filters))
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, filters, " ", results))
	content.WriteString("\n")

	content.WriteString(r.renderStatus(state))

	if state.ShowHelpBar && !state.ShowHelp {
		content.WriteString("\n")
		if state.HelpKeys != nil {
			content.WriteString(state.HelpModel.View(state.HelpKeys))
		} else {
			content.WriteString(r.styles.Help.Render("Press ? for help"))
		}
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderHelpContent(state.HelpSections), state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderTitle renders the logo with right-aligned indicators
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.UnsetMarginBottom().Render("docfinder")

	var indicators []string
	if state.Loading {
		indicators = append(indicators, fmt.Sprintf("%s Loading doctors", state.SpinnerView))
	} else {
		indicators = append(indicators, fmt.Sprintf("%d of %d doctors", state.TotalResults, state.TotalDoctors))
	}
	if state.ActiveFilters > 0 {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[%d filters]", state.ActiveFilters)))
	}
	if state.SortLabel != "" {
		indicators = append(indicators, fmt.Sprintf("sort: %s", state.SortLabel))
	}
	rightContent := r.styles.Dim.Render(strings.Join(indicators, " | "))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // Main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return fmt.Sprintf("%s  %s", logo, rightContent)
}

// renderSearch renders the input and a fixed block of three suggestion rows
func (r *Renderer) renderSearch(state ViewState) string {
	lines := []string{state.SearchInput.Text}
	for i := 0; i < 3; i++ {
		if i >= len(state.Suggestions) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, r.renderSuggestion(state.Suggestions[i]))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderSuggestion(row SuggestionRow) string {
	name := row.Name
	base := lipgloss.NewStyle()
	if row.Highlighted {
		base = r.styles.HighlightBg
	}
	if row.MatchStart >= 0 && row.MatchEnd <= len(name) && row.MatchStart < row.MatchEnd {
		name = base.Render(name[:row.MatchStart]) +
			r.styles.Highlight.Inherit(base).Render(name[row.MatchStart:row.MatchEnd]) +
			base.Render(name[row.MatchEnd:])
	} else {
		name = base.Render(name)
	}
	prefix := "  "
	if row.Highlighted {
		prefix = "▸ "
	}
	return "  " + prefix + name
}

func (r *Renderer) renderFilterPanel(state ViewState, height int) string {
	focused := state.Focus == FocusFilters
	panel := r.filterRender.RenderPanel(state.FilterRows, state.FilterCursor, focused, height)
	style := r.styles.Panel
	if focused {
		style = r.styles.PanelFocused
	}
	return style.Width(r.filterRender.PanelWidth(state.FilterRows) + 2).Height(height).Render(panel)
}

func (r *Renderer) renderResultsPanel(state ViewState, height, used int) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	width := termWidth - 4 - used - 1 - 4 // padding, filter panel, gap, border
	if width < 20 {
		width = 20
	}

	var body string
	switch {
	case state.Loading:
		body = r.styles.Dim.Render(fmt.Sprintf("%s Loading doctors...", state.SpinnerView))
	case state.TotalResults == 0:
		body = r.styles.Dim.Render(EmptyResultsText)
	default:
		body = r.renderCards(state, width)
	}

	style := r.styles.Panel
	if state.Focus == FocusResults {
		style = r.styles.PanelFocused
	}
	return style.Width(width + 2).Height(height).Render(body)
}

func (r *Renderer) renderCards(state ViewState, width int) string {
	var blocks []string
	if state.ResultsOffset > 0 {
		blocks = append(blocks, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ResultsOffset)))
	}
	for i, card := range state.Cards {
		selected := state.Focus == FocusResults && i == state.ResultsCursor
		blocks = append(blocks, r.cardRender.RenderCard(card, selected, width))
	}
	if below := state.TotalResults - state.ResultsOffset - len(state.Cards); below > 0 {
		blocks = append(blocks, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return strings.Join(blocks, "\n\n")
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage != "" {
		if state.StatusIsError {
			return r.styles.StatusError.Render(state.StatusMessage)
		}
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	}
	return r.styles.Status.Render(state.Link)
}

// renderHelpContent renders the help information
func (r *Renderer) renderHelpContent(sections []HelpSection) string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	keyWidth := 0
	for _, section := range sections {
		for _, k := range section.Keys {
			if w := lipgloss.Width(k[0]); w > keyWidth {
				keyWidth = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("docfinder help"))
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(r.styles.Section.Render(section.Title))
		for _, k := range section.Keys {
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(k[0]))
			b.WriteString(fmt.Sprintf("\n  %s%s  %s", keyStyle.Render(k[0]), pad, descStyle.Render(k[1])))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Focus zones, re-exported for the renderer
const (
	FocusSearch  = state.FocusSearch
	FocusFilters = state.FocusFilters
	FocusResults = state.FocusResults
)
