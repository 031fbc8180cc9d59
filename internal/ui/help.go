package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/noborus/ov/oviewer"

	"docfinder/internal/domain"
	"docfinder/internal/ui/input/keys"
	"docfinder/internal/ui/views"
)

// helpSections lists the key bindings for the help popup
func helpSections(km keys.KeyMap) []views.HelpSection {
	section := func(title string, bindings ...key.Binding) views.HelpSection {
		s := views.HelpSection{Title: title}
		for _, b := range bindings {
			h := b.Help()
			s.Keys = append(s.Keys, [2]string{h.Key, h.Desc})
		}
		return s
	}

	return []views.HelpSection{
		section("Panels", km.NextZone, km.PrevZone, km.FocusInput),
		{
			Title: "Search",
			Keys: [][2]string{
				{"type", "Filter doctors by name"},
				{"↑/↓", "Highlight a suggestion"},
				{"enter", "Use the highlighted suggestion"},
				{"esc", "Hide suggestions"},
			},
		},
		section("Filters & Results", km.Up, km.Down, km.PageUp, km.PageDown, km.Home, km.End, km.Toggle),
		section("Other", km.CycleSort, km.Clear, km.CopyLink, km.Pager, km.Help, km.Quit),
	}
}

// buildResultsReport generates a plain text listing of the displayed doctors
// suitable for pager display
func buildResultsReport(link string, displayed []domain.Doctor, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "docfinder: %d of %d doctors\n", len(displayed), total)
	fmt.Fprintf(&b, "%s\n", link)
	for _, d := range displayed {
		card := views.NewDoctorCard(d)
		b.WriteString("\n")
		b.WriteString(card.Name.Text)
		b.WriteString("\n")
		for _, el := range card.Lines()[1:] {
			b.WriteString("  ")
			b.WriteString(el.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// pagerCommand shows text in the ov pager. It implements tea.ExecCommand
// so the program releases the terminal while the pager runs.
type pagerCommand struct {
	content string
}

func newPagerCommand(content string) *pagerCommand {
	return &pagerCommand{content: content}
}

// Run opens the pager and blocks until it is closed
func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Do not write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}
