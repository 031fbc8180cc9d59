package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FilterRenderer handles rendering of the filter panel
type FilterRenderer struct {
	styles *Styles
}

// NewFilterRenderer creates a new filter renderer
func NewFilterRenderer(styles *Styles) *FilterRenderer {
	return &FilterRenderer{
		styles: styles,
	}
}

// RenderControl renders a single radio or checkbox row
func (f *FilterRenderer) RenderControl(row FilterRow, isSelected bool) string {
	var control string
	switch {
	case row.Radio && row.Checked:
		control = "(•)"
	case row.Radio:
		control = "( )"
	case row.Checked:
		control = "[x]"
	default:
		control = "[ ]"
	}

	line := fmt.Sprintf("%s %s", control, row.Label)
	if isSelected {
		return f.styles.HighlightBg.Render(line)
	}
	if row.Checked {
		return f.styles.Filter.Render(line)
	}
	return line
}

// RenderPanel renders section headers and controls, windowed to height lines
// around the cursor
func (f *FilterRenderer) RenderPanel(rows []FilterRow, cursor int, showCursor bool, height int) string {
	var lines []string
	cursorLine := 0
	section := ""
	for i, row := range rows {
		if row.Section != section {
			if section != "" {
				lines = append(lines, "")
			}
			section = row.Section
			lines = append(lines, f.styles.Section.Render(section))
		}
		if i == cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, f.RenderControl(row, showCursor && i == cursor))
	}

	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n")
	}

	start := cursorLine - height/2
	if start > len(lines)-height {
		start = len(lines) - height
	}
	if start < 0 {
		start = 0
	}
	window := append([]string(nil), lines[start:start+height]...)
	if start > 0 {
		window[0] = f.styles.Scroll.Render("↑ more")
	}
	if start+height < len(lines) {
		window[len(window)-1] = f.styles.Scroll.Render("↓ more")
	}
	return strings.Join(window, "\n")
}

// PanelWidth returns the width of the widest control
func (f *FilterRenderer) PanelWidth(rows []FilterRow) int {
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.Label) + 4; w > width {
			width = w
		}
		if w := lipgloss.Width(row.Section); w > width {
			width = w
		}
	}
	return width
}
