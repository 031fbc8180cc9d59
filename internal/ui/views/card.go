package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docfinder/internal/domain"
)

// NewDoctorCard builds the card data for a doctor
func NewDoctorCard(d domain.Doctor) DoctorCard {
	return DoctorCard{
		TestID:     "doctor-card",
		Name:       Element{TestID: "doctor-name", Text: d.Name},
		Specialty:  Element{TestID: "doctor-specialty", Text: d.SpecialtyLine()},
		Experience: Element{TestID: "doctor-experience", Text: ExperienceText(d.Experience)},
		Fee:        Element{TestID: "doctor-fee", Text: FeeText(d.Fees)},
		Accent:     string(d.ConsultationType),
	}
}

// ExperienceText formats years of experience
func ExperienceText(years int) string {
	return fmt.Sprintf("Experience: %d years", years)
}

// FeeText formats a consultation fee in rupees
func FeeText(fees float64) string {
	return "Fee: ₹" + strconv.FormatFloat(fees, 'f', -1, 64)
}

// CardRenderer handles rendering of doctor cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{
		styles: styles,
	}
}

// RenderCard renders a card as four lines
func (c *CardRenderer) RenderCard(card DoctorCard, isSelected bool, width int) string {
	marker := lipgloss.NewStyle().Foreground(lipgloss.Color(ConsultationColor(card.Accent))).Render("│")
	if isSelected {
		marker = c.styles.Highlight.Render("▌")
	}

	lines := make([]string, 0, 4)
	for i, el := range card.Lines() {
		style := c.styles.CardField
		if i == 0 {
			style = c.styles.CardName
		}
		text := el.Text
		if width > 4 && lipgloss.Width(text) > width-2 {
			text = truncate(text, width-2)
		}
		line := style.Render(text)
		if isSelected {
			line = c.styles.SelectionBg.Render(text)
		}
		lines = append(lines, marker+" "+line)
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
