package components

import (
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// SectionTitle renders a section heading with an optional gold kicker above it.
func SectionTitle(kicker, title string, cw int) string {
	style := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	out := ""
	if kicker != "" {
		out = style.Render(theme.Gold.Render(kicker)) + "\n"
	}
	return out + style.Render(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(title))
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 2).
		Render(content)
}

// Paragraph wraps text to the content width.
func Paragraph(text string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.TextDim).
		Render(text)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// ActionButton renders a button; disabled buttons are dimmed and struck out
// and are never rendered as selected.
func ActionButton(label string, selected, disabled bool) string {
	switch {
	case disabled:
		return theme.ButtonInactive.Render(theme.Disabled.Render(label))
	case selected:
		return theme.ButtonActive.Render("▸ " + label)
	default:
		return theme.ButtonInactive.Render(label)
	}
}

// ActionRow renders buttons side by side.
func ActionRow(buttons ...string) string {
	spaced := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			spaced = append(spaced, "  ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, spaced...)
}
