package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/ui/theme"
)

// Slider renders a labelled 0-100 gauge. It holds no state; the caller owns
// the value.
type Slider struct {
	Label   string
	Value   int
	Focused bool
	Width   int
}

// View renders the slider on one line.
func (s Slider) View() string {
	labelStyle := theme.Unselected
	marker := "  "
	if s.Focused {
		labelStyle = theme.Selected
		marker = "▸ "
	}
	label := labelStyle.Render(marker + padRight(s.Label, 10))
	value := fmt.Sprintf("%3d%%", s.Value)

	barWidth := s.Width - lipgloss.Width(label) - len(value) - 2
	if barWidth < 10 {
		barWidth = 10
	}
	filled := barWidth * s.Value / 100
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return label + " " + bar + " " + theme.Body.Render(value)
}

func padRight(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
