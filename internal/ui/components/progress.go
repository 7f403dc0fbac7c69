package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/ui/theme"
)

// StepProgress displays "Step n of total" and a horizontal bar.
type StepProgress struct {
	Step  int
	Total int
	Width int
}

// NewStepProgress creates a new step progress bar.
func NewStepProgress(step, total, width int) StepProgress {
	return StepProgress{Step: step, Total: total, Width: width}
}

// Fraction returns the filled share in [0,1].
func (p StepProgress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Step) / float64(p.Total)
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// View renders the progress bar.
func (p StepProgress) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("STEP %d OF %d", p.Step, p.Total))

	percent := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(p.Fraction()*100)))

	barWidth := p.Width - lipgloss.Width(label) - lipgloss.Width(percent) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	return label + "  " + bar + percent
}
