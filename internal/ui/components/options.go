package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/ui/theme"
)

// Choice is one row of an OptionList. Warning is rendered beneath the label
// and never disables the row.
type Choice struct {
	Label   string
	Warning string
}

// OptionList is a vertical single-choice selector. Enter or a number key
// reports the chosen index through Chosen.
type OptionList struct {
	Choices  []Choice
	Selected int
	// Chosen is the index picked by the last Update, or -1.
	Chosen int
}

// NewOptionList creates a new option list.
func NewOptionList(choices []Choice) OptionList {
	return OptionList{Choices: choices, Chosen: -1}
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	o.Chosen = -1

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Choices)-1 {
			o.Selected++
		}
	case "enter":
		if o.Selected >= 0 && o.Selected < len(o.Choices) {
			o.Chosen = o.Selected
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(o.Choices) {
				o.Selected = i
				o.Chosen = i
			}
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View(cw int) string {
	var b strings.Builder
	for i, c := range o.Choices {
		prefix := "  "
		style := theme.Unselected
		if i == o.Selected {
			prefix = "▸ "
			style = theme.Selected
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, c.Label)
		b.WriteString(lipgloss.NewStyle().Width(cw).Render(style.Render(line)))
		b.WriteString("\n")
		if c.Warning != "" {
			b.WriteString(theme.Caution.Render("     ⚠ " + c.Warning))
			b.WriteString("\n")
		}
	}
	return b.String()
}
