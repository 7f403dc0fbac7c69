package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a field label and site styling.
type TextInput struct {
	Model    textinput.Model
	Label    string
	Required bool
	MaxWidth int
}

// NewTextInput creates a new styled, unfocused text input.
func NewTextInput(label, placeholder string, required bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		Label:    label,
		Required: required,
		MaxWidth: maxWidth,
	}
}

// Focus focuses the field and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the field has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and the input.
func (t TextInput) View() string {
	label := t.Label
	if t.Required {
		label += " *"
	}
	style := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	if t.Model.Focused() {
		style = theme.Selected
	}
	return style.Render(label) + "\n" + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
