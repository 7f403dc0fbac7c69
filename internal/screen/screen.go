package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/greenhope/everrich/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// TabsProvider is implemented by screens that render the site navigation
// in the header instead of a plain title.
type TabsProvider interface {
	HeaderTabs() []layout.TabLabel
}

// HintsFor returns the screen's own key hints, or fallback.
func HintsFor(s Screen, fallback []layout.KeyHint) []layout.KeyHint {
	if p, ok := s.(KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	return fallback
}

// KeyCapturer is implemented by screens nested in a shell that want a key
// before the shell interprets it as navigation.
type KeyCapturer interface {
	CapturesKey(key string) bool
}

// Captures reports whether s claims key.
func Captures(s Screen, key string) bool {
	if c, ok := s.(KeyCapturer); ok {
		return c.CapturesKey(key)
	}
	return false
}
