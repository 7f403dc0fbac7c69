// Package notice renders the static footer pages.
package notice

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/screen"
	"github.com/greenhope/everrich/internal/ui/components"
	"github.com/greenhope/everrich/internal/ui/layout"
	"github.com/greenhope/everrich/internal/ui/theme"
)

// NoticeScreen is a read-only page of paragraphs. It is pushed on the
// router and popped with esc.
type NoticeScreen struct {
	title      string
	paragraphs []string
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates a NoticeScreen with the given title and body.
func New(title string, paragraphs []string) *NoticeScreen {
	return &NoticeScreen{title: title, paragraphs: paragraphs}
}

// Privacy returns the privacy page.
func Privacy() *NoticeScreen {
	return New("隐私条款", content.PrivacyNotice())
}

// Disclaimer returns the disclaimer page.
func Disclaimer() *NoticeScreen {
	return New("免责声明", []string{content.Disclaimer, content.Copyright})
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	parts := []string{components.SectionTitle("NOTICE", n.title, cw), ""}
	for _, p := range n.paragraphs {
		parts = append(parts, components.Paragraph(p, cw-6), "")
	}
	body := components.Card(strings.TrimRight(strings.Join(parts, "\n"), "\n"), cw)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(body)
}

func (n *NoticeScreen) Title() string {
	return n.title
}

func (n *NoticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "返回"}}
}
