package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/nav"
	"github.com/greenhope/everrich/internal/screen"
	"github.com/greenhope/everrich/internal/ui/components"
	"github.com/greenhope/everrich/internal/ui/layout"
	"github.com/greenhope/everrich/internal/ui/theme"
)

// HomeScreen is the hero section of the site.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New() *HomeScreen {
	goTo := func(t nav.Tab) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return nav.GoMsg{Tab: t} }
		}
	}
	items := []components.MenuItem{
		{Label: "开始风险体检", Action: goTo(nav.Tool)},
		{Label: "查看服务内容", Action: goTo(nav.Service)},
	}
	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	advisor := content.Advisor()

	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, center.Render(theme.Caution.Render("★ "+advisor.Badge)))

	headline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(advisor.Headline) +
		theme.Gold.Bold(true).Render(advisor.Highlight)
	sections = append(sections, center.Render(headline))
	sections = append(sections, center.Render(components.Paragraph(advisor.Pitch, cw-8)))
	sections = append(sections, center.Render(h.menu.View()))

	if !compact {
		sections = append(sections, renderPartners(cw))
	}

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func renderPartners(cw int) string {
	label := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(theme.Hint.Render("STRATEGIC PARTNERS"))
	names := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(theme.Subtitle.Render(strings.Join(content.Partners(), "  ·  ")))
	return label + "\n" + names
}

func (h *HomeScreen) Title() string {
	return nav.Home.Label()
}

// CapturesKey claims the arrows used by the hero buttons.
func (h *HomeScreen) CapturesKey(key string) bool {
	switch key {
	case "left", "right", "h", "l", "enter":
		return true
	}
	return false
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "选择"},
		{Key: "Enter", Description: "确认"},
	}
}
