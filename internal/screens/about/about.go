package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/nav"
	"github.com/greenhope/everrich/internal/screen"
	"github.com/greenhope/everrich/internal/ui/components"
	"github.com/greenhope/everrich/internal/ui/theme"
)

// AboutScreen introduces the advisor.
type AboutScreen struct{}

var _ screen.Screen = (*AboutScreen)(nil)

func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	advisor := content.Advisor()

	var sections []string
	sections = append(sections, components.SectionTitle(advisor.Role, advisor.Name, cw))

	bio := make([]string, 0, len(content.Bio()))
	for _, p := range content.Bio() {
		bio = append(bio, components.Paragraph(p, cw-6))
	}
	sections = append(sections, components.Card(strings.Join(bio, "\n\n"), cw))
	sections = append(sections, renderCredentials(content.Credentials(), cw))
	sections = append(sections, renderStats(content.Stats(), cw))

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

// renderCredentials lays the credentials out in two columns.
func renderCredentials(creds []string, cw int) string {
	colWidth := (cw - 2) / 2
	cell := lipgloss.NewStyle().Width(colWidth)

	var rows []string
	for i := 0; i < len(creds); i += 2 {
		left := cell.Render(theme.Valid.Render("✓ ") + theme.Body.Render(creds[i]))
		right := ""
		if i+1 < len(creds) {
			right = cell.Render(theme.Valid.Render("✓ ") + theme.Body.Render(creds[i+1]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	}
	return strings.Join(rows, "\n")
}

func renderStats(stats []content.Stat, cw int) string {
	if len(stats) == 0 {
		return ""
	}
	cell := lipgloss.NewStyle().Width(cw / len(stats)).Align(lipgloss.Center)

	cols := make([]string, 0, len(stats))
	for _, s := range stats {
		cols = append(cols, cell.Render(
			theme.Gold.Bold(true).Render(s.Value)+"\n"+theme.Hint.Render(s.Label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (a *AboutScreen) Title() string {
	return nav.About.Label()
}
