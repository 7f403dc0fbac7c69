package services

import (
	"fmt"
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

// ServicesScreen lists the five accounts and the VIP benefits. The page is
// taller than most terminals, so it scrolls.
type ServicesScreen struct {
	offset int
}

var _ screen.Screen = (*ServicesScreen)(nil)

func New() *ServicesScreen {
	return &ServicesScreen{}
}

func (s *ServicesScreen) Init() tea.Cmd {
	return nil
}

func (s *ServicesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "home", "g":
			s.offset = 0
		}
	}
	return s, nil
}

func (s *ServicesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	page := strings.Join([]string{
		components.SectionTitle("OUR SERVICES", "幸福五大账户", cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(components.Paragraph(content.AccountsIntro, cw-8)),
		renderAccounts(content.Accounts(), cw),
		components.SectionTitle("VIP", "专属家庭财务规划服务", cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(components.Paragraph(content.VIPIntro, cw-8)),
		renderRights(content.VIPRights(), cw),
	}, "\n\n")

	lines := strings.Split(page, "\n")
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	end := s.offset + height
	if end > len(lines) {
		end = len(lines)
	}

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(strings.Join(lines[s.offset:end], "\n"))
}

func renderAccounts(accounts []content.Account, cw int) string {
	rows := make([]string, 0, len(accounts))
	for i, a := range accounts {
		title := theme.Gold.Bold(true).Render(fmt.Sprintf("0%d  %s", i+1, a.Title))
		rows = append(rows, title+"\n"+theme.Body.Render(a.Desc))
	}
	return components.Card(strings.Join(rows, "\n\n"), cw)
}

func renderRights(rights []content.VIPRight, cw int) string {
	rows := make([]string, 0, len(rights))
	for _, r := range rights {
		title := theme.Title.Render(fmt.Sprintf("%d. %s", r.ID, r.Title))
		if r.Value != "" {
			title += "  " + theme.Caution.Render("价值 "+r.Value)
		}
		rows = append(rows, title+"\n"+components.Paragraph(r.Desc, cw-6))
	}
	return components.Card(strings.Join(rows, "\n"), cw)
}

func (s *ServicesScreen) Title() string {
	return nav.Service.Label()
}

func (s *ServicesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "↑/↓", Description: "滚动"}}
}
