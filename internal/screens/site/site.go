// Package site is the tab shell that hosts one page per navigation tab.
package site

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/nav"
	"github.com/greenhope/everrich/internal/router"
	"github.com/greenhope/everrich/internal/screen"
	"github.com/greenhope/everrich/internal/screens/contact"
	"github.com/greenhope/everrich/internal/screens/notice"
	"github.com/greenhope/everrich/internal/ui/layout"
	"github.com/greenhope/everrich/internal/ui/theme"
)

// Pages maps each tab to the screen rendered under it.
type Pages map[nav.Tab]screen.Screen

// SiteScreen switches between pages. The Navigator is the only holder of
// the current tab.
type SiteScreen struct {
	nav   *nav.Navigator
	pages Pages
}

var _ screen.Screen = (*SiteScreen)(nil)

// New creates a SiteScreen positioned at the home tab.
func New(pages Pages) *SiteScreen {
	return &SiteScreen{nav: nav.New(), pages: pages}
}

// Current returns the active tab.
func (s *SiteScreen) Current() nav.Tab {
	return s.nav.Current()
}

func (s *SiteScreen) active() screen.Screen {
	return s.pages[s.nav.Current()]
}

func (s *SiteScreen) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.pages))
	for _, t := range nav.AllTabs() {
		if p, ok := s.pages[t]; ok {
			cmds = append(cmds, p.Init())
		}
	}
	return tea.Batch(cmds...)
}

func (s *SiteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.GoMsg:
		s.nav.Go(msg.Tab)
		return s, nil

	case contact.BookConsultationMsg:
		s.nav.Go(nav.Contact)
		return s, s.forward(nav.Contact, msg)

	case tea.KeyMsg:
		key := msg.String()
		if active := s.active(); active == nil || !screen.Captures(active, key) {
			if cmd, handled := s.handleKey(key); handled {
				return s, cmd
			}
		}
		return s, s.forward(s.nav.Current(), msg)
	}

	// Everything else reaches every page so timers and results land even
	// after the visitor has moved on.
	var cmds []tea.Cmd
	for _, t := range nav.AllTabs() {
		cmds = append(cmds, s.forward(t, msg))
	}
	return s, tea.Batch(cmds...)
}

func (s *SiteScreen) handleKey(key string) (tea.Cmd, bool) {
	switch key {
	case "tab", "right", "l":
		s.nav.Next()
	case "shift+tab", "left", "h":
		s.nav.Prev()
	case "1", "2", "3", "4", "5":
		s.nav.Go(nav.Tab(key[0] - '1'))
	case "p":
		return push(notice.Privacy()), true
	case "d":
		return push(notice.Disclaimer()), true
	default:
		return nil, false
	}
	return nil, true
}

func push(sc screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
}

func (s *SiteScreen) forward(t nav.Tab, msg tea.Msg) tea.Cmd {
	p, ok := s.pages[t]
	if !ok {
		return nil
	}
	updated, cmd := p.Update(msg)
	s.pages[t] = updated
	return cmd
}

func (s *SiteScreen) View(width, height int) string {
	footer := renderFooter(width)
	pageHeight := height - lipgloss.Height(footer)
	if pageHeight < 0 {
		pageHeight = 0
	}

	var page string
	if active := s.active(); active != nil {
		page = active.View(width, pageHeight)
	}
	page = lipgloss.NewStyle().Height(pageHeight).MaxHeight(pageHeight).Render(page)
	return page + "\n" + footer
}

func renderFooter(width int) string {
	links := ""
	for i, l := range content.FooterLinks() {
		if i > 0 {
			links += theme.Hint.Render("  ·  ")
		}
		links += theme.Hint.Render(l)
	}
	line := fmt.Sprintf("%s   %s", theme.Hint.Render(content.Copyright), links)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line)
}

func (s *SiteScreen) Title() string {
	if active := s.active(); active != nil {
		return active.Title()
	}
	return s.nav.Current().Label()
}

// HeaderTabs implements screen.TabsProvider.
func (s *SiteScreen) HeaderTabs() []layout.TabLabel {
	tabs := make([]layout.TabLabel, 0, len(nav.AllTabs()))
	for i, t := range nav.AllTabs() {
		tabs = append(tabs, layout.TabLabel{
			Key:    fmt.Sprintf("%d", i+1),
			Label:  t.Label(),
			Active: t == s.nav.Current(),
		})
	}
	return tabs
}

func (s *SiteScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if active := s.active(); active != nil {
		hints = screen.HintsFor(active, nil)
	}
	if active := s.active(); active != nil && screen.Captures(active, "tab") {
		return hints
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "切换栏目"},
		layout.KeyHint{Key: "P", Description: "隐私条款"},
		layout.KeyHint{Key: "Ctrl+C", Description: "退出"},
	)
}
