package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/router"
	"github.com/greenhope/everrich/internal/screen"
	"github.com/greenhope/everrich/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const logoArt = `╭───────╮
│       │
│  青   │
│       │
╰───────╯`

var glintFrames = []string{"◆", "◇"}

type tickMsg time.Time

// WelcomeScreen shows the brand splash before handing over to the site.
type WelcomeScreen struct {
	siteFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by siteFactory.
func New(siteFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		siteFactory: siteFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the remaining animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.siteFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	logoStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	rendered := logoStyle.Render(logoArt)

	if w.elapsed >= phase1End {
		glint := lipgloss.NewStyle().Foreground(theme.Accent).
			Render(glintFrames[w.tickCount%len(glintFrames)])
		lines := strings.Split(rendered, "\n")
		if len(lines) > 2 {
			lines[2] = glint + "  " + lines[2] + "  " + glint
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		advisor := content.Advisor()
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			theme.Gold.Render(advisor.Role),
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(advisor.Headline+advisor.Highlight),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("按任意键进入"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
