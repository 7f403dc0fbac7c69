package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/config"
	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/inquiry"
	"github.com/greenhope/everrich/internal/nav"
	"github.com/greenhope/everrich/internal/quiz"
	"github.com/greenhope/everrich/internal/router"
	"github.com/greenhope/everrich/internal/screen"
	"github.com/greenhope/everrich/internal/screens/about"
	"github.com/greenhope/everrich/internal/screens/contact"
	"github.com/greenhope/everrich/internal/screens/diagnostic"
	"github.com/greenhope/everrich/internal/screens/home"
	"github.com/greenhope/everrich/internal/screens/services"
	"github.com/greenhope/everrich/internal/screens/site"
	"github.com/greenhope/everrich/internal/screens/welcome"
	"github.com/greenhope/everrich/internal/ui/layout"
)

// Options holds the dependencies of the UI.
type Options struct {
	Config    *config.Config
	Submitter *inquiry.Submitter
	Logger    *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Submitter == nil {
		o.Submitter = inquiry.NewSubmitter(o.Config.Settings(), inquiry.BrowserOpener{}, o.Logger)
	}
	return o
}

// NewSite builds the tab shell with a fresh quiz session.
func NewSite(opts Options) (*site.SiteScreen, error) {
	opts = opts.withDefaults()
	session, err := quiz.NewSession(content.Questions(), quiz.DefaultTable())
	if err != nil {
		return nil, fmt.Errorf("create quiz session: %w", err)
	}
	return site.New(site.Pages{
		nav.Home:    home.New(),
		nav.About:   about.New(),
		nav.Service: services.New(),
		nav.Tool:    diagnostic.New(session, opts.Logger),
		nav.Contact: contact.New(opts.Submitter, opts.Config.ConfirmDelay),
	}), nil
}

// newAppModel creates a new AppModel starting at the splash, or directly at
// the site when the splash is disabled.
func newAppModel(opts Options) (AppModel, error) {
	opts = opts.withDefaults()
	s, err := NewSite(opts)
	if err != nil {
		return AppModel{}, err
	}

	var initial screen.Screen = s
	if !opts.Config.SkipSplash {
		initial = welcome.New(func() screen.Screen { return s })
	}
	return AppModel{
		router: router.New(initial),
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var tabs []layout.TabLabel
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.TabsProvider); ok {
			tabs = p.HeaderTabs()
		}
	}

	header := layout.RenderHeader(content.Advisor().Brand, title, tabs, m.width)

	fallback := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "退出"},
	}
	if m.router.Depth() > 1 {
		fallback = []layout.KeyHint{
			{Key: "Esc", Description: "返回"},
			{Key: "Ctrl+C", Description: "退出"},
		}
	}
	hints := fallback
	if active != nil {
		hints = screen.HintsFor(active, fallback)
	}

	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
