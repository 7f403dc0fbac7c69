package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/greenhope/everrich/internal/config"
	"github.com/greenhope/everrich/internal/inquiry"
	"github.com/greenhope/everrich/internal/nav"
	"github.com/greenhope/everrich/internal/router"
	"github.com/greenhope/everrich/internal/screens/notice"
	"github.com/greenhope/everrich/internal/screens/site"
	"github.com/greenhope/everrich/internal/screens/welcome"
)

func testOptions(skipSplash bool) Options {
	cfg := config.Default()
	cfg.SkipSplash = skipSplash
	return Options{
		Config:    cfg,
		Submitter: inquiry.NewSubmitter(cfg.Settings(), &inquiry.RecordingOpener{}, nil),
	}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func TestStartsOnSplash(t *testing.T) {
	m, err := newAppModel(testOptions(false))
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("active = %T, want splash", m.router.Active())
	}
}

func TestSkipSplashStartsOnSite(t *testing.T) {
	m, err := newAppModel(testOptions(true))
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	s, ok := m.router.Active().(*site.SiteScreen)
	if !ok {
		t.Fatalf("active = %T, want site", m.router.Active())
	}
	if s.Current() != nav.Home {
		t.Errorf("Current = %v, want Home", s.Current())
	}
}

func TestViewRendersTabsInHeader(t *testing.T) {
	m, _ := newAppModel(testOptions(true))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if !m.View().AltScreen {
		t.Error("expected alt screen")
	}
	frame := m.render()
	for _, tab := range nav.AllTabs() {
		if !strings.Contains(frame, tab.Label()) {
			t.Errorf("header missing tab %q", tab.Label())
		}
	}
}

func TestTooSmall(t *testing.T) {
	m, _ := newAppModel(testOptions(true))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "终端窗口太小") {
		t.Error("expected min-size message")
	}
}

func TestEscPopsPushedNotice(t *testing.T) {
	m, _ := newAppModel(testOptions(true))
	m, _ = update(t, m, router.PushScreenMsg{Screen: notice.Privacy()})
	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", m.router.Depth())
	}

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	m, _ = update(t, m, cmd())
	if m.router.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", m.router.Depth())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newAppModel(testOptions(true))
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestWithDefaultsFillsMissing(t *testing.T) {
	o := Options{}.withDefaults()
	if o.Config == nil || o.Logger == nil || o.Submitter == nil {
		t.Errorf("withDefaults left nil fields: %+v", o)
	}
}
