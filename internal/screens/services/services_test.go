package services

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/greenhope/everrich/internal/content"
)

func TestFullPageListsAccountsAndRights(t *testing.T) {
	view := New().View(100, 500)
	for _, a := range content.Accounts() {
		if !strings.Contains(view, a.Title) {
			t.Errorf("view missing account %q", a.Title)
		}
	}
	for _, r := range content.VIPRights() {
		if !strings.Contains(view, r.Title) {
			t.Errorf("view missing right %q", r.Title)
		}
	}
	if !strings.Contains(view, "价值 8000") {
		t.Error("view missing value annotation")
	}
}

func TestScrollIsClamped(t *testing.T) {
	s := New()
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset != 0 {
		t.Errorf("offset = %d, want 0", s.offset)
	}

	for i := 0; i < 1000; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := s.View(100, 10)
	if got := strings.Count(view, "\n") + 1; got > 10 {
		t.Errorf("view is %d lines, want at most 10", got)
	}
	if s.offset >= 1000 {
		t.Errorf("offset not clamped: %d", s.offset)
	}
}
