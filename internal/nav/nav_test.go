package nav

import "testing"

func TestNew_StartsAtHome(t *testing.T) {
	n := New()
	if n.Current() != Home {
		t.Errorf("Current = %v, want Home", n.Current())
	}
}

func TestGo(t *testing.T) {
	n := New()

	if !n.Go(Tool) {
		t.Error("expected Go(Tool) to switch")
	}
	if n.Current() != Tool {
		t.Errorf("Current = %v, want Tool", n.Current())
	}
	if n.Go(Tool) {
		t.Error("Go to the current tab should report no change")
	}
	if n.Go(Tab(99)) {
		t.Error("unknown tab should be ignored")
	}
	if n.Current() != Tool {
		t.Errorf("Current = %v after invalid Go, want Tool", n.Current())
	}
}

func TestNextPrevWrap(t *testing.T) {
	n := New()

	for i := 0; i < len(AllTabs()); i++ {
		n.Next()
	}
	if n.Current() != Home {
		t.Errorf("Next x%d should wrap to Home, got %v", len(AllTabs()), n.Current())
	}

	if got := n.Prev(); got != Contact {
		t.Errorf("Prev from Home = %v, want Contact", got)
	}
	if got := n.Next(); got != Home {
		t.Errorf("Next from Contact = %v, want Home", got)
	}
}

func TestLabels(t *testing.T) {
	for _, tab := range AllTabs() {
		if tab.Label() == "" {
			t.Errorf("tab %d has no label", tab)
		}
	}
	if Tab(-1).Label() != "" {
		t.Error("unknown tab should have empty label")
	}
}
