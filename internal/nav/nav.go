// Package nav holds the site's tab state machine. The presentation layer
// reads the current tab from a Navigator and never keeps its own copy.
package nav

// Tab is a top-level section of the site.
type Tab int

const (
	Home Tab = iota
	About
	Service
	Tool
	Contact
)

// AllTabs returns the tabs in navigation order.
func AllTabs() []Tab {
	return []Tab{Home, About, Service, Tool, Contact}
}

// Label returns the navigation label.
func (t Tab) Label() string {
	switch t {
	case Home:
		return "首页"
	case About:
		return "关于我"
	case Service:
		return "服务项目"
	case Tool:
		return "财务体检"
	case Contact:
		return "预约咨询"
	default:
		return ""
	}
}

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	return t >= Home && t <= Contact
}

// GoMsg asks the site shell to switch to Tab.
type GoMsg struct {
	Tab Tab
}

// Navigator owns the current tab.
type Navigator struct {
	current Tab
}

// New creates a Navigator positioned at Home.
func New() *Navigator {
	return &Navigator{current: Home}
}

// Current returns the active tab.
func (n *Navigator) Current() Tab {
	return n.current
}

// Go switches to t. Unknown tabs are ignored.
func (n *Navigator) Go(t Tab) bool {
	if !t.Valid() || t == n.current {
		return false
	}
	n.current = t
	return true
}

// Next moves to the following tab, wrapping to Home.
func (n *Navigator) Next() Tab {
	tabs := AllTabs()
	n.current = tabs[(int(n.current)+1)%len(tabs)]
	return n.current
}

// Prev moves to the preceding tab, wrapping to Contact.
func (n *Navigator) Prev() Tab {
	tabs := AllTabs()
	n.current = tabs[(int(n.current)-1+len(tabs))%len(tabs)]
	return n.current
}
