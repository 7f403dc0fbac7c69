// Package diagnostic renders the risk questionnaire, its result and the
// asset spectrum editor.
package diagnostic

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/inquiry"
	"github.com/greenhope/everrich/internal/nav"
	"github.com/greenhope/everrich/internal/quiz"
	"github.com/greenhope/everrich/internal/screen"
	"github.com/greenhope/everrich/internal/screens/contact"
	"github.com/greenhope/everrich/internal/spectrum"
	"github.com/greenhope/everrich/internal/ui/components"
	"github.com/greenhope/everrich/internal/ui/layout"
	"github.com/greenhope/everrich/internal/ui/theme"
)

type (
	retakeMsg          struct{}
	openSpectrumMsg    struct{}
	closeSpectrumMsg   struct{}
	confirmSpectrumMsg struct{}
)

const (
	coarseStep = 5
	fineStep   = 1
)

// DiagnosticScreen drives a quiz.Session. The session owns progress and the
// result; the screen only keeps view state.
type DiagnosticScreen struct {
	session *quiz.Session
	logger  *slog.Logger

	options components.OptionList
	actions components.Menu

	editing         bool
	working         spectrum.Allocation
	confirmed       spectrum.Allocation
	focus           int // slider index, or len(slots) for the action row
	spectrumActions components.Menu
}

var _ screen.Screen = (*DiagnosticScreen)(nil)

// New creates a DiagnosticScreen over session. A nil logger discards records.
func New(session *quiz.Session, logger *slog.Logger) *DiagnosticScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &DiagnosticScreen{
		session:   session,
		logger:    logger,
		working:   spectrum.Default(),
		confirmed: spectrum.Default(),
	}
	d.actions = components.NewMenu([]components.MenuItem{
		{Label: "重新测试", Action: send(retakeMsg{})},
		{Label: "调整资产光谱", Action: send(openSpectrumMsg{})},
		{Label: "预约 1对1 详细解读", Action: func() tea.Cmd {
			return func() tea.Msg { return d.book(d.confirmed) }
		}},
	})
	d.spectrumActions = components.NewMenu([]components.MenuItem{
		{Label: "返回结果", Action: send(closeSpectrumMsg{})},
		{Label: "确认并预约", Action: send(confirmSpectrumMsg{})},
	})
	d.refreshOptions()
	return d
}

func send(msg tea.Msg) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return msg }
	}
}

// Session returns the underlying session.
func (d *DiagnosticScreen) Session() *quiz.Session {
	return d.session
}

// Allocation returns the spectrum being edited.
func (d *DiagnosticScreen) Allocation() spectrum.Allocation {
	return d.working
}

func (d *DiagnosticScreen) book(a spectrum.Allocation) tea.Msg {
	r, _ := d.session.Result()
	return contact.BookConsultationMsg{Diagnosis: inquiry.Diagnosis{
		Result:     r,
		Allocation: a,
		HasResult:  d.session.Done(),
	}}
}

func (d *DiagnosticScreen) refreshOptions() {
	q, ok := d.session.Current()
	if !ok {
		return
	}
	choices := make([]components.Choice, 0, len(q.Options))
	for _, o := range q.Options {
		choices = append(choices, components.Choice{Label: o.Label, Warning: o.Warning})
	}
	d.options = components.NewOptionList(choices)
}

func (d *DiagnosticScreen) Init() tea.Cmd {
	return nil
}

func (d *DiagnosticScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case retakeMsg:
		d.session.Reset()
		d.editing = false
		d.working = spectrum.Default()
		d.confirmed = spectrum.Default()
		d.actions.Selected = 0
		d.refreshOptions()
		d.logger.Info("diagnostic restarted")
		return d, nil

	case openSpectrumMsg:
		if d.session.Done() {
			d.editing = true
			d.focus = 0
			d.syncSpectrumActions()
		}
		return d, nil

	case closeSpectrumMsg:
		d.editing = false
		return d, nil

	case confirmSpectrumMsg:
		if !d.working.Valid() {
			return d, nil
		}
		d.confirmed = d.working
		d.editing = false
		a := d.confirmed
		return d, func() tea.Msg { return d.book(a) }

	case tea.KeyMsg:
		if d.editing {
			return d, d.updateSpectrum(msg)
		}
		switch d.session.State().(type) {
		case quiz.Active:
			return d, d.updateQuestion(msg)
		case quiz.Terminal:
			var cmd tea.Cmd
			d.actions, cmd = d.actions.Update(msg)
			return d, cmd
		}
	}
	return d, nil
}

func (d *DiagnosticScreen) updateQuestion(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	d.options, cmd = d.options.Update(msg)
	if d.options.Chosen < 0 {
		return cmd
	}

	state, ok := d.session.Choose(d.options.Chosen)
	if !ok {
		return cmd
	}
	if t, done := state.(quiz.Terminal); done {
		d.actions.Selected = 0
		d.logger.Info("diagnostic completed",
			"total", t.Result.Total,
			"category", t.Result.Category.Code(),
		)
		return cmd
	}
	d.refreshOptions()
	return cmd
}

func (d *DiagnosticScreen) updateSpectrum(msg tea.KeyMsg) tea.Cmd {
	slots := spectrum.AllSlots()
	key := msg.String()

	switch key {
	case "esc":
		d.editing = false
		return nil
	case "up", "k":
		if d.focus > 0 {
			d.focus--
		}
		return nil
	case "down", "j":
		if d.focus < len(slots) {
			d.focus++
		}
		return nil
	}

	if d.focus == len(slots) {
		var cmd tea.Cmd
		d.spectrumActions, cmd = d.spectrumActions.Update(msg)
		return cmd
	}

	delta := 0
	switch key {
	case "left", "h":
		delta = -coarseStep
	case "right", "l":
		delta = coarseStep
	case ",", "-":
		delta = -fineStep
	case ".", "+", "=":
		delta = fineStep
	}
	if delta != 0 {
		d.working = d.working.Nudge(slots[d.focus], delta)
		d.syncSpectrumActions()
	}
	return nil
}

// syncSpectrumActions disables proceeding until the spectrum sums to 100.
func (d *DiagnosticScreen) syncSpectrumActions() {
	valid := d.working.Valid()
	d.spectrumActions.SetDisabled(1, !valid)
	if !valid {
		d.spectrumActions.Selected = 0
	}
}

func (d *DiagnosticScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch state := d.session.State().(type) {
	case quiz.Active:
		body = d.viewQuestion(cw)
	case quiz.Terminal:
		if d.editing {
			body = d.viewSpectrum(cw)
		} else {
			body = d.viewResult(state.Result, cw)
		}
	}
	return components.Center(body, width, height)
}

func (d *DiagnosticScreen) viewQuestion(cw int) string {
	q, _ := d.session.Current()
	step, total := d.session.Step()

	parts := []string{
		components.SectionTitle("RISK ASSESSMENT", "家庭财务风险体检", cw),
		components.NewStepProgress(step, total, cw).View(),
		theme.Hint.Render(strings.ToUpper(q.Category)),
		lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Prompt),
		d.options.View(cw),
	}
	return strings.Join(parts, "\n\n")
}

func (d *DiagnosticScreen) viewResult(r quiz.Result, cw int) string {
	headline := lipgloss.NewStyle().Width(cw - 6).Align(lipgloss.Center).
		Render(theme.Gold.Bold(true).Render(r.Category.Label()))
	score := lipgloss.NewStyle().Width(cw - 6).Align(lipgloss.Center).
		Render(theme.Hint.Render(fmt.Sprintf("总分 %d · 各题得分 %s", r.Total, joinScores(r.Scores))))

	card := components.Card(strings.Join([]string{
		headline,
		score,
		"",
		components.Paragraph(content.Advice(r.Category), cw-6),
	}, "\n"), cw)

	parts := []string{
		components.SectionTitle("YOUR RESULT", "您的风险类型", cw),
		card,
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(d.actions.View()),
		theme.Hint.Render(content.Disclaimer),
	}
	return strings.Join(parts, "\n\n")
}

func (d *DiagnosticScreen) viewSpectrum(cw int) string {
	slots := spectrum.AllSlots()
	rows := make([]string, 0, len(slots))
	for i, s := range slots {
		rows = append(rows, components.Slider{
			Label:   s.Label(),
			Value:   d.working.Get(s),
			Focused: d.focus == i,
			Width:   cw - 6,
		}.View())
	}

	sum := d.working.Sum()
	var status string
	if d.working.Valid() {
		status = theme.Valid.Render(fmt.Sprintf("合计 %d%% ✓", sum))
	} else {
		status = theme.Invalid.Render(fmt.Sprintf("合计 %d%%，需要等于 100%%（剩余 %d%%）", sum, d.working.Remaining()))
	}

	actions := d.spectrumActions
	if d.focus != len(slots) {
		actions.Selected = -1
	}

	parts := []string{
		components.SectionTitle("ASSET SPECTRUM", "资产光谱", cw),
		components.Card(strings.Join(rows, "\n\n")+"\n\n"+status, cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(actions.View()),
	}
	return strings.Join(parts, "\n\n")
}

func joinScores(scores []int) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, "/")
}

func (d *DiagnosticScreen) Title() string {
	return nav.Tool.Label()
}

// CapturesKey claims the keys the questionnaire and the sliders use.
func (d *DiagnosticScreen) CapturesKey(key string) bool {
	switch key {
	case "up", "down", "left", "right", "enter", "esc", "h", "j", "k", "l":
		return true
	}
	if d.editing {
		switch key {
		case ",", ".", "-", "+", "=":
			return true
		}
		return false
	}
	if _, active := d.session.State().(quiz.Active); active {
		return len(key) == 1 && key[0] >= '1' && key[0] <= '9'
	}
	return false
}

func (d *DiagnosticScreen) KeyHints() []layout.KeyHint {
	switch {
	case d.editing:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "选择"},
			{Key: "←/→", Description: "±5%"},
			{Key: ",/.", Description: "±1%"},
			{Key: "Esc", Description: "返回"},
		}
	case d.session.Done():
		return []layout.KeyHint{
			{Key: "←/→", Description: "选择"},
			{Key: "Enter", Description: "确认"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-9", Description: "作答"},
			{Key: "↑/↓", Description: "选择"},
			{Key: "Enter", Description: "确认"},
		}
	}
}
