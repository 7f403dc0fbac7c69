package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/inquiry"
	"github.com/greenhope/everrich/internal/nav"
	"github.com/greenhope/everrich/internal/screen"
	"github.com/greenhope/everrich/internal/spectrum"
	"github.com/greenhope/everrich/internal/ui/components"
	"github.com/greenhope/everrich/internal/ui/layout"
	"github.com/greenhope/everrich/internal/ui/theme"
)

// BookConsultationMsg carries a diagnosis into the contact form. The site
// shell switches to the contact tab when it sees one.
type BookConsultationMsg struct {
	Diagnosis inquiry.Diagnosis
}

// submittedMsg is the outcome of a submit command.
type submittedMsg struct {
	draft inquiry.Draft
	err   error
}

// confirmResetMsg clears the submitted confirmation.
type confirmResetMsg struct{}

// Focusable rows, top to bottom.
const (
	fieldName = iota
	fieldPhone
	fieldIntent
	fieldMessage
	fieldSubmit
	fieldCount
)

// ContactScreen is the consultation form.
type ContactScreen struct {
	submitter    *inquiry.Submitter
	confirmDelay time.Duration

	name    components.TextInput
	phone   components.TextInput
	message components.TextInput
	intent  int

	focus   int
	editing bool

	diagnosis  inquiry.Diagnosis
	submitting bool
	submitted  bool
	lastDraft  inquiry.Draft
	lastErr    error
}

var _ screen.Screen = (*ContactScreen)(nil)

// New creates a ContactScreen. confirmDelay is how long the submitted
// confirmation stays up.
func New(submitter *inquiry.Submitter, confirmDelay time.Duration) *ContactScreen {
	return &ContactScreen{
		submitter:    submitter,
		confirmDelay: confirmDelay,
		name:         components.NewTextInput("您的称呼", "张先生 / 李女士", true, 40),
		phone:        components.NewTextInput("联系电话", "+852 / +86", true, 30),
		message:      components.NewTextInput("留言", "想了解的问题（可选）", false, 200),
		diagnosis:    inquiry.Diagnosis{Allocation: spectrum.Default()},
	}
}

func (c *ContactScreen) Init() tea.Cmd {
	return nil
}

// Form returns the current field values.
func (c *ContactScreen) Form() inquiry.Form {
	return inquiry.Form{
		Name:    c.name.Value(),
		Phone:   c.phone.Value(),
		Intent:  c.intent,
		Message: c.message.Value(),
	}
}

// Submitted reports whether the confirmation is showing.
func (c *ContactScreen) Submitted() bool {
	return c.submitted
}

func (c *ContactScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case BookConsultationMsg:
		c.diagnosis = msg.Diagnosis
		if msg.Diagnosis.HasResult {
			c.intent = 0
		}
		c.stopEditing()
		c.focus = fieldName
		return c, nil

	case submittedMsg:
		c.submitting = false
		c.lastDraft = msg.draft
		c.lastErr = msg.err
		if msg.err != nil {
			return c, nil
		}
		c.submitted = true
		return c, tea.Tick(c.confirmDelay, func(time.Time) tea.Msg {
			return confirmResetMsg{}
		})

	case confirmResetMsg:
		c.submitted = false
		return c, nil

	case tea.KeyMsg:
		if c.editing {
			return c.updateEditing(msg)
		}
		return c.updateNavigating(msg)
	}

	// Cursor blink and other messages go to the field being edited.
	if c.editing {
		return c, c.forwardToField(msg)
	}
	return c, nil
}

func (c *ContactScreen) updateEditing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		c.stopEditing()
		return c, nil
	case "enter", "tab":
		c.stopEditing()
		c.moveFocus(1)
		return c, nil
	}
	return c, c.forwardToField(msg)
}

func (c *ContactScreen) updateNavigating(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		c.moveFocus(-1)
	case "down", "j":
		c.moveFocus(1)
	case "left", "h":
		if c.focus == fieldIntent {
			c.cycleIntent(-1)
		}
	case "right", "l":
		if c.focus == fieldIntent {
			c.cycleIntent(1)
		}
	case "enter":
		switch c.focus {
		case fieldName, fieldPhone, fieldMessage:
			return c, c.startEditing()
		case fieldIntent:
			c.cycleIntent(1)
		case fieldSubmit:
			return c, c.submit()
		}
	}
	return c, nil
}

func (c *ContactScreen) field(i int) *components.TextInput {
	switch i {
	case fieldName:
		return &c.name
	case fieldPhone:
		return &c.phone
	case fieldMessage:
		return &c.message
	}
	return nil
}

func (c *ContactScreen) forwardToField(msg tea.Msg) tea.Cmd {
	f := c.field(c.focus)
	if f == nil {
		return nil
	}
	var cmd tea.Cmd
	*f, cmd = f.Update(msg)
	return cmd
}

func (c *ContactScreen) startEditing() tea.Cmd {
	f := c.field(c.focus)
	if f == nil {
		return nil
	}
	c.editing = true
	return f.Focus()
}

func (c *ContactScreen) stopEditing() {
	if f := c.field(c.focus); f != nil {
		f.Blur()
	}
	c.editing = false
}

func (c *ContactScreen) moveFocus(delta int) {
	c.focus += delta
	if c.focus < 0 {
		c.focus = 0
	}
	if c.focus >= fieldCount {
		c.focus = fieldCount - 1
	}
}

func (c *ContactScreen) cycleIntent(delta int) {
	n := len(inquiry.Intents())
	c.intent = (c.intent + delta + n) % n
}

// canSubmit reports whether the submit button is enabled.
func (c *ContactScreen) canSubmit() bool {
	return !c.submitting && !c.submitted && c.Form().Validate() == nil
}

func (c *ContactScreen) submit() tea.Cmd {
	if !c.canSubmit() {
		return nil
	}
	c.submitting = true
	sub := c.submitter
	form := c.Form()
	diagnosis := c.diagnosis
	return func() tea.Msg {
		draft, err := sub.Submit(context.Background(), form, diagnosis)
		return submittedMsg{draft: draft, err: err}
	}
}

func (c *ContactScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, components.SectionTitle("CONTACT", "预约 1对1 专属咨询", cw))
	sections = append(sections, renderContactInfo(cw))
	if line := c.diagnosisLine(); line != "" {
		sections = append(sections, line)
	}

	if c.submitted {
		sections = append(sections, c.renderConfirmation(cw))
	} else {
		sections = append(sections, components.Card(c.renderForm(cw), cw))
		if c.lastErr != nil {
			sections = append(sections, c.renderError(cw))
		}
	}
	sections = append(sections, theme.Hint.Render(content.Confidentiality))

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func renderContactInfo(cw int) string {
	info := content.ContactInfo()
	rows := []string{
		theme.Gold.Render("地址 ") + theme.Body.Render(info.Address),
		theme.Gold.Render("电话 ") + theme.Body.Render(info.Phone),
		theme.Gold.Render("邮箱 ") + theme.Body.Render(info.Email),
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(rows, "\n"))
}

func (c *ContactScreen) diagnosisLine() string {
	if !c.diagnosis.HasResult {
		return ""
	}
	r := c.diagnosis.Result
	return theme.Valid.Render("✓ ") + theme.Body.Render(
		fmt.Sprintf("已附带财务体检结果：%s · 总分 %d", r.Category.Label(), r.Total))
}

func (c *ContactScreen) renderForm(cw int) string {
	rows := []string{
		c.name.View(),
		c.phone.View(),
		c.renderIntent(),
		c.message.View(),
		c.renderSubmit(),
	}
	return strings.Join(rows, "\n\n")
}

func (c *ContactScreen) renderIntent() string {
	label := theme.Unselected.Bold(true).Render("咨询意向")
	value := theme.Body.Render(c.Form().IntentLabel())
	if c.focus == fieldIntent {
		label = theme.Selected.Render("咨询意向")
		value = theme.Gold.Render("◀ " + c.Form().IntentLabel() + " ▶")
	}
	return label + "\n" + value
}

func (c *ContactScreen) renderSubmit() string {
	label := "提交咨询"
	if c.submitting {
		label = "正在生成邮件..."
	}
	return components.ActionButton(label, c.focus == fieldSubmit, !c.canSubmit())
}

func (c *ContactScreen) renderConfirmation(cw int) string {
	body := theme.Valid.Render("✓ 邮件草稿已生成") + "\n\n" +
		theme.Body.Render("参考编号 "+c.lastDraft.Reference) + "\n" +
		components.Paragraph("请在邮件客户端中确认并发送，顾问将尽快与您联系。", cw-6)
	return components.Card(body, cw)
}

func (c *ContactScreen) renderError(cw int) string {
	if errors.Is(c.lastErr, inquiry.ErrMissingName) || errors.Is(c.lastErr, inquiry.ErrMissingPhone) {
		return theme.Invalid.Render("请填写称呼与联系电话")
	}
	msg := theme.Invalid.Render("无法打开邮件客户端，请复制以下链接：")
	if c.lastDraft.Reference == "" {
		return msg
	}
	return msg + "\n" + lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).
		Render(c.lastDraft.MailtoURL())
}

func (c *ContactScreen) Title() string {
	return nav.Contact.Label()
}

// CapturesKey claims every key while a field is being edited, and the
// arrows the form navigates with otherwise.
func (c *ContactScreen) CapturesKey(key string) bool {
	if c.editing {
		return true
	}
	switch key {
	case "up", "down", "enter", "k", "j":
		return true
	case "left", "right", "h", "l":
		return c.focus == fieldIntent
	}
	return false
}

func (c *ContactScreen) KeyHints() []layout.KeyHint {
	if c.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "完成"},
			{Key: "Esc", Description: "取消输入"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "移动"},
		{Key: "Enter", Description: "编辑/提交"},
	}
	if c.focus == fieldIntent {
		hints = append(hints, layout.KeyHint{Key: "←/→", Description: "切换意向"})
	}
	return hints
}
