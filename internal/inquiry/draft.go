package inquiry

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/greenhope/everrich/internal/content"
	"github.com/greenhope/everrich/internal/quiz"
	"github.com/greenhope/everrich/internal/spectrum"
)

// Diagnosis carries the diagnostic outcome into a draft. HasResult is false
// when the visitor books a consultation without finishing the quiz.
type Diagnosis struct {
	Result     quiz.Result
	Allocation spectrum.Allocation
	HasResult  bool
}

// Settings controls draft addressing.
type Settings struct {
	To            string
	SubjectPrefix string
}

// Draft is a pre-filled email handed to the platform mail handler.
type Draft struct {
	Reference string
	To        string
	Subject   string
	Body      string
}

// NewReference returns a short reference code for a draft.
func NewReference() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// Compose builds the draft for a form and diagnosis.
func Compose(s Settings, f Form, d Diagnosis, ref string) Draft {
	category := "未完成体检"
	if d.HasResult {
		category = d.Result.Category.Label()
	}
	subject := category
	if s.SubjectPrefix != "" {
		subject = fmt.Sprintf("%s - %s", s.SubjectPrefix, category)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "参考编号: %s\n", ref)
	fmt.Fprintf(&b, "姓名: %s\n", strings.TrimSpace(f.Name))
	fmt.Fprintf(&b, "联系电话: %s\n", strings.TrimSpace(f.Phone))
	fmt.Fprintf(&b, "咨询意向: %s\n", f.IntentLabel())

	b.WriteString("\n[财务体检]\n")
	if d.HasResult {
		fmt.Fprintf(&b, "风险类型: %s\n", d.Result.Category.Label())
		fmt.Fprintf(&b, "总分: %d\n", d.Result.Total)
		if advice := content.Advice(d.Result.Category); advice != "" {
			fmt.Fprintf(&b, "建议: %s\n", advice)
		}
	} else {
		b.WriteString("风险类型: 未完成\n")
	}
	b.WriteString("资产光谱:\n")
	b.WriteString(d.Allocation.Summary())

	if msg := strings.TrimSpace(f.Message); msg != "" {
		b.WriteString("\n留言:\n")
		b.WriteString(msg)
		b.WriteString("\n")
	}

	return Draft{
		Reference: ref,
		To:        s.To,
		Subject:   subject,
		Body:      b.String(),
	}
}

// MailtoURL encodes the draft as an RFC 6068 mailto URL. Spaces are %20 and
// line breaks CRLF, which mail clients expect.
func (d Draft) MailtoURL() string {
	body := strings.ReplaceAll(d.Body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "\r\n")
	return "mailto:" + d.To +
		"?subject=" + escape(d.Subject) +
		"&body=" + escape(body)
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
