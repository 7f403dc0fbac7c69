package inquiry

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/pkg/browser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenhope/everrich/internal/quiz"
	"github.com/greenhope/everrich/internal/spectrum"
)

func testSettings() Settings {
	return Settings{To: "advisor@example.com", SubjectPrefix: "预约咨询"}
}

func testForm() Form {
	return Form{Name: "王先生", Phone: "+852 1234 5678", Intent: 1, Message: "想了解储蓄险"}
}

func testDiagnosis() Diagnosis {
	return Diagnosis{
		Result: quiz.Result{
			Total:    9,
			Category: quiz.Aggressive,
			Scores:   []int{3, 3, 3},
		},
		Allocation: spectrum.Default(),
		HasResult:  true,
	}
}

func TestForm_Validate(t *testing.T) {
	assert.NoError(t, testForm().Validate())

	f := testForm()
	f.Name = "  "
	assert.ErrorIs(t, f.Validate(), ErrMissingName)

	f = testForm()
	f.Phone = ""
	assert.ErrorIs(t, f.Validate(), ErrMissingPhone)
}

func TestForm_IntentLabel(t *testing.T) {
	f := Form{Intent: 0}
	assert.Equal(t, "资产配置诊断", f.IntentLabel())
	f.Intent = 42
	assert.Equal(t, "其他", f.IntentLabel())
}

func TestCompose_SubjectCarriesCategory(t *testing.T) {
	d := Compose(testSettings(), testForm(), testDiagnosis(), "ABCD1234")

	assert.Equal(t, "advisor@example.com", d.To)
	assert.Equal(t, "预约咨询 - C5 进取型", d.Subject)
	assert.Equal(t, "ABCD1234", d.Reference)
}

func TestCompose_BodySummarisesSlidersAndScore(t *testing.T) {
	d := Compose(testSettings(), testForm(), testDiagnosis(), "ABCD1234")

	for _, want := range []string{
		"参考编号: ABCD1234",
		"姓名: 王先生",
		"咨询意向: 香港保险/储蓄",
		"总分: 9",
		"现金流: 10%",
		"杠杆保障: 20%",
		"高收益投资: 30%",
		"保本升值: 40%",
		"想了解储蓄险",
	} {
		assert.Contains(t, d.Body, want)
	}
}

func TestCompose_WithoutResult(t *testing.T) {
	diag := Diagnosis{Allocation: spectrum.Default()}
	d := Compose(Settings{To: "a@example.com"}, testForm(), diag, "R")

	assert.Equal(t, "未完成体检", d.Subject)
	assert.Contains(t, d.Body, "风险类型: 未完成")
	assert.NotContains(t, d.Body, "总分")
}

func TestMailtoURL_RoundTrips(t *testing.T) {
	d := Compose(testSettings(), testForm(), testDiagnosis(), "ABCD1234")
	raw := d.MailtoURL()

	assert.True(t, strings.HasPrefix(raw, "mailto:advisor@example.com?"))
	assert.NotContains(t, raw, "+", "spaces must be %20, not +")
	assert.NotContains(t, raw, " ")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, d.Subject, q.Get("subject"))
	assert.Equal(t, strings.ReplaceAll(d.Body, "\n", "\r\n"), q.Get("body"))
}

func TestMailtoURL_EscapesAmpersand(t *testing.T) {
	d := Draft{To: "a@example.com", Subject: "A&B", Body: "x=1&y=2"}
	u, err := url.Parse(d.MailtoURL())
	require.NoError(t, err)
	assert.Equal(t, "A&B", u.Query().Get("subject"))
	assert.Equal(t, "x=1&y=2", u.Query().Get("body"))
}

func TestNewReference(t *testing.T) {
	a, b := NewReference(), NewReference()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
	assert.Equal(t, strings.ToUpper(a), a)
}

func TestSubmitter_OpensDraft(t *testing.T) {
	opener := &RecordingOpener{}
	s := NewSubmitter(testSettings(), opener, nil)
	s.newRef = func() string { return "FIXED001" }

	draft, err := s.Submit(context.Background(), testForm(), testDiagnosis())
	require.NoError(t, err)

	urls := opener.URLs()
	require.Len(t, urls, 1)
	assert.Equal(t, draft.MailtoURL(), urls[0])
	assert.Equal(t, "FIXED001", draft.Reference)
}

func TestSubmitter_InvalidFormOpensNothing(t *testing.T) {
	opener := &RecordingOpener{}
	s := NewSubmitter(testSettings(), opener, nil)

	_, err := s.Submit(context.Background(), Form{Phone: "1"}, testDiagnosis())
	assert.ErrorIs(t, err, ErrMissingName)
	assert.Empty(t, opener.URLs())
}

func TestSubmitter_OpenerFailureKeepsDraft(t *testing.T) {
	boom := errors.New("no handler")
	opener := &RecordingOpener{Err: boom}
	s := NewSubmitter(testSettings(), opener, nil)

	draft, err := s.Submit(context.Background(), testForm(), testDiagnosis())
	assert.ErrorIs(t, err, boom)
	assert.NotEmpty(t, draft.Subject, "draft should still be returned")
}

func TestSubmitter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opener := &RecordingOpener{}
	_, err := NewSubmitter(testSettings(), opener, nil).Submit(ctx, testForm(), testDiagnosis())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, opener.URLs())
}

func TestBrowserOpener_OutputSilencedOnce(t *testing.T) {
	// Set once at package init; Open never writes them.
	assert.Equal(t, io.Discard, browser.Stdout)
	assert.Equal(t, io.Discard, browser.Stderr)
}
