package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestions() []Question {
	opts := []Option{
		{Label: "low", Score: 1},
		{Label: "mid", Score: 3},
		{Label: "high", Score: 5},
	}
	return []Question{
		{Position: 1, Prompt: "q1", Options: opts},
		{Position: 2, Prompt: "q2", Options: opts},
		{Position: 3, Prompt: "q3", Options: opts},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(threeQuestions(), DefaultTable())
	require.NoError(t, err)
	return s
}

// allSequences returns every answer sequence over {1,3,5}^3.
func allSequences() [][]int {
	values := []int{1, 3, 5}
	var out [][]int
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				out = append(out, []int{a, b, c})
			}
		}
	}
	return out
}

func answerAll(s *Session, scores []int) State {
	var st State
	for _, v := range scores {
		st = s.Submit(v)
	}
	return st
}

func TestNewSession_StartsActiveZero(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, Active{Index: 0}, s.State())
	assert.Empty(t, s.Scores())
	assert.False(t, s.Done())

	n, of := s.Step()
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, of)
}

func TestNewSession_Errors(t *testing.T) {
	_, err := NewSession(nil, DefaultTable())
	assert.ErrorIs(t, err, ErrNoQuestions)

	qs := threeQuestions()
	qs[1].Options = nil
	_, err = NewSession(qs, DefaultTable())
	assert.ErrorIs(t, err, ErrEmptyOptions)

	_, err = NewSession(threeQuestions(), Table{})
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestSubmit_AdvancesUntilLast(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, Active{Index: 1}, s.Submit(3))
	assert.Equal(t, Active{Index: 2}, s.Submit(5))
	_, done := s.Result()
	assert.False(t, done, "no result before the last answer")

	st := s.Submit(1)
	term, ok := st.(Terminal)
	require.True(t, ok, "expected Terminal, got %T", st)
	assert.Equal(t, 9, term.Result.Total)
	assert.Equal(t, []int{3, 5, 1}, term.Result.Scores)
	assert.True(t, s.Done())
	assert.Equal(t, 3, s.Index())
}

func TestSubmit_AggregateIsExactSum(t *testing.T) {
	for _, seq := range allSequences() {
		s := newTestSession(t)
		st := answerAll(s, seq)

		term, ok := st.(Terminal)
		require.True(t, ok, "sequence %v did not terminate", seq)
		assert.Equal(t, seq[0]+seq[1]+seq[2], term.Result.Total, "sequence %v", seq)
		assert.Equal(t, seq, s.Scores())
	}
}

func TestSubmit_AfterTerminalIsNoop(t *testing.T) {
	s := newTestSession(t)
	answerAll(s, []int{5, 5, 5})
	before, _ := s.Result()

	st := s.Submit(1)

	after, ok := st.(Terminal)
	require.True(t, ok)
	assert.Equal(t, before, after.Result)
	assert.Len(t, s.Scores(), 3)
}

func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		total    int
		category Category
	}{
		{"all lowest", []int{1, 1, 1}, 3, Conservative},
		{"all middle", []int{3, 3, 3}, 9, Aggressive},
		{"all highest", []int{5, 5, 5}, 15, Speculative},
		{"mixed balanced", []int{1, 3, 3}, 7, Balanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			answerAll(s, tt.scores)

			res, ok := s.Result()
			require.True(t, ok)
			assert.Equal(t, tt.total, res.Total)
			assert.Equal(t, tt.category, res.Category)
		})
	}
}

func TestCategory_Monotonic(t *testing.T) {
	values := []int{1, 3, 5}
	classify := func(seq []int) Category {
		s := newTestSession(t)
		answerAll(s, seq)
		res, _ := s.Result()
		return res.Category
	}

	for _, seq := range allSequences() {
		base := classify(seq)
		for pos := range seq {
			for _, v := range values {
				if v <= seq[pos] {
					continue
				}
				raised := append([]int(nil), seq...)
				raised[pos] = v
				got := classify(raised)
				assert.GreaterOrEqual(t, got.Rank(), base.Rank(),
					"raising %v at %d to %d lowered %s to %s", seq, pos, v, base, got)
			}
		}
	}
}

func TestReset_FromAnyState(t *testing.T) {
	for answered := 0; answered <= 3; answered++ {
		s := newTestSession(t)
		answerAll(s, []int{5, 3, 1}[:answered])

		s.Reset()

		assert.Equal(t, Active{Index: 0}, s.State(), "after %d answers", answered)
		assert.Empty(t, s.Scores())
		_, ok := s.Result()
		assert.False(t, ok)

		s.Reset()
		assert.Equal(t, Active{Index: 0}, s.State(), "reset must be idempotent")
	}
}

func TestChoose(t *testing.T) {
	s := newTestSession(t)

	_, ok := s.Choose(3)
	assert.False(t, ok, "out of range option must be rejected")
	_, ok = s.Choose(-1)
	assert.False(t, ok)
	assert.Empty(t, s.Scores())

	st, ok := s.Choose(2)
	assert.True(t, ok)
	assert.Equal(t, Active{Index: 1}, st)
	assert.Equal(t, []int{5}, s.Scores())

	s.Choose(2)
	s.Choose(0)
	_, ok = s.Choose(0)
	assert.False(t, ok, "choose after terminal must be rejected")
}

func TestCurrent(t *testing.T) {
	s := newTestSession(t)

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "q1", q.Prompt)

	s.Submit(1)
	q, _ = s.Current()
	assert.Equal(t, "q2", q.Prompt)

	s.Submit(1)
	s.Submit(1)
	_, ok = s.Current()
	assert.False(t, ok)

	n, of := s.Step()
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, of)
}

func TestScores_ReturnsCopy(t *testing.T) {
	s := newTestSession(t)
	s.Submit(3)

	got := s.Scores()
	got[0] = 99

	assert.Equal(t, []int{3}, s.Scores())
}
