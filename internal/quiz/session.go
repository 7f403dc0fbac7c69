package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrNoQuestions  = errors.New("quiz has no questions")
	ErrEmptyOptions = errors.New("question has no options")
)

// Option is one selectable answer of a question.
type Option struct {
	Label string
	Score int
	// Warning is advisory text shown next to the option. It never blocks selection.
	Warning string
}

// Question is a single prompt in the diagnostic.
type Question struct {
	Position int
	Category string
	Prompt   string
	Options  []Option
}

// Result is the terminal outcome of a session.
type Result struct {
	Total    int
	Category Category
	Scores   []int
}

// State is either Active or Terminal.
type State interface {
	isState()
}

// Active means the question at Index is awaiting an answer.
type Active struct {
	Index int
}

// Terminal means every question has been answered.
type Terminal struct {
	Result Result
}

func (Active) isState()   {}
func (Terminal) isState() {}

// Session tracks one pass through the questionnaire. A Session is owned by a
// single controller and is not safe for concurrent use.
type Session struct {
	questions []Question
	table     Table
	scores    []int
	state     State
}

// NewSession creates a session in Active(0).
func NewSession(questions []Question, table Table) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	for i, q := range questions {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d: %w", i+1, ErrEmptyOptions)
		}
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		questions: questions,
		table:     table,
		state:     Active{Index: 0},
	}, nil
}

// Submit records the score for the current question and advances the
// session. After the last question the session becomes Terminal; further
// calls leave it unchanged.
func (s *Session) Submit(score int) State {
	active, ok := s.state.(Active)
	if !ok {
		return s.state
	}

	s.scores = append(s.scores, score)

	if active.Index < len(s.questions)-1 {
		s.state = Active{Index: active.Index + 1}
		return s.state
	}

	scores := s.Scores()
	total := Sum(scores)
	s.state = Terminal{Result: Result{
		Total:    total,
		Category: s.table.Classify(total),
		Scores:   scores,
	}}
	return s.state
}

// Choose submits the score of option i of the current question. It returns
// false without touching the session if i is out of range or the session is
// already terminal.
func (s *Session) Choose(i int) (State, bool) {
	q, ok := s.Current()
	if !ok || i < 0 || i >= len(q.Options) {
		return s.state, false
	}
	return s.Submit(q.Options[i].Score), true
}

// Reset returns the session to Active(0) with no scores.
func (s *Session) Reset() {
	s.scores = nil
	s.state = Active{Index: 0}
}

// State returns the current state value.
func (s *Session) State() State {
	return s.state
}

// Index returns the current question index, or Len() once terminal.
func (s *Session) Index() int {
	if a, ok := s.state.(Active); ok {
		return a.Index
	}
	return len(s.questions)
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (Question, bool) {
	a, ok := s.state.(Active)
	if !ok {
		return Question{}, false
	}
	return s.questions[a.Index], true
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Step returns the 1-based step being shown and the total step count.
func (s *Session) Step() (int, int) {
	n := s.Index() + 1
	if n > len(s.questions) {
		n = len(s.questions)
	}
	return n, len(s.questions)
}

// Scores returns a copy of the scores collected so far.
func (s *Session) Scores() []int {
	out := make([]int, len(s.scores))
	copy(out, s.scores)
	return out
}

// Result returns the terminal result, if any.
func (s *Session) Result() (Result, bool) {
	t, ok := s.state.(Terminal)
	if !ok {
		return Result{}, false
	}
	return t.Result, true
}

// Done reports whether the session is terminal.
func (s *Session) Done() bool {
	_, ok := s.state.(Terminal)
	return ok
}

// Sum returns the aggregate of scores.
func Sum(scores []int) int {
	total := 0
	for _, v := range scores {
		total += v
	}
	return total
}
