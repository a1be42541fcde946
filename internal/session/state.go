// Package session holds the quiz state machine: a fixed question list, a
// forward-only cursor, and the results the learner chose to keep.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/kuku/internal/drill"
)

var (
	// ErrNoQuestions is returned when a session is started without questions.
	ErrNoQuestions = errors.New("session needs at least one question")

	// ErrExhausted is the panic value for transitions attempted after the last question.
	ErrExhausted = errors.New("session has no current question")

	// ErrNotFinished is the panic value for Summary on a session still in progress.
	ErrNotFinished = errors.New("session is still in progress")
)

// State is the observable state of a session.
type State int

const (
	StateActive    State = iota // A question is being shown
	StateExhausted              // Every question has been passed
)

func (s State) String() string {
	if s == StateExhausted {
		return "exhausted"
	}
	return "active"
}

// Session is a single run through a shuffled question list.
// It has one owner and is not safe for concurrent use.
type Session struct {
	// ID correlates log lines for this run.
	ID string

	questions []drill.Question
	position  int
	saved     []SavedResult
	cancelled bool
}

// New starts a session over questions. The slice is copied.
func New(questions []drill.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	qs := make([]drill.Question, len(questions))
	copy(qs, questions)
	return &Session{
		ID:        uuid.New().String(),
		questions: qs,
	}, nil
}

// State returns StateExhausted once the cursor has passed the last question.
func (s *Session) State() State {
	if s.position >= len(s.questions) {
		return StateExhausted
	}
	return StateActive
}

// Position returns the 0-based cursor.
func (s *Session) Position() int {
	return s.position
}

// Len returns the total number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Progress returns the 1-based number of the current question and the total.
func (s *Session) Progress() (current, total int) {
	total = len(s.questions)
	current = s.position + 1
	if current > total {
		current = total
	}
	return current, total
}

// Saved returns the number of results saved so far.
func (s *Session) Saved() int {
	return len(s.saved)
}

// Cancelled reports whether the session was ended early.
func (s *Session) Cancelled() bool {
	return s.cancelled
}

// Current returns the question under the cursor. Panics when exhausted.
func (s *Session) Current() drill.Question {
	s.mustBeActive()
	return s.questions[s.position]
}

// Advance moves past the current question, first recording it when save
// is true. Panics when exhausted.
func (s *Session) Advance(save bool) State {
	s.mustBeActive()
	if save {
		q := s.questions[s.position]
		s.saved = append(s.saved, SavedResult{
			Multiplicand: q.Multiplicand,
			Multiplier:   q.Multiplier,
			Product:      q.Product(),
		})
	}
	s.position++
	return s.State()
}

// Cancel ends the session early and returns the summary of what was saved.
// Unanswered questions are discarded.
func (s *Session) Cancel() Summary {
	if s.State() == StateActive {
		s.cancelled = true
	}
	return s.summary()
}

// Summary returns the saved results in the order they were saved.
// Panics unless the session is exhausted or cancelled.
func (s *Session) Summary() Summary {
	if s.State() == StateActive && !s.cancelled {
		panic(ErrNotFinished)
	}
	return s.summary()
}

func (s *Session) summary() Summary {
	results := make([]SavedResult, len(s.saved))
	copy(results, s.saved)
	return Summary{
		Results:   results,
		Answered:  s.position,
		Total:     len(s.questions),
		Cancelled: s.cancelled,
	}
}

func (s *Session) mustBeActive() {
	if s.cancelled || s.State() != StateActive {
		panic(ErrExhausted)
	}
}
