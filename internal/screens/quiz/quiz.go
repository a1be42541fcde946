// Package quiz implements the drill screen: one question at a time, with
// the answer hidden until the learner reveals it.
package quiz

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/kuku/internal/router"
	"github.com/abhisek/kuku/internal/screen"
	"github.com/abhisek/kuku/internal/screens/summary"
	"github.com/abhisek/kuku/internal/session"
	"github.com/abhisek/kuku/internal/ui/layout"
)

// Options configures the quiz screen.
type Options struct {
	Chant  bool
	Keys   *KeyMap
	Logger *zap.Logger
}

// QuizScreen drives a single session from first question to summary.
type QuizScreen struct {
	sess     *session.Session
	chant    bool
	revealed bool
	keys     KeyMap
	logger   *zap.Logger
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen that owns sess.
func New(sess *session.Session, opts Options) *QuizScreen {
	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizScreen{
		sess:   sess,
		chant:  opts.Chant,
		keys:   keys,
		logger: logger.With(zap.String("session_id", sess.ID)),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Drill"
}

func (q *QuizScreen) Status() string {
	cur, total := q.sess.Progress()
	return fmt.Sprintf("%d / %d", cur, total)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	for _, b := range []key.Binding{q.keys.Reveal, q.keys.Next, q.keys.Save, q.keys.Cancel, q.keys.ToggleChant} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// Revealed reports whether the current answer is showing.
func (q *QuizScreen) Revealed() bool {
	return q.revealed
}

// Chant reports whether readings are shown.
func (q *QuizScreen) Chant() bool {
	return q.chant
}

// Session returns the session driven by this screen.
func (q *QuizScreen) Session() *session.Session {
	return q.sess
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || q.sess.State() != session.StateActive || q.sess.Cancelled() {
		return q, nil
	}

	switch {
	case key.Matches(kmsg, q.keys.Reveal):
		q.revealed = true
	case key.Matches(kmsg, q.keys.ToggleChant):
		q.chant = !q.chant
	case key.Matches(kmsg, q.keys.Save):
		return q, q.advance(true)
	case key.Matches(kmsg, q.keys.Next):
		return q, q.advance(false)
	case key.Matches(kmsg, q.keys.Cancel):
		return q, q.cancel()
	}
	return q, nil
}

func (q *QuizScreen) advance(save bool) tea.Cmd {
	if save {
		cur := q.sess.Current()
		q.logger.Debug("question saved", zap.Stringer("question", cur))
	}

	q.revealed = false
	if q.sess.Advance(save) == session.StateActive {
		return nil
	}

	sum := q.sess.Summary()
	q.logger.Info("session finished",
		zap.Int("answered", sum.Answered),
		zap.Int("saved", len(sum.Results)),
	)
	return q.showSummary(sum)
}

func (q *QuizScreen) cancel() tea.Cmd {
	sum := q.sess.Cancel()
	q.logger.Info("session cancelled",
		zap.Int("answered", sum.Answered),
		zap.Int("total", sum.Total),
		zap.Int("saved", len(sum.Results)),
	)
	return q.showSummary(sum)
}

func (q *QuizScreen) showSummary(sum session.Summary) tea.Cmd {
	s := summary.New(sum)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
}
