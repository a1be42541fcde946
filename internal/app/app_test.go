package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/screens/quiz"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	gen, err := drill.NewGenerator(42)
	require.NoError(t, err)
	r, err := drill.NewRange(2, 2)
	require.NoError(t, err)
	return newAppModel(Options{Range: r, Chant: true, Generator: gen})
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

// drain runs cmd and feeds its message back into the model until the
// chain ends or asks to quit.
func drain(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return m
		}
		m, cmd = send(t, m, msg)
	}
	return m
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := send(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestFullDrillRoundTrip(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.render(), "dan 2")

	// Start button is selected by default.
	m, cmd := send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = drain(t, m, cmd)
	require.Equal(t, 2, m.router.Depth())
	q, ok := m.router.Active().(*quiz.QuizScreen)
	require.True(t, ok)
	assert.Equal(t, 9, q.Session().Len())
	assert.Contains(t, m.render(), "1 / 9")

	for i := 0; i < 9; i++ {
		m, cmd = send(t, m, tea.KeyPressMsg{Code: 's', Text: "s"})
		m = drain(t, m, cmd)
	}
	assert.Equal(t, "Summary", m.router.Active().Title())
	assert.Contains(t, m.render(), "9 saved")

	m, cmd = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = drain(t, m, cmd)
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Home", m.router.Active().Title())
}
