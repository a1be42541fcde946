package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/router"
	"github.com/abhisek/kuku/internal/screen"
	"github.com/abhisek/kuku/internal/screens/quiz"
	"github.com/abhisek/kuku/internal/session"
	"github.com/abhisek/kuku/internal/ui/components"
	"github.com/abhisek/kuku/internal/ui/layout"
)

const (
	fieldFrom  = "From"
	fieldTo    = "To"
	fieldChant = "Readings"
	fieldStart = "Start"
	fieldQuit  = "Quit"
)

// startRequestedMsg is emitted by the Start button.
type startRequestedMsg struct{}

// Options configures the home screen.
type Options struct {
	Range     drill.Range
	Chant     bool
	Generator *drill.Generator
	Logger    *zap.Logger
}

// HomeScreen lets the learner pick a dan range and start a drill.
type HomeScreen struct {
	menu   components.Menu
	gen    *drill.Generator
	logger *zap.Logger
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	r := opts.Range
	if r.From == 0 {
		r = drill.FullRange()
	}

	fields := []components.MenuField{
		{Label: fieldFrom, Kind: components.FieldNumber, Value: r.From, Min: drill.MinDan, Max: drill.MaxDan},
		{Label: fieldTo, Kind: components.FieldNumber, Value: r.To, Min: drill.MinDan, Max: drill.MaxDan},
		{Label: fieldChant, Kind: components.FieldToggle, On: opts.Chant},
		{Label: fieldStart, Kind: components.FieldButton, Action: func() tea.Cmd {
			return func() tea.Msg { return startRequestedMsg{} }
		}},
		{Label: fieldQuit, Kind: components.FieldButton, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	m := components.NewMenu(fields)
	m.Selected = 3

	return &HomeScreen{
		menu:   m,
		gen:    opts.Generator,
		logger: opts.Logger,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	return h.rangeLabel()
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startRequestedMsg:
		return h, h.start()
	case tea.KeyPressMsg:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		if msg.String() != "enter" {
			h.errMsg = ""
		}
		return h, cmd
	}
	return h, nil
}

// start validates the selected range and pushes a quiz for it. An invalid
// range leaves the screen unchanged apart from the error message.
func (h *HomeScreen) start() tea.Cmd {
	from, to := h.menu.Field(fieldFrom).Value, h.menu.Field(fieldTo).Value
	r, err := drill.NewRange(from, to)
	if err != nil {
		h.errMsg = err.Error()
		h.logger.Warn("rejected dan range", zap.Int("from", from), zap.Int("to", to), zap.Error(err))
		return nil
	}

	if h.gen == nil {
		gen, err := drill.NewGenerator(0)
		if err != nil {
			h.errMsg = err.Error()
			h.logger.Error("seed generator", zap.Error(err))
			return nil
		}
		h.gen = gen
	}

	sess, err := session.New(h.gen.Shuffled(r))
	if err != nil {
		h.errMsg = err.Error()
		h.logger.Error("create session", zap.Error(err))
		return nil
	}

	h.errMsg = ""
	h.logger.Info("session started",
		zap.String("session_id", sess.ID),
		zap.Stringer("range", r),
		zap.Int("questions", sess.Len()),
		zap.Uint64("seed", h.gen.Seed()),
	)

	q := quiz.New(sess, quiz.Options{
		Chant:  h.menu.Field(fieldChant).On,
		Logger: h.logger,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: q} }
}

func (h *HomeScreen) rangeLabel() string {
	r, err := drill.NewRange(h.menu.Field(fieldFrom).Value, h.menu.Field(fieldTo).Value)
	if err != nil {
		return ""
	}
	return "dan " + r.String()
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))
	sections = append(sections, "")
	sections = append(sections, renderDanStrip(
		h.menu.Field(fieldFrom).Value,
		h.menu.Field(fieldTo).Value,
		h.menu.Field(fieldChant).On,
		cw,
	))
	sections = append(sections, "")

	sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, h.menu.View()))

	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return renderCabinetFrame(content, width, height)
}
