package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kuku/internal/chant"
	"github.com/abhisek/kuku/internal/session"
	"github.com/abhisek/kuku/internal/ui/components"
	"github.com/abhisek/kuku/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	// The screen is replaced by the summary on the next message.
	if q.sess.State() != session.StateActive || q.sess.Cancelled() {
		return ""
	}

	cw := min(width-4, 60)
	cur, total := q.sess.Progress()
	d := q.sess.Display()
	color := theme.DanColor(d.ColorKey)

	var b strings.Builder
	b.WriteString(components.NewProgressBar(cur, total, cw).View())
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, q.renderQuestion(d)))
	b.WriteString("\n\n")

	if q.revealed {
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, q.renderAnswer(d)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, theme.Hint.Render("Space to show the answer")))
	}
	b.WriteString("\n\n")

	saved := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(pluralize(q.sess.Saved(), "question", "questions") + " saved")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, saved))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderQuestion lays out "a × b" with the chant readings above each factor,
// followed by が where the chant uses it.
func (q *QuizScreen) renderQuestion(d session.QuestionDisplay) string {
	segs := []components.Ruby{
		{Text: d.Left.Text, Reading: d.Left.Reading},
		{Text: "×"},
		{Text: d.Right.Text, Reading: d.Right.Reading},
	}
	if d.NeedsParticle && q.chant {
		segs = append(segs, components.Ruby{Text: " ", Reading: chant.Particle})
	}
	line := components.RubyLine{
		Segments:     segs,
		Gap:          2,
		TextStyle:    lipgloss.NewStyle().Foreground(theme.DanColor(d.ColorKey)).Bold(true),
		ReadingStyle: lipgloss.NewStyle().Foreground(theme.TextDim),
		HideReading:  !q.chant,
	}
	return line.View()
}

func (q *QuizScreen) renderAnswer(d session.QuestionDisplay) string {
	line := components.RubyLine{
		Segments: []components.Ruby{
			{Text: "="},
			{Text: d.Answer.Text, Reading: d.Answer.Reading},
		},
		Gap:          2,
		TextStyle:    lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		ReadingStyle: lipgloss.NewStyle().Foreground(theme.TextDim),
		HideReading:  !q.chant,
	}
	return line.View()
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
