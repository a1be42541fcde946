package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/router"
	"github.com/abhisek/kuku/internal/screen"
	"github.com/abhisek/kuku/internal/session"
	"github.com/abhisek/kuku/internal/ui/layout"
	"github.com/abhisek/kuku/internal/ui/theme"
)

// columnWidth fits the widest line, "9 × 9 = 81", plus padding.
const columnWidth = 14

// SummaryScreen lists the questions saved during a session.
type SummaryScreen struct {
	summary session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) Status() string {
	return fmt.Sprintf("%d saved", len(s.summary.Results))
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Restart"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "r":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	// Title.
	title := "Drill complete!"
	if sum.Cancelled {
		title = "Drill stopped early"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	// Stats line.
	statsLine := fmt.Sprintf("Answered: %d / %d        Saved: %d",
		sum.Answered, sum.Total, len(sum.Results))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Saved for review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(sum.Results) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No questions saved")))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		renderResults(sum.Results, width)))
	return b.String()
}

// renderResults lays the saved lines out in as many columns as the width
// allows, filling each column top to bottom.
func renderResults(results []session.SavedResult, width int) string {
	cols := max((width-4)/columnWidth, 1)
	rows := (len(results) + cols - 1) / cols

	var columns []string
	for c := 0; c*rows < len(results); c++ {
		end := min((c+1)*rows, len(results))
		var lines []string
		for _, r := range results[c*rows : end] {
			style := lipgloss.NewStyle().
				Width(columnWidth).
				Foreground(theme.DanColor(drill.ColorKey(r.Multiplicand)))
			lines = append(lines, style.Render(r.String()))
		}
		columns = append(columns, strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
