package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Ruby is a piece of text with an optional reading printed above it.
type Ruby struct {
	Text    string
	Reading string
}

// RubyLine lays out a row of ruby segments as two lines: readings on top,
// text below, each segment centered over its own column.
type RubyLine struct {
	Segments     []Ruby
	Gap          int            // spaces between segments
	TextStyle    lipgloss.Style // style for the bottom line
	ReadingStyle lipgloss.Style // style for the top line
	HideReading  bool           // drop the top line entirely
}

// View renders the line. Readings are wider than their digits, so each
// column is sized to the wider of the two.
func (r RubyLine) View() string {
	var top, bottom []string
	for _, seg := range r.Segments {
		w := max(lipgloss.Width(seg.Text), lipgloss.Width(seg.Reading))
		top = append(top, center(seg.Reading, w))
		bottom = append(bottom, center(seg.Text, w))
	}

	gap := strings.Repeat(" ", r.Gap)
	textLine := r.TextStyle.Render(strings.Join(bottom, gap))
	if r.HideReading {
		return textLine
	}
	return r.ReadingStyle.Render(strings.Join(top, gap)) + "\n" + textLine
}

func center(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
