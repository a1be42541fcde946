package home

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kuku/internal/chant"
	"github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/ui/components"
	"github.com/abhisek/kuku/internal/ui/theme"
)

const titleArt = `╻┏ ╻ ╻╻┏ ╻ ╻
┣┻┓┃ ┃┣┻┓┃ ┃
╹ ╹┗━┛╹ ╹┗━┛`

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 56 {
		w = 56
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(titleArt + "\n\n" + "九九 multiplication drill")
}

// renderDanStrip shows the rows 1-9 in their colors, dimming those outside
// the selected range, with the chant reading of each row number above it.
func renderDanStrip(from, to int, showReading bool, cw int) string {
	var segs []components.Ruby
	for d := drill.MinDan; d <= drill.MaxDan; d++ {
		segs = append(segs, components.Ruby{
			Text:    strconv.Itoa(d),
			Reading: chant.RightReading(1, d),
		})
	}

	line := components.RubyLine{Segments: segs, Gap: 2, HideReading: !showReading}
	view := line.View()

	// Colorize each digit on the bottom line.
	lines := strings.Split(view, "\n")
	last := len(lines) - 1
	var colored strings.Builder
	for _, r := range lines[last] {
		if r >= '1' && r <= '9' {
			d := int(r - '0')
			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			if d >= from && d <= to {
				style = lipgloss.NewStyle().Foreground(theme.DanColor(drill.ColorKey(d))).Bold(true)
			}
			colored.WriteString(style.Render(string(r)))
			continue
		}
		colored.WriteRune(r)
	}
	lines[last] = colored.String()
	if last > 0 {
		lines[0] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(lines[0])
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(msg)
}

// renderCabinetFrame wraps content in a double-border frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
