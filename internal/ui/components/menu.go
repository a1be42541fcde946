package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kuku/internal/ui/theme"
)

// FieldKind selects how a menu field is edited.
type FieldKind int

const (
	FieldButton FieldKind = iota // Enter runs Action
	FieldNumber                  // left/right step Value between Min and Max
	FieldToggle                  // left/right/space flip On
)

// MenuField is a single row in a Menu.
type MenuField struct {
	Label  string
	Kind   FieldKind
	Value  int
	Min    int
	Max    int
	On     bool
	Action func() tea.Cmd
}

// Menu is a vertical list of buttons, number steppers and toggles.
type Menu struct {
	Fields   []MenuField
	Selected int
}

// NewMenu creates a new menu with the given fields.
func NewMenu(fields []MenuField) Menu {
	return Menu{Fields: fields}
}

// Update handles keyboard navigation and editing.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Fields) == 0 {
		return m, nil
	}

	f := &m.Fields[m.Selected]
	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j", "tab":
		if m.Selected < len(m.Fields)-1 {
			m.Selected++
		}
	case "left", "h", "-":
		m.step(f, -1)
	case "right", "l", "+":
		m.step(f, 1)
	case "space", " ":
		if f.Kind == FieldToggle {
			f.On = !f.On
		}
	case "enter":
		if f.Kind == FieldButton && f.Action != nil {
			return m, f.Action()
		}
		if f.Kind == FieldToggle {
			f.On = !f.On
		}
	}
	return m, nil
}

func (m Menu) step(f *MenuField, delta int) {
	switch f.Kind {
	case FieldNumber:
		v := f.Value + delta
		if v >= f.Min && v <= f.Max {
			f.Value = v
		}
	case FieldToggle:
		f.On = !f.On
	}
}

// Field returns the field with the given label, or nil.
func (m *Menu) Field(label string) *MenuField {
	for i := range m.Fields {
		if m.Fields[i].Label == label {
			return &m.Fields[i]
		}
	}
	return nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, f := range m.Fields {
		line := f.Label
		switch f.Kind {
		case FieldNumber:
			line = fmt.Sprintf("%-10s ◂ %d ▸", f.Label, f.Value)
		case FieldToggle:
			state := "off"
			if f.On {
				state = "on"
			}
			line = fmt.Sprintf("%-10s ◂ %s ▸", f.Label, state)
		}

		if i == m.Selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
