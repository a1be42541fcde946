package quiz

import "charm.land/bubbles/v2/key"

// KeyMap defines the key bindings used while drilling.
type KeyMap struct {
	Reveal      key.Binding
	Next        key.Binding
	Save        key.Binding
	Cancel      key.Binding
	ToggleChant key.Binding
}

// DefaultKeyMap provides the default drill bindings.
var DefaultKeyMap = KeyMap{
	Reveal: key.NewBinding(
		key.WithKeys("space"),
		key.WithHelp("Space", "Answer"),
	),
	Next: key.NewBinding(
		key.WithKeys("enter", "right", "n"),
		key.WithHelp("Enter", "Next"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Save & next"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("Esc", "Stop"),
	),
	ToggleChant: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "Readings"),
	),
}
