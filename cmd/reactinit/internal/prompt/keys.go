package prompt

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the questionnaire's key bindings.
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Accept key.Binding
	Yes    key.Binding
	No     key.Binding
	Abort  key.Binding
}

// DefaultKeyMap accepts arrows and vim-style movement.
var DefaultKeyMap = KeyMap{
	Prev: key.NewBinding(
		key.WithKeys("up", "left", "k", "h"),
		key.WithHelp("↑/←", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "right", "j", "l", "tab"),
		key.WithHelp("↓/→", "next"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "accept"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "abort"),
	),
}
