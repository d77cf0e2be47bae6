package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextForm key.Binding
	PrevForm key.Binding
	Submit   key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

// Chords only: plain runes must keep flowing into the focused field.
func defaultKeyMap() keyMap {
	return keyMap{
		NextForm: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next form"),
		),
		PrevForm: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "prev form"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Palette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "palette"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.NextForm, k.PrevForm, k.Submit, k.Palette, k.Quit}
}
