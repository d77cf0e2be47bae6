package forms

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const fieldWidth = 40

var labelStyle = lipgloss.NewStyle().Bold(true)

type fieldDef struct {
	label       string
	placeholder string
	limit       int
}

func buildInputs(defs []fieldDef) []textinput.Model {
	inputs := make([]textinput.Model, len(defs))
	for i, d := range defs {
		in := textinput.New()
		in.Placeholder = d.placeholder
		in.CharLimit = d.limit
		in.Width = fieldWidth
		in.Prompt = "> "
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
	}
	return inputs
}

// moveFocus shifts focus by delta with wraparound and returns the new
// index plus the focused input's blink command.
func moveFocus(inputs []textinput.Model, focus, delta int) (int, tea.Cmd) {
	if len(inputs) == 0 {
		return 0, nil
	}
	next := (focus + delta + len(inputs)) % len(inputs)
	return next, setFocus(inputs, next)
}

func setFocus(inputs []textinput.Model, focus int) tea.Cmd {
	var cmd tea.Cmd
	for i := range inputs {
		if i == focus {
			cmd = inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return cmd
}

func updateInputs(inputs []textinput.Model, msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(inputs))
	for i := range inputs {
		inputs[i], cmds[i] = inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func clampFocus(focus, n int) int {
	if focus < 0 || focus >= n {
		return 0
	}
	return focus
}
