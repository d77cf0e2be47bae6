package ui

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/viewstash/internal/forms"
)

// command is a named palette action. The first word of the palette input
// selects the command and the rest arrive as args.
type command struct {
	name        string
	description string
	run         func(m *Model, args []string) tea.Cmd
}

func paletteCommands() []command {
	return []command{
		{
			name:        "open",
			description: "open <form>: display the named form",
			run: func(m *Model, args []string) tea.Cmd {
				return m.openFormCommand(args)
			},
		},
		{
			name:        "reload",
			description: "rebuild the forms, keeping typed state",
			run: func(m *Model, _ []string) tea.Cmd {
				return m.rebuild(true)
			},
		},
		{
			name:        "reset",
			description: "rebuild the forms, discarding typed state",
			run: func(m *Model, _ []string) tea.Cmd {
				return m.rebuild(false)
			},
		},
		{
			name:        "purge",
			description: "delete every stored submission",
			run: func(m *Model, _ []string) tea.Cmd {
				return m.purgeCmd()
			},
		},
		{
			name:        "config",
			description: "write current settings to the config file",
			run: func(m *Model, _ []string) tea.Cmd {
				return m.saveConfigCmd()
			},
		},
		{
			name:        "quit",
			description: "save state and exit",
			run: func(m *Model, _ []string) tea.Cmd {
				return m.quitCmd()
			},
		},
	}
}

func (m *Model) openPalette() tea.Cmd {
	m.paletteOpen = true
	m.paletteInput.SetValue("")
	return m.paletteInput.Focus()
}

func (m *Model) closePalette() {
	m.paletteOpen = false
	m.paletteInput.Blur()
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePalette()
		return m, nil
	case tea.KeyEnter:
		input := m.paletteInput.Value()
		m.closePalette()
		return m, m.runCommand(input)
	}
	if key.Matches(msg, m.keys.Quit) {
		return m, m.quitCmd()
	}
	var cmd tea.Cmd
	m.paletteInput, cmd = m.paletteInput.Update(msg)
	return m, cmd
}

// runCommand dispatches a palette line. Unknown names get a nearest-match
// suggestion instead of a bare failure.
func (m *Model) runCommand(input string) tea.Cmd {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]
	for _, c := range m.commands {
		if c.name == name {
			return c.run(m, args)
		}
	}
	if near, ok := nearestCommand(name, m.commands); ok {
		m.setErrorf("unknown command %q, did you mean %q?", name, near)
	} else {
		m.setErrorf("unknown command %q", name)
	}
	return nil
}

func (m *Model) openFormCommand(args []string) tea.Cmd {
	if len(args) == 0 {
		m.setError("usage: open <form>")
		return nil
	}
	id := args[0]
	for i, f := range m.forms {
		if f.ID == id {
			m.active = i
			return m.displayActive()
		}
	}
	if near, ok := forms.Nearest(id); ok {
		m.setErrorf("no form %q, did you mean %q?", id, near)
	} else {
		m.setErrorf("no form %q", id)
	}
	return nil
}

// nearestCommand finds the closest command name within a small edit
// distance, enough to catch transposed or dropped letters.
func nearestCommand(name string, cmds []command) (string, bool) {
	const maxDistance = 2
	best, bestDist := "", maxDistance+1
	for _, c := range cmds {
		if d := levenshtein.ComputeDistance(name, c.name); d < bestDist {
			best, bestDist = c.name, d
		}
	}
	return best, bestDist <= maxDistance
}

func commandNames(cmds []command) []string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.name)
	}
	return names
}
