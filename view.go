package viewstash

import tea "github.com/charmbracelet/bubbletea"

// View is anything a Manager can place in a Container. It follows the
// pointer-receiver shape: Update mutates the view in place and returns
// only the command, and View renders into the space the host grants.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Stateful is a View whose in-progress state survives detachment. Views
// are created and thrown away as they move in and out of a container; the
// fields a user already edited are not.
//
// The manager drives the calls and guarantees their order: SetStateKey
// before the view enters the container, RestoreState exactly once per
// attachment after it has entered, SaveState exactly once per detachment.
// The key never changes while the view is attached.
//
// Implementations snapshot every field that should survive into a value
// stored under the key, and apply that snapshot back in RestoreState. When
// RestoreState finds nothing under the key the view keeps its defaults;
// first appearance is not an error.
type Stateful interface {
	View

	// SetStateKey assigns the registry key this view saves under.
	SetStateKey(key string)

	// StateKey returns the assigned key, or "" before the first display.
	StateKey() string

	// SaveState writes the view's current state to reg under its key.
	SaveState(reg *Registry) error

	// RestoreState applies state previously saved under the view's key,
	// if any.
	RestoreState(reg *Registry)
}
