package viewstash

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Manager decides which Stateful views occupy a Container, saving and
// restoring their state through a shared Registry as they come and go. It
// runs on the program's update goroutine like everything else here.
type Manager struct {
	reg       *Registry
	container Container
	active    map[string]Stateful
	released  bool
	log       zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger routes transition traces to log. The default logger discards
// everything.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// NewManager returns a manager over reg and container.
func NewManager(reg *Registry, container Container, opts ...Option) *Manager {
	m := &Manager{
		reg:       reg,
		container: container,
		active:    make(map[string]Stateful),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Display makes v the only displayed view, keyed by key.
//
// If key is already displayed the call is a no-op: nothing is saved,
// restored, attached, or detached, and the returned command is nil.
// Otherwise every currently displayed view is detached and saved first,
// then v is keyed, attached, and restored. The eviction completes before
// the restore starts, so a fresh view displayed under a just-evicted key
// sees the state its predecessor saved.
//
// The returned command is v's Init for the host to hand to the runtime.
func (m *Manager) Display(v Stateful, key string) (tea.Cmd, error) {
	if m.released {
		return nil, ErrReleased
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	if v == nil {
		return nil, ErrNilView
	}
	if _, ok := m.active[key]; ok {
		return nil, nil
	}
	if err := m.evict(); err != nil {
		return nil, err
	}
	v.SetStateKey(key)
	m.container.Attach(v)
	v.RestoreState(m.reg)
	m.active[key] = v
	m.log.Debug().Str("key", key).Msg("view displayed")
	return v.Init(), nil
}

// Clear detaches and saves every displayed view, then releases the
// container. The manager is finished after Clear: Display returns
// ErrReleased and further Clears do nothing. Saved state stays in the
// registry for whatever manager comes next.
func (m *Manager) Clear() error {
	if m.released {
		return nil
	}
	if err := m.evict(); err != nil {
		return err
	}
	m.container = nil
	m.released = true
	m.log.Debug().Msg("manager released")
	return nil
}

// evict detaches and saves every displayed view, leaving the container
// empty. The mapping entry goes before the save runs, so a failed save
// never leaves a detached view still registered under its key. A
// SaveState failure stops the sweep and surfaces; it means the view broke
// its own contract, not that a retry would help.
func (m *Manager) evict() error {
	for _, key := range m.Keys() {
		v := m.active[key]
		m.container.Detach(v)
		delete(m.active, key)
		if err := v.SaveState(m.reg); err != nil {
			return fmt.Errorf("save state %q: %w", key, err)
		}
		m.log.Debug().Str("key", key).Msg("view evicted")
	}
	return nil
}

// Update forwards msg to every displayed view and batches their commands.
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, key := range m.Keys() {
		if cmd := m.active[key].Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Active returns the view displayed under key.
func (m *Manager) Active(key string) (Stateful, bool) {
	v, ok := m.active[key]
	return v, ok
}

// Keys returns the displayed keys in sorted order.
func (m *Manager) Keys() []string {
	keys := make([]string, 0, len(m.active))
	for k := range m.active {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Released reports whether Clear has run.
func (m *Manager) Released() bool { return m.released }
