package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/viewstash"
	"github.com/jask/viewstash/internal/config"
	"github.com/jask/viewstash/internal/forms"
	"github.com/jask/viewstash/internal/logging"
	"github.com/jask/viewstash/internal/storage"
)

// Model ties the forms, their saved state, and the submissions store
// together. One form is on screen at a time; switching away parks the
// form's typed state in the registry and switching back replays it into
// a fresh instance.
type Model struct {
	ctx  context.Context
	cfg  config.Config
	repo *storage.SubmissionRepo

	reg   *viewstash.Registry
	slot  *viewstash.Slot
	mgr   *viewstash.Manager
	scope *viewstash.Scope

	forms  []forms.Form
	active int

	paletteOpen  bool
	paletteInput textinput.Model
	commands     []command

	submissions []storage.Submission

	keys   keyMap
	width  int
	height int

	status    string
	statusErr bool

	log zerolog.Logger
}

// New builds the model. repo may be nil, in which case submitting and
// listing submissions are disabled.
func New(ctx context.Context, cfg config.Config, repo *storage.SubmissionRepo) *Model {
	reg := viewstash.NewRegistry()
	slot := viewstash.NewSlot()

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "command"
	input.CharLimit = 64
	input.Width = 40

	m := &Model{
		ctx:          ctx,
		cfg:          cfg,
		repo:         repo,
		reg:          reg,
		slot:         slot,
		mgr:          viewstash.NewManager(reg, slot, viewstash.WithLogger(logging.Component("manager"))),
		scope:        viewstash.NewScope(reg),
		forms:        forms.All(),
		keys:         defaultKeyMap(),
		commands:     paletteCommands(),
		paletteInput: input,
		log:          logging.Component("ui"),
	}
	m.active = m.formIndex(cfg.UI.StartForm)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.displayActive(), m.loadSubmissions())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.mgr.Update(msg)
	case tea.KeyMsg:
		if m.paletteOpen {
			return m.handlePaletteKey(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quitCmd()
		case key.Matches(msg, m.keys.NextForm):
			m.active = (m.active + 1) % len(m.forms)
			return m, m.displayActive()
		case key.Matches(msg, m.keys.PrevForm):
			m.active = (m.active - 1 + len(m.forms)) % len(m.forms)
			return m, m.displayActive()
		case key.Matches(msg, m.keys.Submit):
			return m, m.submitCmd()
		case key.Matches(msg, m.keys.Palette):
			return m, m.openPalette()
		}
		return m, m.mgr.Update(msg)
	case submissionsMsg:
		m.submissions = []storage.Submission(msg)
		return m, nil
	case submitDoneMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			return m, nil
		}
		m.setStatusf("%s submitted", msg.form)
		return m, m.loadSubmissions()
	case purgeDoneMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			return m, nil
		}
		m.setStatusf("purged %d submissions", msg.count)
		return m, m.loadSubmissions()
	case statusMsg:
		m.setStatus(string(msg))
		return m, nil
	case errMsg:
		m.setError(msg.Error())
		return m, nil
	}
	cmds := []tea.Cmd{m.mgr.Update(msg)}
	if m.paletteOpen {
		var cmd tea.Cmd
		m.paletteInput, cmd = m.paletteInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// displayActive puts a fresh instance of the active form on screen under
// its state key. Any previously typed state for that key is restored into
// the new instance by the manager.
func (m *Model) displayActive() tea.Cmd {
	f := m.forms[m.active]
	key := stateKey(f.ID)
	m.scope.Claim(key)
	cmd, err := m.mgr.Display(f.New(), key)
	if err != nil {
		m.setError(err.Error())
		return nil
	}
	return cmd
}

// rebuild tears the current manager down and starts over with a fresh
// slot and manager on the same registry. With retaining true the typed
// state survives and the redisplayed forms pick it up; with retaining
// false every claimed entry is purged and the forms come back blank.
func (m *Model) rebuild(retaining bool) tea.Cmd {
	if err := m.mgr.Clear(); err != nil {
		m.setError(err.Error())
		return nil
	}
	if err := m.scope.Teardown(retaining); err != nil {
		m.setError(err.Error())
		return nil
	}
	m.slot = viewstash.NewSlot()
	m.mgr = viewstash.NewManager(m.reg, m.slot, viewstash.WithLogger(logging.Component("manager")))
	if retaining {
		m.setStatus("forms reloaded, typed state kept")
	} else {
		m.setStatus("forms reset to defaults")
	}
	return m.displayActive()
}

func (m *Model) quitCmd() tea.Cmd {
	if err := m.mgr.Clear(); err != nil {
		m.log.Err(err).Msg("clear on quit")
	}
	return tea.Quit
}

func (m *Model) formIndex(id string) int {
	for i, f := range m.forms {
		if f.ID == id {
			return i
		}
	}
	return 0
}

func stateKey(formID string) string { return "form." + formID }

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setStatusf(format string, args ...any) {
	m.setStatus(fmt.Sprintf(format, args...))
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *Model) setErrorf(format string, args ...any) {
	m.setError(fmt.Sprintf(format, args...))
}

// commands
func (m *Model) loadSubmissions() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return func() tea.Msg {
		list, err := m.repo.List(m.ctx, m.cfg.UI.SubmissionLimit)
		if err != nil {
			return errMsg{err}
		}
		return submissionsMsg(list)
	}
}

func (m *Model) submitCmd() tea.Cmd {
	f := m.forms[m.active]
	v, ok := m.mgr.Active(stateKey(f.ID))
	if !ok {
		m.setError("no form displayed")
		return nil
	}
	sub, ok := v.(forms.Submitter)
	if !ok {
		m.setErrorf("%s form does not submit", f.ID)
		return nil
	}
	payload, ok := sub.Payload()
	if !ok {
		m.setError("fill the required fields first")
		return nil
	}
	if m.repo == nil {
		m.setError("database not configured")
		return nil
	}
	encoded, err := storage.EncodePayload(payload)
	if err != nil {
		m.setError(err.Error())
		return nil
	}
	formID := sub.FormID()
	return func() tea.Msg {
		_, err := m.repo.Insert(m.ctx, storage.Submission{FormID: formID, Payload: encoded})
		return submitDoneMsg{form: formID, err: err}
	}
}

func (m *Model) purgeCmd() tea.Cmd {
	if m.repo == nil {
		m.setError("database not configured")
		return nil
	}
	return func() tea.Msg {
		count, err := m.repo.Purge(m.ctx)
		return purgeDoneMsg{count: count, err: err}
	}
}

func (m *Model) saveConfigCmd() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return errMsg{err}
		}
		return statusMsg("config saved")
	}
}

// messages
type submissionsMsg []storage.Submission

type submitDoneMsg struct {
	form string
	err  error
}

type purgeDoneMsg struct {
	count int64
	err   error
}

type statusMsg string

type errMsg struct{ error }
