package forms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/viewstash"
)

// ProfileSnapshot is the saved state of a profile form.
type ProfileSnapshot struct {
	Name  string
	Email string
	City  string
	Focus int
}

// ProfileForm edits a contact profile. Instances are disposable; the
// fields live on in the registry between instances.
type ProfileForm struct {
	key    string
	inputs []textinput.Model
	focus  int
}

func NewProfileForm() *ProfileForm {
	return &ProfileForm{
		inputs: buildInputs([]fieldDef{
			{label: "Name", placeholder: "Ada Lovelace", limit: 64},
			{label: "Email", placeholder: "ada@example.com", limit: 128},
			{label: "City", placeholder: "Melbourne", limit: 64},
		}),
	}
}

func (f *ProfileForm) Init() tea.Cmd { return textinput.Blink }

func (f *ProfileForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "enter", "down":
			var cmd tea.Cmd
			f.focus, cmd = moveFocus(f.inputs, f.focus, 1)
			return cmd
		case "shift+tab", "up":
			var cmd tea.Cmd
			f.focus, cmd = moveFocus(f.inputs, f.focus, -1)
			return cmd
		}
	}
	return updateInputs(f.inputs, msg)
}

func (f *ProfileForm) View(width, height int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Profile") + "\n\n")
	for i, label := range []string{"Name", "Email", "City"} {
		b.WriteString(fmt.Sprintf("%-8s %s\n", label, f.inputs[i].View()))
	}
	b.WriteString("\n[tab] next field  [shift+tab] previous")
	return b.String()
}

func (f *ProfileForm) SetStateKey(key string) { f.key = key }

func (f *ProfileForm) StateKey() string { return f.key }

func (f *ProfileForm) SaveState(reg *viewstash.Registry) error {
	return viewstash.Store(reg, viewstash.NewKey[ProfileSnapshot](f.key), ProfileSnapshot{
		Name:  f.inputs[0].Value(),
		Email: f.inputs[1].Value(),
		City:  f.inputs[2].Value(),
		Focus: f.focus,
	})
}

func (f *ProfileForm) RestoreState(reg *viewstash.Registry) {
	snap, ok := viewstash.Load(reg, viewstash.NewKey[ProfileSnapshot](f.key))
	if !ok {
		return
	}
	f.inputs[0].SetValue(snap.Name)
	f.inputs[1].SetValue(snap.Email)
	f.inputs[2].SetValue(snap.City)
	f.focus = clampFocus(snap.Focus, len(f.inputs))
	setFocus(f.inputs, f.focus)
}

func (f *ProfileForm) FormID() string { return "profile" }

// Payload returns the submission fields. A profile needs at least a name
// and an email to submit.
func (f *ProfileForm) Payload() (map[string]string, bool) {
	name := strings.TrimSpace(f.inputs[0].Value())
	email := strings.TrimSpace(f.inputs[1].Value())
	if name == "" || email == "" {
		return nil, false
	}
	return map[string]string{
		"name":  name,
		"email": email,
		"city":  strings.TrimSpace(f.inputs[2].Value()),
	}, true
}
