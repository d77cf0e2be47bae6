package forms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/viewstash"
)

// ShippingSnapshot is the saved state of a shipping form.
type ShippingSnapshot struct {
	Street   string
	Postcode string
	Country  string
	Focus    int
}

// ShippingForm edits a delivery address.
type ShippingForm struct {
	key    string
	inputs []textinput.Model
	focus  int
}

func NewShippingForm() *ShippingForm {
	return &ShippingForm{
		inputs: buildInputs([]fieldDef{
			{label: "Street", placeholder: "12 Example St", limit: 96},
			{label: "Postcode", placeholder: "3000", limit: 12},
			{label: "Country", placeholder: "Australia", limit: 56},
		}),
	}
}

func (f *ShippingForm) Init() tea.Cmd { return textinput.Blink }

func (f *ShippingForm) Update(msg tea.Msg) tea.Cmd {
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

func (f *ShippingForm) View(width, height int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Shipping") + "\n\n")
	for i, label := range []string{"Street", "Postcode", "Country"} {
		b.WriteString(fmt.Sprintf("%-9s %s\n", label, f.inputs[i].View()))
	}
	b.WriteString("\n[tab] next field  [shift+tab] previous")
	return b.String()
}

func (f *ShippingForm) SetStateKey(key string) { f.key = key }

func (f *ShippingForm) StateKey() string { return f.key }

func (f *ShippingForm) SaveState(reg *viewstash.Registry) error {
	return viewstash.Store(reg, viewstash.NewKey[ShippingSnapshot](f.key), ShippingSnapshot{
		Street:   f.inputs[0].Value(),
		Postcode: f.inputs[1].Value(),
		Country:  f.inputs[2].Value(),
		Focus:    f.focus,
	})
}

func (f *ShippingForm) RestoreState(reg *viewstash.Registry) {
	snap, ok := viewstash.Load(reg, viewstash.NewKey[ShippingSnapshot](f.key))
	if !ok {
		return
	}
	f.inputs[0].SetValue(snap.Street)
	f.inputs[1].SetValue(snap.Postcode)
	f.inputs[2].SetValue(snap.Country)
	f.focus = clampFocus(snap.Focus, len(f.inputs))
	setFocus(f.inputs, f.focus)
}

func (f *ShippingForm) FormID() string { return "shipping" }

// Payload returns the submission fields. Shipping needs a street and a
// country; the postcode may legitimately be empty.
func (f *ShippingForm) Payload() (map[string]string, bool) {
	street := strings.TrimSpace(f.inputs[0].Value())
	country := strings.TrimSpace(f.inputs[2].Value())
	if street == "" || country == "" {
		return nil, false
	}
	return map[string]string{
		"street":   street,
		"postcode": strings.TrimSpace(f.inputs[1].Value()),
		"country":  country,
	}, true
}
