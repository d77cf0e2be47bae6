package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/viewstash"
)

const (
	ratingMin = 1
	ratingMax = 5
)

// Feedback focus slots: subject, body, rating.
const (
	feedbackFocusSubject = iota
	feedbackFocusBody
	feedbackFocusRating
	feedbackFocusCount
)

// FeedbackSnapshot is the saved state of a feedback form.
type FeedbackSnapshot struct {
	Subject string
	Body    string
	Rating  int
	Focus   int
}

// FeedbackForm collects a subject line, a free-text body, and a rating.
type FeedbackForm struct {
	key     string
	subject textinput.Model
	body    textarea.Model
	rating  int
	focus   int
}

func NewFeedbackForm() *FeedbackForm {
	subject := textinput.New()
	subject.Placeholder = "What is this about?"
	subject.CharLimit = 96
	subject.Width = fieldWidth
	subject.Prompt = "> "
	subject.Focus()

	body := textarea.New()
	body.Placeholder = "Tell us more..."
	body.CharLimit = 600
	body.SetWidth(fieldWidth + 2)
	body.SetHeight(3)
	body.ShowLineNumbers = false

	return &FeedbackForm{subject: subject, body: body, rating: 3}
}

func (f *FeedbackForm) Init() tea.Cmd { return textinput.Blink }

func (f *FeedbackForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			return f.setFocus((f.focus + 1) % feedbackFocusCount)
		case "shift+tab":
			return f.setFocus((f.focus + feedbackFocusCount - 1) % feedbackFocusCount)
		case "left":
			if f.focus == feedbackFocusRating {
				if f.rating > ratingMin {
					f.rating--
				}
				return nil
			}
		case "right":
			if f.focus == feedbackFocusRating {
				if f.rating < ratingMax {
					f.rating++
				}
				return nil
			}
		}
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.subject, cmd = f.subject.Update(msg)
	cmds = append(cmds, cmd)
	f.body, cmd = f.body.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (f *FeedbackForm) setFocus(focus int) tea.Cmd {
	f.focus = focus
	f.subject.Blur()
	f.body.Blur()
	switch focus {
	case feedbackFocusSubject:
		return f.subject.Focus()
	case feedbackFocusBody:
		return f.body.Focus()
	}
	return nil
}

func (f *FeedbackForm) View(width, height int) string {
	stars := strings.Repeat("★", f.rating) + strings.Repeat("☆", ratingMax-f.rating)
	ratingLine := fmt.Sprintf("%-8s %s", "Rating", stars)
	if f.focus == feedbackFocusRating {
		ratingLine += "  [←/→ adjust]"
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("Feedback") + "\n\n")
	b.WriteString(fmt.Sprintf("%-8s %s\n", "Subject", f.subject.View()))
	b.WriteString("Body\n" + f.body.View() + "\n")
	b.WriteString(ratingLine + "\n")
	b.WriteString("\n[tab] next field  [shift+tab] previous")
	return b.String()
}

func (f *FeedbackForm) SetStateKey(key string) { f.key = key }

func (f *FeedbackForm) StateKey() string { return f.key }

func (f *FeedbackForm) SaveState(reg *viewstash.Registry) error {
	return viewstash.Store(reg, viewstash.NewKey[FeedbackSnapshot](f.key), FeedbackSnapshot{
		Subject: f.subject.Value(),
		Body:    f.body.Value(),
		Rating:  f.rating,
		Focus:   f.focus,
	})
}

func (f *FeedbackForm) RestoreState(reg *viewstash.Registry) {
	snap, ok := viewstash.Load(reg, viewstash.NewKey[FeedbackSnapshot](f.key))
	if !ok {
		return
	}
	f.subject.SetValue(snap.Subject)
	f.body.SetValue(snap.Body)
	if snap.Rating >= ratingMin && snap.Rating <= ratingMax {
		f.rating = snap.Rating
	}
	f.setFocus(clampFocus(snap.Focus, feedbackFocusCount))
}

func (f *FeedbackForm) FormID() string { return "feedback" }

// Payload returns the submission fields. Feedback needs a subject.
func (f *FeedbackForm) Payload() (map[string]string, bool) {
	subject := strings.TrimSpace(f.subject.Value())
	if subject == "" {
		return nil, false
	}
	return map[string]string{
		"subject": subject,
		"body":    strings.TrimSpace(f.body.Value()),
		"rating":  strconv.Itoa(f.rating),
	}, true
}
