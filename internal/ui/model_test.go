package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/jask/viewstash"
	"github.com/jask/viewstash/internal/config"
	"github.com/jask/viewstash/internal/forms"
	"github.com/jask/viewstash/internal/storage"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Config{}
	cfg.UI.StartForm = "profile"
	cfg.UI.SubmissionLimit = 5
	m := New(context.Background(), cfg, nil)
	_ = m.Init()
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return m
}

func typeString(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(t *testing.T, m *Model, k tea.KeyType) {
	t.Helper()
	_, _ = m.Update(tea.KeyMsg{Type: k})
}

func profileSnapshot(t *testing.T, m *Model) (forms.ProfileSnapshot, bool) {
	t.Helper()
	return viewstash.Load(m.reg, viewstash.NewKey[forms.ProfileSnapshot](stateKey("profile")))
}

func TestTypedStateSurvivesSwitching(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	typeString(t, m, "Ada")
	press(t, m, tea.KeyCtrlN)
	require.Equal(t, 1, m.active)

	snap, ok := profileSnapshot(t, m)
	require.True(t, ok)
	require.Equal(t, "Ada", snap.Name)

	// Back and away again: a fresh instance restored the state and saved
	// it unchanged on the next eviction.
	press(t, m, tea.KeyCtrlP)
	require.Equal(t, 0, m.active)
	press(t, m, tea.KeyCtrlN)

	snap, ok = profileSnapshot(t, m)
	require.True(t, ok)
	require.Equal(t, "Ada", snap.Name)
}

func TestSwitchCyclesThroughForms(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	press(t, m, tea.KeyCtrlN)
	press(t, m, tea.KeyCtrlN)
	press(t, m, tea.KeyCtrlN)
	require.Equal(t, 0, m.active)
	require.Equal(t, []string{stateKey("profile")}, m.mgr.Keys())
}

func TestFeedbackStateSavedOnSwitch(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	press(t, m, tea.KeyCtrlN)
	typeString(t, m, "Great tool")
	press(t, m, tea.KeyCtrlN)

	snap, ok := viewstash.Load(m.reg, viewstash.NewKey[forms.FeedbackSnapshot](stateKey("feedback")))
	require.True(t, ok)
	require.Equal(t, "Great tool", snap.Subject)
	require.Equal(t, 3, snap.Rating)
}

func TestReloadKeepsTypedState(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	typeString(t, m, "Ada")
	_ = m.runCommand("reload")

	require.False(t, m.mgr.Released())
	require.Equal(t, []string{stateKey("profile")}, m.mgr.Keys())
	require.Equal(t, "forms reloaded, typed state kept", m.status)

	snap, ok := profileSnapshot(t, m)
	require.True(t, ok)
	require.Equal(t, "Ada", snap.Name)
}

func TestResetDiscardsTypedState(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	typeString(t, m, "Ada")
	_ = m.runCommand("reset")

	require.Equal(t, "forms reset to defaults", m.status)
	require.Zero(t, m.reg.Len())
	_, ok := profileSnapshot(t, m)
	require.False(t, ok)

	// The fresh manager is live and showing the active form again.
	require.False(t, m.mgr.Released())
	require.Equal(t, []string{stateKey("profile")}, m.mgr.Keys())
}

func TestOpenCommandSwitchesForms(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	_ = m.runCommand("open shipping")
	require.Equal(t, 2, m.active)
	require.Equal(t, []string{stateKey("shipping")}, m.mgr.Keys())

	_ = m.runCommand("open shiping")
	require.True(t, m.statusErr)
	require.Contains(t, m.status, `did you mean "shipping"`)
	require.Equal(t, 2, m.active)
}

func TestUnknownCommandSuggestion(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	_ = m.runCommand("relaod")
	require.True(t, m.statusErr)
	require.Equal(t, `unknown command "relaod", did you mean "reload"?`, m.status)

	_ = m.runCommand("zzzzzz")
	require.Equal(t, `unknown command "zzzzzz"`, m.status)
}

func TestPaletteCapturesKeys(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	press(t, m, tea.KeyCtrlK)
	require.True(t, m.paletteOpen)

	typeString(t, m, "reset")
	require.Equal(t, "reset", m.paletteInput.Value())

	// Nothing leaked into the displayed form.
	press(t, m, tea.KeyEscape)
	require.False(t, m.paletteOpen)
	press(t, m, tea.KeyCtrlN)
	snap, ok := profileSnapshot(t, m)
	require.True(t, ok)
	require.Empty(t, snap.Name)

	// Reopening starts from a blank line.
	press(t, m, tea.KeyCtrlK)
	require.Empty(t, m.paletteInput.Value())
}

func TestPaletteRunsCommandOnEnter(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	press(t, m, tea.KeyCtrlK)
	typeString(t, m, "reset")
	press(t, m, tea.KeyEnter)

	require.False(t, m.paletteOpen)
	require.Equal(t, "forms reset to defaults", m.status)
}

func TestSubmitValidation(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	press(t, m, tea.KeyCtrlS)
	require.True(t, m.statusErr)
	require.Equal(t, "fill the required fields first", m.status)

	typeString(t, m, "Ada")
	press(t, m, tea.KeyTab)
	typeString(t, m, "ada@example.com")
	press(t, m, tea.KeyCtrlS)
	require.Equal(t, "database not configured", m.status)
}

func TestQuitSavesStateAndReleases(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	typeString(t, m, "Ada")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	require.True(t, m.mgr.Released())
	snap, ok := profileSnapshot(t, m)
	require.True(t, ok)
	require.Equal(t, "Ada", snap.Name)
}

func TestViewRendersFullFrame(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	out := m.View()
	require.Equal(t, 32, lipgloss.Height(out))
	require.Contains(t, out, "Profile")
	require.Contains(t, out, "Feedback")
	require.Contains(t, out, "Shipping")
	require.Contains(t, out, "Recent submissions")
	require.Contains(t, out, "none yet")
	require.Contains(t, out, "ctrl+k")
}

func TestSubmissionLineSortsFields(t *testing.T) {
	t.Parallel()

	s := storage.Submission{
		FormID:      "profile",
		Payload:     `{"name":"Ada","email":"ada@example.com"}`,
		SubmittedAt: time.Date(2026, 1, 2, 12, 4, 0, 0, time.Local),
	}
	line := submissionLine(s)
	require.Contains(t, line, "12:04")
	require.Contains(t, line, "profile")
	require.Contains(t, line, "email=ada@example.com name=Ada")
}
