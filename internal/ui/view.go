package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/viewstash/internal/storage"
)

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "starting formpad..."
	}
	tabs := m.renderTabs()

	subsHeight := m.cfg.UI.SubmissionLimit + 1
	if subsHeight < 2 {
		subsHeight = 2
	}
	palette := ""
	paletteHeight := 0
	if m.paletteOpen {
		palette = m.renderPalette()
		paletteHeight = lipgloss.Height(palette)
	}
	formHeight := m.height - lipgloss.Height(tabs) - subsHeight - paletteHeight - 2
	if formHeight < 4 {
		formHeight = 4
	}

	boxStyle := formBoxActiveStyle
	if m.paletteOpen {
		boxStyle = formBoxStyle
	}
	box := boxStyle.Render(m.slot.View(m.width-2, formHeight-2))

	var b strings.Builder
	b.WriteString(tabs)
	b.WriteString("\n")
	b.WriteString(box)
	b.WriteString("\n")
	if m.paletteOpen {
		b.WriteString(palette)
		b.WriteString("\n")
	}
	b.WriteString(m.renderSubmissions(subsHeight))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.forms))
	for i, f := range m.forms {
		style := tabStyle
		if i == m.active {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(f.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderPalette() string {
	hint := lipgloss.NewStyle().Foreground(colorMuted).
		Render("commands: " + strings.Join(commandNames(m.commands), ", "))
	return paletteBoxStyle.Render(m.paletteInput.View() + "\n" + hint)
}

func (m *Model) renderSubmissions(height int) string {
	lines := []string{submissionTitleStyle.Render("Recent submissions")}
	if len(m.submissions) == 0 {
		lines = append(lines, "  none yet")
	}
	for _, s := range m.submissions {
		lines = append(lines, "  "+submissionLine(s))
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return clipHeight(strings.Join(lines, "\n"), height)
}

func submissionLine(s storage.Submission) string {
	stamp := s.SubmittedAt.Local().Format("15:04")
	fields, err := s.Fields()
	if err != nil {
		return fmt.Sprintf("%s  %-9s (unreadable payload)", stamp, s.FormID)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+fields[k])
	}
	return fmt.Sprintf("%s  %-9s %s", stamp, s.FormID, strings.Join(parts, " "))
}

func (m *Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = m.forms[m.active].Title + " form"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, m.width, " "+msg, colorSurface0)
	}
	return renderBar(statusBarStyle, m.width, " "+msg, colorSurface0)
}

func (m *Model) renderFooter() string {
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(m.keys.bindings()))
	for _, b := range m.keys.bindings() {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	return renderBar(footerStyle, m.width, strings.Join(parts, sep), bg)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	if width <= 0 {
		return ""
	}
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func clipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
