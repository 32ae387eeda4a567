package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

type theme struct {
	dark bool

	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
	status   lipgloss.Style
	selected lipgloss.Style
	favorite lipgloss.Style
	overlay  lipgloss.Style
}

func newTheme(dark bool) theme {
	accent := lipgloss.Color("#B4531F")
	text := lipgloss.Color("#1F1F1F")
	faint := lipgloss.Color("#6B6B6B")
	if dark {
		accent = lipgloss.Color("#F2A65A")
		text = lipgloss.Color("#EDEDED")
		faint = lipgloss.Color("#8A8A8A")
	}

	return theme{
		dark:     dark,
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(text),
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:     lipgloss.NewStyle().Faint(true).Foreground(faint),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D7263D")),
		status:   lipgloss.NewStyle().Foreground(accent),
		selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		favorite: lipgloss.NewStyle().Foreground(lipgloss.Color("#E4B400")),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
	}
}

// page renders a titled body between two dividers with the hotkey line
// underneath.
func (t theme) page(title, body, hotKeys string) string {
	var b strings.Builder

	b.WriteString(t.title.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(body) != "" {
		b.WriteString(body)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(t.help.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(t.help.Render("ctrl+c: quit"))

	return t.app.Render(b.String())
}
