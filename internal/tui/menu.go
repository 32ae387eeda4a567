package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuModel struct {
	theme theme
	items []string
	pages []string
	idx   int
}

func newMenuModel(t theme) *menuModel {
	return &menuModel{
		theme: t,
		items: []string{"Log in", "Register"},
		pages: []string{pageLogin, pageRegister},
	}
}

func (m *menuModel) Init() tea.Cmd {
	return nil
}

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		page := m.pages[m.idx]
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *menuModel) View() string {
	var b strings.Builder
	b.WriteString("Cook something with what you have.\n\n")

	for i, item := range m.items {
		line := cursor(i == m.idx) + item
		if i == m.idx {
			line = m.theme.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.theme.page("VIBECHEF", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version │ q: quit")
}
