package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var onboardingPages = []struct {
	title string
	body  string
}{
	{
		title: "WELCOME TO VIBECHEF",
		body:  "Tell the chef what is in your fridge and get a recipe back.\nYou can also attach photos of your ingredients.",
	},
	{
		title: "PICK A VIBE",
		body:  "Add a mood like \"cozy sunday\" or \"date night\" and choose\nvegetarian, gluten-free or spicy filters.",
	},
	{
		title: "KEEP WHAT YOU LIKE",
		body:  "Save recipes to your history. It follows you across devices\nand stays readable when you are offline.",
	},
}

// onboardingModel walks through the intro pages once and records that
// they were shown.
type onboardingModel struct {
	ctx      context.Context
	settings service.SettingsService
	theme    theme

	page     int
	finished bool
}

func newOnboardingModel(ctx context.Context, settings service.SettingsService, t theme) *onboardingModel {
	return &onboardingModel{ctx: ctx, settings: settings, theme: t}
}

func (m *onboardingModel) Init() tea.Cmd {
	return nil
}

func (m *onboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(onboardingDoneMsg); ok {
		// a failed write only means the intro shows again next time
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.finished {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.left):
		if m.page > 0 {
			m.page--
		}
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.right):
		if m.page < len(onboardingPages)-1 {
			m.page++
			return m, nil
		}
		return m, m.finish()
	case key.Matches(keyMsg, keys.esc):
		return m, m.finish()
	}

	return m, nil
}

func (m *onboardingModel) View() string {
	page := onboardingPages[m.page]
	body := fmt.Sprintf("%s\n\n%d / %d", page.body, m.page+1, len(onboardingPages))
	return m.theme.page(page.title, body, "enter: next │ ←: back │ esc: skip")
}

func (m *onboardingModel) finish() tea.Cmd {
	m.finished = true
	ctx := m.ctx
	settings := m.settings

	return func() tea.Msg {
		return onboardingDoneMsg{err: settings.MarkOnboardingSeen(ctx)}
	}
}
