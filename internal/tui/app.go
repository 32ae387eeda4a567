package tui

import (
	"context"

	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageOnboarding = "onboarding"
	pageMenu       = "menu"
	pageLogin      = "login"
	pageRegister   = "register"
)

// rootModel routes the auth flow:
// 1) keeps the active page
// 2) handles global quit and the about window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type rootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentPage string

	theme theme
	build models.AppBuildInfo

	quitByUser    bool
	session       models.Session
	showBuildInfo bool
}

func newRootModel(ctx context.Context, services *service.ClientServices, t theme, build models.AppBuildInfo, startPage string) rootModel {
	pages := map[string]tea.Model{
		pageOnboarding: newOnboardingModel(ctx, services.SettingsService, t),
		pageMenu:       newMenuModel(t),
		pageLogin:      newAuthFormModel(ctx, services.AuthService, t, formLogin),
		pageRegister:   newAuthFormModel(ctx, services.AuthService, t, formRegister),
	}

	return rootModel{
		pages:       pages,
		current:     pages[startPage],
		currentPage: startPage,
		theme:       t,
		build:       build,
	}
}

func (r rootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			r.quitByUser = true
			return r, tea.Quit
		case r.currentPage == pageMenu && key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case r.currentPage == pageMenu && key.Matches(keyMsg, keys.version):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(keyMsg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.currentPage = nav.Page

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	if result, ok := msg.(authResultMsg); ok && result.err == nil && result.session.Valid() {
		r.session = result.session
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r rootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.theme, r.build)
	}
	if r.current == nil {
		return r.theme.page("VIBECHEF", "", "")
	}
	return r.current.View()
}
