package tui

import (
	"github.com/MKhiriev/vibechef/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the auth flow to another page. Payload, if set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type authResultMsg struct {
	session models.Session
	err     error
}

type onboardingDoneMsg struct {
	err error
}

type historyUpdatedMsg struct {
	recipes []models.Recipe
}

type historyClosedMsg struct{}

type generationDoneMsg struct {
	state models.GenerationState
}

type recipeSavedMsg struct {
	recipe models.Recipe
	err    error
}

type recipeDeletedMsg struct {
	err error
}

type favoriteToggledMsg struct {
	err error
}

type cacheClearedMsg struct {
	err error
}

type reconnectedMsg struct{}

type themeToggledMsg struct {
	dark bool
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
