package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	build    models.AppBuildInfo
	logger   *logger.Logger

	options []tea.ProgramOption
}

func New(services *service.ClientServices, build models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services: services,
		build:    build,
		logger:   logger,
		options:  []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// AuthFlow shows onboarding on the first start, then the login/register
// pages, and returns the session of the user who logged in.
func (t *TUI) AuthFlow(ctx context.Context) (models.Session, error) {
	seen, err := t.services.SettingsService.HasSeenOnboarding(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "TUI.AuthFlow").Msg("failed to read onboarding flag")
	}

	start := pageMenu
	if !seen {
		start = pageOnboarding
	}

	root := newRootModel(ctx, t.services, t.theme(ctx), t.build, start)
	finalModel, err := t.run(ctx, root)
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(rootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.session.Valid() {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the generate/history screens until the user quits or logs
// out. updates feeds the history list and is owned by the caller.
func (t *TUI) MainLoop(ctx context.Context, session models.Session, updates <-chan []models.Recipe) (logout bool, err error) {
	model := newMainModel(ctx, t.services, t.theme(ctx), t.build, session, updates)
	finalModel, err := t.run(ctx, model)
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		return nil, fmt.Errorf("run tui: %w", err)
	}
	return finalModel, nil
}

func (t *TUI) theme(ctx context.Context) theme {
	dark, err := t.services.SettingsService.DarkMode(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "TUI.theme").Msg("failed to read dark mode, using light theme")
	}
	return newTheme(dark)
}
