package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/tui"
	"github.com/MKhiriev/vibechef/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, logger: logger}
}

// Run restores the saved session or asks the user to log in, then runs the
// main loop. Logging out clears the session and starts over.
func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.session(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.runSession(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Int64("user_id", session.UserID).Msg("user logged out")
		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
	}
}

func (a *App) session(ctx context.Context) (models.Session, error) {
	session, ok, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}
	if ok {
		a.logger.Info().Int64("user_id", session.UserID).Msg("session restored")
		return session, nil
	}

	return a.ui.AuthFlow(ctx)
}

func (a *App) runSession(ctx context.Context, session models.Session) (bool, error) {
	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan []models.Recipe, 1)
	a.services.HistoryJob.Start(sessionCtx, session.UserID, latestOnly(updates))

	logout, err := a.ui.MainLoop(sessionCtx, session, updates)

	cancel()
	a.services.HistoryJob.Stop()
	close(updates)

	return logout, err
}

// latestOnly returns a non-blocking sink for history emissions: when the UI
// has not picked up the previous list yet it is replaced by the newer one.
func latestOnly(updates chan []models.Recipe) func([]models.Recipe) {
	return func(recipes []models.Recipe) {
		for {
			select {
			case updates <- recipes:
				return
			default:
			}

			select {
			case <-updates:
			default:
			}
		}
	}
}
