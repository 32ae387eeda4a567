package tui

import (
	"testing"

	"github.com/MKhiriev/vibechef/internal/mock"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	history    *mock.MockHistorySync
	job        *mock.MockHistoryJob
	generation *mock.MockGenerationService
	auth       *mock.MockClientAuthService
	settings   *mock.MockSettingsService

	services *service.ClientServices
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		history:    mock.NewMockHistorySync(ctrl),
		job:        mock.NewMockHistoryJob(ctrl),
		generation: mock.NewMockGenerationService(ctrl),
		auth:       mock.NewMockClientAuthService(ctrl),
		settings:   mock.NewMockSettingsService(ctrl),
	}
	ts.services = &service.ClientServices{
		HistorySync:       ts.history,
		HistoryJob:        ts.job,
		GenerationService: ts.generation,
		AuthService:       ts.auth,
		SettingsService:   ts.settings,
	}
	return ts
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// typeText feeds s to model one rune at a time.
func typeText(model tea.Model, s string) tea.Model {
	for _, r := range s {
		model, _ = model.Update(keyRunes(string(r)))
	}
	return model
}

// runCmd executes cmd and returns its message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	_, ok := runCmd(t, cmd).(tea.QuitMsg)
	require.True(t, ok, "expected tea.Quit")
}

func testRecipes() []models.Recipe {
	return []models.Recipe{
		{ID: "r3", UserID: 7, Title: "Shakshuka", Content: "# Shakshuka\n\neggs", Timestamp: 3000, IsFavorite: true},
		{ID: "r2", UserID: 7, Title: "Lemon pasta", Content: "# Lemon pasta\n\nlemon", Timestamp: 2000},
		{ID: "r1", UserID: 7, Title: "Miso soup", Content: "# Miso soup\n\nmiso", Timestamp: 1000},
	}
}
