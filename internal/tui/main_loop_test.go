package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSession = models.Session{UserID: 7, Login: "alice", Token: "tok"}

func newTestMain(t *testing.T) (mainModel, *testServices) {
	t.Helper()
	ts := newTestServices(t)
	m := newMainModel(context.Background(), ts.services, newTheme(false), models.NewAppBuildInfo("1.0.0", "", ""), testSession, nil)
	m.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return m, ts
}

func step(t *testing.T, m mainModel, msg tea.Msg) (mainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(mainModel)
	require.True(t, ok)
	return model, cmd
}

func withHistory(t *testing.T, m mainModel) mainModel {
	t.Helper()
	m, _ = step(t, m, historyUpdatedMsg{recipes: testRecipes()})
	return m
}

func TestMain_WaitsForHistory(t *testing.T) {
	ts := newTestServices(t)
	updates := make(chan []models.Recipe, 1)
	m := newMainModel(context.Background(), ts.services, newTheme(false), models.AppBuildInfo{}, testSession, updates)

	assert.Contains(t, m.View(), "Loading history...")

	updates <- testRecipes()
	msg := runCmd(t, m.Init())
	require.Equal(t, historyUpdatedMsg{recipes: testRecipes()}, msg)

	m, cmd := step(t, m, msg)
	assert.Contains(t, m.View(), "Shakshuka")
	require.NotNil(t, cmd)

	close(updates)
	assert.Equal(t, historyClosedMsg{}, runCmd(t, cmd))
}

func TestMain_EmptyHistory(t *testing.T) {
	m, _ := newTestMain(t)
	m, _ = step(t, m, historyUpdatedMsg{recipes: []models.Recipe{}})

	assert.Contains(t, m.View(), "No recipes yet")
}

func TestMain_FavoritesFilter(t *testing.T) {
	m := withHistory(t, newTestMainModel(t))

	m, _ = step(t, m, keyType(tea.KeyTab))

	visible := m.history.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "r3", visible[0].ID)
	assert.NotContains(t, m.View(), "Miso soup")
}

func TestMain_SearchFiltersHistory(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		wantID []string
	}{
		{name: "title, case-insensitive", query: "SOUP", wantID: []string{"r1"}},
		{name: "content", query: "eggs", wantID: []string{"r3"}},
		{name: "surrounding spaces", query: "  lemon ", wantID: []string{"r2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := withHistory(t, newTestMainModel(t))

			m, _ = step(t, m, keyRunes("/"))
			require.True(t, m.history.searching)
			assert.Contains(t, m.View(), "esc: clear search")

			m = typeText(m, tt.query).(mainModel)
			m, _ = step(t, m, keyType(tea.KeyEnter))
			assert.False(t, m.history.searching)

			var ids []string
			for _, r := range m.history.visible() {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantID, ids)

			current, ok := m.history.current()
			require.True(t, ok)
			assert.Equal(t, tt.wantID[0], current.ID)
			assert.Contains(t, m.View(), current.Title)
		})
	}
}

func TestMain_SearchNoMatch(t *testing.T) {
	m := withHistory(t, newTestMainModel(t))

	m, _ = step(t, m, keyRunes("/"))
	m = typeText(m, "quinoa").(mainModel)

	// q is typed into the query instead of quitting
	assert.True(t, m.history.searching)
	assert.Equal(t, "quinoa", m.history.search.Value())

	assert.Empty(t, m.history.visible())
	assert.Contains(t, m.View(), `No recipes match "quinoa"`)

	_, ok := m.history.current()
	assert.False(t, ok)
}

func TestMain_SearchCombinesWithFavorites(t *testing.T) {
	m := withHistory(t, newTestMainModel(t))
	m, _ = step(t, m, keyType(tea.KeyTab))

	m, _ = step(t, m, keyRunes("/"))
	m = typeText(m, "miso").(mainModel)
	m, _ = step(t, m, keyType(tea.KeyEnter))

	assert.Empty(t, m.history.visible())
	assert.Contains(t, m.View(), "No recipes match")

	m, _ = step(t, m, keyType(tea.KeyTab))
	visible := m.history.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "r1", visible[0].ID)
}

func TestMain_SearchEscClearsQuery(t *testing.T) {
	m := withHistory(t, newTestMainModel(t))

	m, _ = step(t, m, keyRunes("/"))
	m = typeText(m, "miso").(mainModel)
	m, _ = step(t, m, keyType(tea.KeyEsc))

	assert.False(t, m.history.searching)
	assert.Empty(t, m.history.search.Value())
	assert.Len(t, m.history.visible(), 3)

	// esc outside the field also drops an applied query
	m, _ = step(t, m, keyRunes("/"))
	m = typeText(m, "miso").(mainModel)
	m, _ = step(t, m, keyType(tea.KeyEnter))
	require.Len(t, m.history.visible(), 1)

	m, _ = step(t, m, keyType(tea.KeyEsc))
	assert.Len(t, m.history.visible(), 3)
	assert.Empty(t, m.history.query())
}

func TestMain_CursorFollowsRecipeAcrossUpdates(t *testing.T) {
	m := withHistory(t, newTestMainModel(t))
	m, _ = step(t, m, keyType(tea.KeyDown))

	current, ok := m.history.current()
	require.True(t, ok)
	require.Equal(t, "r2", current.ID)

	newer := append([]models.Recipe{{ID: "r4", Title: "Ramen", Timestamp: 4000}}, testRecipes()...)
	m, _ = step(t, m, historyUpdatedMsg{recipes: newer})

	current, ok = m.history.current()
	require.True(t, ok)
	assert.Equal(t, "r2", current.ID)
}

func TestMain_OpenDetailAndSyncWithUpdates(t *testing.T) {
	m := withHistory(t, newTestMainModel(t))

	m, _ = step(t, m, keyType(tea.KeyDown))
	m, _ = step(t, m, keyType(tea.KeyEnter))
	require.Equal(t, screenDetail, m.currentScreen)
	assert.Contains(t, m.View(), "Lemon pasta")

	recipes := testRecipes()
	recipes[1].IsFavorite = true
	m, _ = step(t, m, historyUpdatedMsg{recipes: recipes})
	assert.True(t, m.detail.recipe.IsFavorite)
	assert.Contains(t, m.View(), "★ favorite")

	m, _ = step(t, m, historyUpdatedMsg{recipes: []models.Recipe{recipes[0]}})
	assert.Equal(t, screenHistory, m.currentScreen)
}

func TestMain_ToggleFavorite(t *testing.T) {
	m, ts := newTestMain(t)
	m = withHistory(t, m)
	ts.history.EXPECT().ToggleFavorite(gomock.Any(), int64(7), "r3", false).Return(nil)

	_, cmd := step(t, m, keyRunes("f"))

	assert.Equal(t, favoriteToggledMsg{}, runCmd(t, cmd))
}

func TestMain_ToggleFavoriteFailureShowsError(t *testing.T) {
	m, ts := newTestMain(t)
	m = withHistory(t, m)
	ts.history.EXPECT().
		ToggleFavorite(gomock.Any(), int64(7), "r3", false).
		Return(service.ErrWriteFailed)

	m, cmd := step(t, m, keyRunes("f"))
	m, _ = step(t, m, runCmd(t, cmd))

	require.True(t, m.errorOverlay.active())
	assert.Contains(t, m.View(), "nothing was changed")

	// keys are swallowed until the overlay is closed
	m, _ = step(t, m, keyRunes("n"))
	assert.Equal(t, screenHistory, m.currentScreen)
	m, _ = step(t, m, keyType(tea.KeyEnter))
	assert.False(t, m.errorOverlay.active())
}

func TestMain_DeleteFromDetail(t *testing.T) {
	m, ts := newTestMain(t)
	m = withHistory(t, m)
	ts.history.EXPECT().Delete(gomock.Any(), int64(7), "r3").Return(nil)

	m, _ = step(t, m, keyType(tea.KeyEnter))
	m, _ = step(t, m, keyRunes("d"))
	require.True(t, m.confirm.active())
	assert.Contains(t, m.View(), `Delete "Shakshuka"?`)

	m, cmd := step(t, m, keyRunes("y"))
	assert.False(t, m.confirm.active())

	m, _ = step(t, m, runCmd(t, cmd))
	assert.Equal(t, screenHistory, m.currentScreen)
	assert.Equal(t, "Recipe deleted", m.status)
}

func TestMain_DeleteCancelled(t *testing.T) {
	m := withHistory(t, newTestMainModel(t))

	m, _ = step(t, m, keyRunes("d"))
	m, cmd := step(t, m, keyRunes("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.confirm.active())
	assert.Equal(t, screenHistory, m.currentScreen)
}

func TestMain_ClearCache(t *testing.T) {
	m, ts := newTestMain(t)
	m = withHistory(t, m)
	ts.history.EXPECT().ClearLocalCache(gomock.Any(), int64(7)).Return(nil)

	m, _ = step(t, m, keyRunes("x"))
	m, cmd := step(t, m, keyRunes("y"))
	m, _ = step(t, m, runCmd(t, cmd))

	assert.Equal(t, "Local cache cleared", m.status)
}

func TestMain_Reconnect(t *testing.T) {
	m, ts := newTestMain(t)
	ts.job.EXPECT().Restart(gomock.Any())

	_, cmd := step(t, m, keyRunes("r"))

	assert.Equal(t, reconnectedMsg{}, runCmd(t, cmd))
}

func TestMain_ToggleTheme(t *testing.T) {
	m, ts := newTestMain(t)
	ts.settings.EXPECT().ToggleDarkMode(gomock.Any()).Return(true, nil)

	m, cmd := step(t, m, keyRunes("t"))
	m, _ = step(t, m, runCmd(t, cmd))

	assert.True(t, m.theme.dark)
}

func TestMain_LogoutAndQuit(t *testing.T) {
	m, _ := newTestMain(t)

	out, cmd := step(t, m, keyRunes("L"))
	assert.True(t, out.logout)
	requireQuit(t, cmd)

	out, cmd = step(t, m, keyRunes("q"))
	assert.False(t, out.logout)
	requireQuit(t, cmd)
}

func TestMain_GenerateAndSave(t *testing.T) {
	m, ts := newTestMain(t)
	generated := models.Recipe{Title: "Green omelette", Content: "# Green omelette\n\nwhisk", Timestamp: 5000}
	saved := generated
	saved.ID = "r5"
	saved.UserID = 7

	ts.generation.EXPECT().
		Run(gomock.Any(), models.GenerationRequest{
			Ingredients: "eggs",
			Vibe:        "cozy",
			Filters:     []string{models.FilterVegetarian},
		}).
		Return(models.GenerationSuccess{Recipe: generated})
	ts.history.EXPECT().Save(gomock.Any(), int64(7), generated).Return(saved, nil)

	m, _ = step(t, m, keyRunes("n"))
	require.Equal(t, screenGenerate, m.currentScreen)

	var model tea.Model = m
	model = typeText(model, "eggs")
	model, _ = model.Update(keyType(tea.KeyTab))
	model = typeText(model, "cozy")
	model, _ = model.Update(keyType(tea.KeyTab))
	model, _ = model.Update(keyType(tea.KeyTab))
	model, _ = model.Update(keyType(tea.KeySpace))
	m = model.(mainModel)
	require.True(t, m.generate.filters[0].checked)

	cmd := m.cmdGenerate()
	m, _ = step(t, m, keyType(tea.KeyCtrlG))
	require.True(t, m.generate.loading())
	assert.Contains(t, m.View(), "The chef is cooking...")

	// keys are ignored while a request is in flight
	m, _ = step(t, m, keyType(tea.KeyEsc))
	require.Equal(t, screenGenerate, m.currentScreen)

	m, _ = step(t, m, runCmd(t, cmd))
	require.Equal(t, screenPreview, m.currentScreen)
	assert.Contains(t, m.View(), "not saved yet")

	m, cmd = step(t, m, keyRunes("s"))
	require.True(t, m.preview.saving)
	m, _ = step(t, m, runCmd(t, cmd))

	assert.Equal(t, "r5", m.preview.recipe.ID)
	assert.Equal(t, "Saved to history", m.status)

	m, cmd = step(t, m, keyRunes("s"))
	assert.Equal(t, "Already saved", m.status)
	require.NotNil(t, cmd)
}

func TestMain_GenerationErrorShowsMessage(t *testing.T) {
	m, ts := newTestMain(t)
	ts.generation.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(models.GenerationError{Message: app.MsgGenerationTimeout})

	m, _ = step(t, m, keyRunes("n"))
	m, _ = step(t, m, runCmd(t, m.cmdGenerate()))

	assert.Equal(t, screenGenerate, m.currentScreen)
	assert.Equal(t, app.MsgGenerationTimeout, m.errorOverlay.message)
}

func TestMain_GenerateReadsImages(t *testing.T) {
	m, ts := newTestMain(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "fridge.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0o600))

	ts.generation.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request models.GenerationRequest) models.GenerationState {
			assert.Equal(t, [][]byte{[]byte("jpeg")}, request.Images)
			return models.GenerationError{Message: "stop"}
		})

	m.generate.images.SetValue(path)
	m, _ = step(t, m, runCmd(t, m.cmdGenerate()))
	assert.Equal(t, "stop", m.errorOverlay.message)

	m.errorOverlay.message = ""
	m.generate.images.SetValue(filepath.Join(dir, "missing.jpg"))
	m, _ = step(t, m, runCmd(t, m.cmdGenerate()))
	assert.Contains(t, m.errorOverlay.message, "missing.jpg")
}

func TestMain_CopyToClipboard(t *testing.T) {
	var copied string
	restore := writeClipboard
	t.Cleanup(func() { writeClipboard = restore })
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	m := withHistory(t, newTestMainModel(t))
	m, _ = step(t, m, keyType(tea.KeyEnter))
	m, cmd := step(t, m, keyRunes("c"))
	m, _ = step(t, m, runCmd(t, cmd))

	assert.Equal(t, "# Shakshuka\n\neggs", copied)
	assert.Equal(t, "Copied!", m.status)
}

func TestMain_CopyFailure(t *testing.T) {
	restore := writeClipboard
	t.Cleanup(func() { writeClipboard = restore })
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }

	m := withHistory(t, newTestMainModel(t))
	m, _ = step(t, m, keyType(tea.KeyEnter))
	m, cmd := step(t, m, keyRunes("c"))
	m, _ = step(t, m, runCmd(t, cmd))

	assert.Contains(t, m.errorOverlay.message, "copy to clipboard")
}

func TestMain_BuildInfo(t *testing.T) {
	m := newTestMainModel(t)

	m, _ = step(t, m, keyRunes("v"))
	assert.Contains(t, m.View(), "Version: 1.0.0")

	m, _ = step(t, m, keyType(tea.KeyEsc))
	assert.False(t, m.showBuildInfo)
}

func TestMain_StatusClears(t *testing.T) {
	m := newTestMainModel(t)
	m.status = "Copied!"

	m, _ = step(t, m, clearStatusMsg{})

	assert.Empty(t, m.status)
}

func newTestMainModel(t *testing.T) mainModel {
	t.Helper()
	m, _ := newTestMain(t)
	return m
}
