package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type screen int

const (
	screenHistory screen = iota
	screenDetail
	screenGenerate
	screenPreview
)

type mainModel struct {
	ctx      context.Context
	services *service.ClientServices
	theme    theme
	build    models.AppBuildInfo
	session  models.Session
	updates  <-chan []models.Recipe
	now      func() time.Time

	currentScreen screen
	history       historyModel
	detail        detailModel
	generate      generateModel
	preview       detailModel

	confirm       confirmModel
	errorOverlay  errorOverlayModel
	showBuildInfo bool
	status        string

	width  int
	height int

	logout bool
}

func newMainModel(ctx context.Context, services *service.ClientServices, t theme, build models.AppBuildInfo, session models.Session, updates <-chan []models.Recipe) mainModel {
	return mainModel{
		ctx:      ctx,
		services: services,
		theme:    t,
		build:    build,
		session:  session,
		updates:  updates,
		now:      time.Now,
		history:  newHistoryModel(),
		generate: newGenerateModel(),
	}
}

func (m mainModel) Init() tea.Cmd {
	return waitForHistory(m.updates)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.errorOverlay.active() {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.confirm.active() {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail.resize(m.width, m.height)
		m.preview.resize(m.width, m.height)
		return m, nil
	case historyUpdatedMsg:
		m.history.setRecipes(msg.recipes, m.now())
		m.syncDetail()
		return m, waitForHistory(m.updates)
	case historyClosedMsg:
		return m, nil
	case generationDoneMsg:
		m.generate.state = msg.state
		switch state := msg.state.(type) {
		case models.GenerationSuccess:
			m.preview = newDetailModel(state.Recipe, m.width, m.height)
			m.currentScreen = screenPreview
		case models.GenerationError:
			m.showError(state.Message)
		}
		return m, nil
	case recipeSavedMsg:
		m.preview.saving = false
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.preview.setRecipe(msg.recipe)
		cmd := m.setStatus("Saved to history")
		return m, cmd
	case recipeDeletedMsg:
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		if m.currentScreen == screenDetail {
			m.currentScreen = screenHistory
		}
		cmd := m.setStatus("Recipe deleted")
		return m, cmd
	case favoriteToggledMsg:
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
		}
		return m, nil
	case cacheClearedMsg:
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		cmd := m.setStatus("Local cache cleared")
		return m, cmd
	case reconnectedMsg:
		cmd := m.setStatus("History subscription restarted")
		return m, cmd
	case themeToggledMsg:
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.theme = newTheme(msg.dark)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		cmd := m.setStatus("Copied!")
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.generate.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.generate.spinner, cmd = m.generate.spinner.Update(msg)
		return m, cmd
	}

	switch m.currentScreen {
	case screenHistory:
		return m.updateHistory(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenGenerate:
		return m.updateGenerate(msg)
	case screenPreview:
		return m.updatePreview(msg)
	}

	return m, nil
}

func (m mainModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.theme, m.build)
	}

	var page string
	switch m.currentScreen {
	case screenHistory:
		page = m.theme.page("HISTORY · "+m.session.Login, m.history.View(m.theme), m.historyHelp())
	case screenDetail:
		page = m.detail.View(m.theme, "↑/↓: scroll │ f: favorite │ c: copy │ d: delete │ esc: back")
	case screenGenerate:
		page = m.theme.page("NEW RECIPE", m.generate.View(m.theme),
			"tab: next field │ space: toggle filter │ ctrl+g: generate │ esc: history")
	case screenPreview:
		page = m.preview.View(m.theme, "↑/↓: scroll │ s: save │ c: copy │ n: new │ esc: edit request")
	}

	var b strings.Builder
	b.WriteString(page)
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.status.Render(m.status))
	}
	if m.confirm.active() {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View(m.theme))
	}
	if m.errorOverlay.active() {
		b.WriteString("\n\n")
		b.WriteString(m.errorOverlay.View(m.theme))
	}
	return b.String()
}

func (m mainModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.history.searching {
		var cmd tea.Cmd
		m.history, cmd = m.history.updateSearch(keyMsg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.search):
		cmd := m.history.startSearch()
		return m, cmd
	case key.Matches(keyMsg, keys.esc):
		m.history.clearSearch()
	case key.Matches(keyMsg, keys.up):
		m.history.move(-1)
	case key.Matches(keyMsg, keys.down):
		m.history.move(1)
	case key.Matches(keyMsg, keys.tab):
		m.history.toggleFavoritesOnly()
	case key.Matches(keyMsg, keys.enter):
		recipe, ok := m.history.current()
		if !ok {
			return m, nil
		}
		m.detail = newDetailModel(recipe, m.width, m.height)
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newRecipe):
		m.currentScreen = screenGenerate
	case key.Matches(keyMsg, keys.favorite):
		recipe, ok := m.history.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggleFavorite(recipe)
	case key.Matches(keyMsg, keys.delete):
		recipe, ok := m.history.current()
		if !ok {
			return m, nil
		}
		m.askDelete(recipe)
	case key.Matches(keyMsg, keys.clearCache):
		m.confirm = confirmModel{action: confirmClearCache, message: "Clear the local cache of your history?"}
	case key.Matches(keyMsg, keys.reconnect):
		return m, m.cmdReconnect()
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdToggleTheme()
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m mainModel) historyHelp() string {
	if m.history.searching {
		return "type to filter │ enter: apply │ esc: clear search"
	}
	return "enter: open │ /: search │ n: new │ f: favorite │ d: delete │ tab: all/favorites │ x: clear cache │ r: reconnect │ t: theme │ v: version │ L: logout │ q: quit"
}

func (m mainModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHistory
			return m, nil
		case key.Matches(keyMsg, keys.favorite):
			return m, m.cmdToggleFavorite(m.detail.recipe)
		case key.Matches(keyMsg, keys.copy):
			return m, cmdCopyToClipboard(m.detail.recipe.Content)
		case key.Matches(keyMsg, keys.delete):
			m.askDelete(m.detail.recipe)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.update(msg)
	return m, cmd
}

func (m mainModel) updateGenerate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.generate.loading() {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHistory
			return m, nil
		case key.Matches(keyMsg, keys.generate):
			m.generate.state = models.GenerationLoading{}
			return m, tea.Batch(m.generate.spinner.Tick, m.cmdGenerate())
		}
	}

	var cmd tea.Cmd
	m.generate, cmd = m.generate.update(msg)
	return m, cmd
}

func (m mainModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenGenerate
			return m, nil
		case key.Matches(keyMsg, keys.newRecipe):
			m.generate = newGenerateModel()
			m.currentScreen = screenGenerate
			return m, nil
		case key.Matches(keyMsg, keys.copy):
			return m, cmdCopyToClipboard(m.preview.recipe.Content)
		case key.Matches(keyMsg, keys.save):
			if m.preview.saving {
				return m, nil
			}
			if m.preview.recipe.IsPersisted() {
				cmd := m.setStatus("Already saved")
				return m, cmd
			}
			m.preview.saving = true
			return m, m.cmdSave(m.preview.recipe)
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.update(msg)
	return m, cmd
}

func (m mainModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		confirm := m.confirm
		m.confirm = confirmModel{}
		switch confirm.action {
		case confirmDelete:
			return m, m.cmdDelete(confirm.recipeID)
		case confirmClearCache:
			return m, m.cmdClearCache()
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m *mainModel) askDelete(recipe models.Recipe) {
	m.confirm = confirmModel{
		action:   confirmDelete,
		message:  fmt.Sprintf("Delete %q?", recipe.Title),
		recipeID: recipe.ID,
	}
}

// syncDetail refreshes the open recipe from the latest emission and leaves
// the detail screen when the recipe is gone.
func (m *mainModel) syncDetail() {
	if m.currentScreen != screenDetail {
		return
	}
	recipe, ok := m.history.find(m.detail.recipe.ID)
	if !ok {
		m.currentScreen = screenHistory
		return
	}
	m.detail.setRecipe(recipe)
}

func (m *mainModel) showError(message string) {
	m.errorOverlay.message = message
}

func (m *mainModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func waitForHistory(updates <-chan []models.Recipe) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		recipes, ok := <-updates
		if !ok {
			return historyClosedMsg{}
		}
		return historyUpdatedMsg{recipes: recipes}
	}
}

func (m mainModel) cmdGenerate() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GenerationService
	request, paths := m.generate.request()

	return func() tea.Msg {
		images, err := readImages(paths)
		if err != nil {
			return generationDoneMsg{state: models.GenerationError{Message: err.Error()}}
		}
		request.Images = images
		return generationDoneMsg{state: svc.Run(ctx, request)}
	}
}

func (m mainModel) cmdSave(recipe models.Recipe) tea.Cmd {
	ctx := m.ctx
	history := m.services.HistorySync
	userID := m.session.UserID

	return func() tea.Msg {
		saved, err := history.Save(ctx, userID, recipe)
		return recipeSavedMsg{recipe: saved, err: err}
	}
}

func (m mainModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	history := m.services.HistorySync
	userID := m.session.UserID

	return func() tea.Msg {
		return recipeDeletedMsg{err: history.Delete(ctx, userID, id)}
	}
}

func (m mainModel) cmdToggleFavorite(recipe models.Recipe) tea.Cmd {
	ctx := m.ctx
	history := m.services.HistorySync
	userID := m.session.UserID

	return func() tea.Msg {
		return favoriteToggledMsg{err: history.ToggleFavorite(ctx, userID, recipe.ID, !recipe.IsFavorite)}
	}
}

func (m mainModel) cmdClearCache() tea.Cmd {
	ctx := m.ctx
	history := m.services.HistorySync
	userID := m.session.UserID

	return func() tea.Msg {
		return cacheClearedMsg{err: history.ClearLocalCache(ctx, userID)}
	}
}

func (m mainModel) cmdReconnect() tea.Cmd {
	ctx := m.ctx
	job := m.services.HistoryJob

	return func() tea.Msg {
		job.Restart(ctx)
		return reconnectedMsg{}
	}
}

func (m mainModel) cmdToggleTheme() tea.Cmd {
	ctx := m.ctx
	settings := m.services.SettingsService

	return func() tea.Msg {
		dark, err := settings.ToggleDarkMode(ctx)
		return themeToggledMsg{dark: dark, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
