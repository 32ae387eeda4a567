package tui

import (
	"fmt"

	"github.com/MKhiriev/vibechef/models"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultViewWidth  = 80
	defaultViewHeight = 24
	// title, meta line, dividers, hotkeys and padding
	detailChromeHeight = 11
)

// detailModel shows one recipe in a scrollable viewport. It backs both the
// history detail and the preview of a freshly generated recipe.
type detailModel struct {
	recipe   models.Recipe
	viewport viewport.Model

	saving bool
}

func newDetailModel(recipe models.Recipe, width, height int) detailModel {
	vp := viewport.New(viewSize(width, height))
	vp.SetContent(recipe.Content)
	return detailModel{recipe: recipe, viewport: vp}
}

func viewSize(width, height int) (int, int) {
	if width <= 0 {
		width = defaultViewWidth
	}
	if height <= 0 {
		height = defaultViewHeight
	}
	return max(width-4, 20), max(height-detailChromeHeight, 5)
}

func (m *detailModel) resize(width, height int) {
	m.viewport.Width, m.viewport.Height = viewSize(width, height)
}

// setRecipe keeps the scroll position when only metadata changed.
func (m *detailModel) setRecipe(recipe models.Recipe) {
	if recipe.Content != m.recipe.Content {
		m.viewport.SetContent(recipe.Content)
	}
	m.recipe = recipe
}

func (m detailModel) update(msg tea.Msg) (detailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) View(t theme, hotKeys string) string {
	meta := "not saved yet"
	if m.recipe.IsPersisted() {
		meta = "saved " + formatTimestamp(m.recipe)
	}
	if m.recipe.IsFavorite {
		meta += "  " + t.favorite.Render("★ favorite")
	}
	if m.saving {
		meta += "  saving..."
	}

	body := fmt.Sprintf("%s\n\n%s", t.help.Render(meta), m.viewport.View())
	return t.page(m.recipe.Title, body, hotKeys)
}
