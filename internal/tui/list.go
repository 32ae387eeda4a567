package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vibechef/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const listTitleWidth = 48

type historyModel struct {
	recipes       []models.Recipe
	idx           int
	favoritesOnly bool
	loaded        bool
	updatedAt     time.Time

	// search holds the text filter; searching is true while it has focus.
	search    textinput.Model
	searching bool
}

func newHistoryModel() historyModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "title or ingredient"
	search.CharLimit = 100
	search.Width = 40

	return historyModel{search: search}
}

// setRecipes replaces the list with a new emission, keeping the cursor on
// the same recipe when it is still present.
func (m *historyModel) setRecipes(recipes []models.Recipe, now time.Time) {
	selected, hadSelection := m.current()

	m.recipes = recipes
	m.loaded = true
	m.updatedAt = now

	m.idx = 0
	if hadSelection {
		for i, r := range m.visible() {
			if r.ID == selected.ID {
				m.idx = i
				break
			}
		}
	}
	m.clamp()
}

func (m historyModel) query() string {
	return strings.ToLower(strings.TrimSpace(m.search.Value()))
}

// visible applies the favorites tab and the search query. The query matches
// title or content case-insensitively.
func (m historyModel) visible() []models.Recipe {
	query := m.query()
	if !m.favoritesOnly && query == "" {
		return m.recipes
	}

	filtered := make([]models.Recipe, 0, len(m.recipes))
	for _, r := range m.recipes {
		if m.favoritesOnly && !r.IsFavorite {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Title), query) &&
			!strings.Contains(strings.ToLower(r.Content), query) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func (m historyModel) current() (models.Recipe, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.idx < 0 || m.idx >= len(visible) {
		return models.Recipe{}, false
	}
	return visible[m.idx], true
}

// find returns the recipe with id from the latest emission.
func (m historyModel) find(id string) (models.Recipe, bool) {
	for _, r := range m.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}

func (m *historyModel) toggleFavoritesOnly() {
	m.favoritesOnly = !m.favoritesOnly
	m.idx = 0
}

func (m *historyModel) startSearch() tea.Cmd {
	m.searching = true
	return m.search.Focus()
}

// clearSearch drops the query and leaves search mode.
func (m *historyModel) clearSearch() {
	m.searching = false
	m.search.Blur()
	m.search.SetValue("")
	m.idx = 0
}

// updateSearch edits the query while the search field has focus. Enter
// keeps the query and returns to list navigation, esc discards it.
func (m historyModel) updateSearch(msg tea.KeyMsg) (historyModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.clearSearch()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.idx = 0
		m.clamp()
	}
	return m, cmd
}

func (m *historyModel) move(delta int) {
	m.idx += delta
	m.clamp()
}

func (m *historyModel) clamp() {
	if n := len(m.visible()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m historyModel) View(t theme) string {
	var b strings.Builder

	tab := "all"
	if m.favoritesOnly {
		tab = "favorites"
	}
	b.WriteString(fmt.Sprintf("Showing: %s", tab))
	if m.loaded {
		b.WriteString(t.help.Render(fmt.Sprintf("   updated %s", m.updatedAt.Format("15:04:05"))))
	}
	b.WriteString("\n")
	if m.searching || m.query() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.visible()
	switch {
	case !m.loaded:
		b.WriteString("Loading history...")
	case len(visible) == 0 && m.query() != "":
		b.WriteString(fmt.Sprintf("No recipes match %q", strings.TrimSpace(m.search.Value())))
	case len(visible) == 0 && m.favoritesOnly:
		b.WriteString("No favorite recipes yet")
	case len(visible) == 0:
		b.WriteString("No recipes yet, press n to cook something")
	default:
		for i, r := range visible {
			star := "  "
			if r.IsFavorite {
				star = t.favorite.Render("★ ")
			}
			line := fmt.Sprintf("%s%-*s  %s", cursor(i == m.idx), listTitleWidth, fitText(r.Title, listTitleWidth), formatTimestamp(r))
			if i == m.idx {
				line = t.selected.Render(line)
			}
			b.WriteString(star)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
