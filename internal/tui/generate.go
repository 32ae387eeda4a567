package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/vibechef/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusIngredients = iota
	focusVibe
	focusImages
	focusFilters
	generateFields
)

type filterOption struct {
	name    string
	checked bool
}

// generateModel is the recipe request form: ingredients, vibe, image files
// and dietary filters.
type generateModel struct {
	ingredients textarea.Model
	vibe        textinput.Model
	images      textinput.Model
	filters     []filterOption
	filterIdx   int
	focus       int

	spinner spinner.Model
	state   models.GenerationState
}

func newGenerateModel() generateModel {
	ingredients := textarea.New()
	ingredients.Placeholder = "eggs, spinach, feta, half a lemon..."
	ingredients.CharLimit = 4000
	ingredients.SetWidth(60)
	ingredients.SetHeight(4)
	ingredients.Focus()

	vibe := textinput.New()
	vibe.Placeholder = "cozy sunday"
	vibe.CharLimit = 200
	vibe.Width = 40

	images := textinput.New()
	images.Placeholder = "photo.jpg, fridge.png"
	images.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return generateModel{
		ingredients: ingredients,
		vibe:        vibe,
		images:      images,
		filters: []filterOption{
			{name: models.FilterVegetarian},
			{name: models.FilterGlutenFree},
			{name: models.FilterSpicy},
		},
		spinner: s,
		state:   models.GenerationInitial{},
	}
}

func (m generateModel) loading() bool {
	_, ok := m.state.(models.GenerationLoading)
	return ok
}

// update handles form navigation and editing. Generation itself is started
// by the main model.
func (m generateModel) update(msg tea.Msg) (generateModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % generateFields)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus((m.focus - 1 + generateFields) % generateFields)
			return m, nil
		}

		if m.focus == focusFilters {
			switch {
			case key.Matches(keyMsg, keys.left):
				if m.filterIdx > 0 {
					m.filterIdx--
				}
			case key.Matches(keyMsg, keys.right):
				if m.filterIdx < len(m.filters)-1 {
					m.filterIdx++
				}
			case key.Matches(keyMsg, keys.space), key.Matches(keyMsg, keys.enter):
				m.filters[m.filterIdx].checked = !m.filters[m.filterIdx].checked
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusIngredients:
		m.ingredients, cmd = m.ingredients.Update(msg)
	case focusVibe:
		m.vibe, cmd = m.vibe.Update(msg)
	case focusImages:
		m.images, cmd = m.images.Update(msg)
	}
	return m, cmd
}

func (m *generateModel) setFocus(focus int) {
	m.ingredients.Blur()
	m.vibe.Blur()
	m.images.Blur()

	m.focus = focus
	switch focus {
	case focusIngredients:
		m.ingredients.Focus()
	case focusVibe:
		m.vibe.Focus()
	case focusImages:
		m.images.Focus()
	}
}

// imagePaths splits the comma separated image field.
func (m generateModel) imagePaths() []string {
	var paths []string
	for _, p := range strings.Split(m.images.Value(), ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// request builds the generation request without reading image files;
// paths are returned for the command to load.
func (m generateModel) request() (models.GenerationRequest, []string) {
	request := models.GenerationRequest{
		Ingredients: strings.TrimSpace(m.ingredients.Value()),
		Vibe:        strings.TrimSpace(m.vibe.Value()),
	}
	for _, f := range m.filters {
		if f.checked {
			request.Filters = append(request.Filters, f.name)
		}
	}
	return request, m.imagePaths()
}

func readImages(paths []string) ([][]byte, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	images := make([][]byte, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read image %q: %w", p, err)
		}
		images = append(images, data)
	}
	return images, nil
}

func (m generateModel) View(t theme) string {
	var b strings.Builder

	b.WriteString(fieldLabel(t, "Ingredients", m.focus == focusIngredients))
	b.WriteString("\n")
	b.WriteString(m.ingredients.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel(t, "Vibe", m.focus == focusVibe))
	b.WriteString("  ")
	b.WriteString(m.vibe.View())
	b.WriteString("\n")

	b.WriteString(fieldLabel(t, "Photos", m.focus == focusImages))
	b.WriteString("  ")
	b.WriteString(m.images.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel(t, "Filters", m.focus == focusFilters))
	b.WriteString("  ")
	for i, f := range m.filters {
		option := checkbox(f.checked) + " " + f.name
		if m.focus == focusFilters && i == m.filterIdx {
			option = t.selected.Render(option)
		}
		b.WriteString(option)
		b.WriteString("   ")
	}
	b.WriteString("\n")

	if m.loading() {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" The chef is cooking...")
	}

	return strings.TrimRight(b.String(), " \n")
}

func fieldLabel(t theme, label string, focused bool) string {
	if focused {
		return t.selected.Render(label)
	}
	return label
}
