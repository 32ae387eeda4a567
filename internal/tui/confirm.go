package tui

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmClearCache
)

type confirmModel struct {
	action   confirmAction
	message  string
	recipeID string
}

func (m confirmModel) active() bool {
	return m.action != confirmNone
}

func (m confirmModel) View(t theme) string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return t.overlay.Render(content)
}
