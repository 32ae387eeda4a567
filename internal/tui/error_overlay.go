package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) active() bool {
	return m.message != ""
}

func (m errorOverlayModel) View(t theme) string {
	content := t.err.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return t.overlay.Render(content)
}
