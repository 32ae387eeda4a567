package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	space     key.Binding
	quit      key.Binding
	forceQuit key.Binding

	newRecipe  key.Binding
	favorite   key.Binding
	delete     key.Binding
	copy       key.Binding
	clearCache key.Binding
	reconnect  key.Binding
	search     key.Binding
	theme      key.Binding
	version    key.Binding
	logout     key.Binding
	yes        key.Binding
	no         key.Binding

	// generate is bound to ctrl so it works while a text field has focus
	generate key.Binding
	save     key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	space:     key.NewBinding(key.WithKeys(" ")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

	newRecipe:  key.NewBinding(key.WithKeys("n")),
	favorite:   key.NewBinding(key.WithKeys("f")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	clearCache: key.NewBinding(key.WithKeys("x")),
	reconnect:  key.NewBinding(key.WithKeys("r")),
	search:     key.NewBinding(key.WithKeys("/")),
	theme:      key.NewBinding(key.WithKeys("t")),
	version:    key.NewBinding(key.WithKeys("v")),
	logout:     key.NewBinding(key.WithKeys("L")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),

	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	save:     key.NewBinding(key.WithKeys("s", "ctrl+s")),
}
