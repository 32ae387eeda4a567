// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authFormKind int

const (
	formLogin authFormKind = iota
	formRegister
)

// authFormModel is the login and the registration screen. Registration
// adds a password confirmation field; both dispatch an async command and
// finish with an [authResultMsg], which the root model turns into the
// result of the auth flow on success.
type authFormModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	theme theme
	kind  authFormKind

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newAuthFormModel(ctx context.Context, auth service.ClientAuthService, t theme, kind authFormKind) *authFormModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	inputs := []textinput.Model{loginInput, newPasswordInput("password")}
	if kind == formRegister {
		inputs = append(inputs, newPasswordInput("repeat password"))
	}

	return &authFormModel{
		ctx:    ctx,
		auth:   auth,
		theme:  t,
		kind:   kind,
		inputs: inputs,
	}
}

func newPasswordInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 72
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	return input
}

func (m *authFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *authFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *authFormModel) View() string {
	labels := []string{"Login   ", "Password", "Repeat  "}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ ")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[" + m.action() + "...]\n")
	} else {
		b.WriteString("\n[" + m.action() + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.err.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return m.theme.page(strings.ToUpper(m.action()), strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *authFormModel) action() string {
	if m.kind == formRegister {
		return "Register"
	}
	return "Log in"
}

func (m *authFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	login := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if login == "" || password == "" {
		m.errMsg = "Login and password are required"
		return nil
	}
	if m.kind == formRegister && password != m.inputs[2].Value() {
		m.errMsg = "Passwords do not match"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	auth := m.auth
	kind := m.kind
	user := models.User{Login: login, Password: password}

	return func() tea.Msg {
		var (
			session models.Session
			err     error
		)
		if kind == formRegister {
			session, err = auth.Register(ctx, user)
		} else {
			session, err = auth.Login(ctx, user)
		}
		return authResultMsg{session: session, err: err}
	}
}

func (m *authFormModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
