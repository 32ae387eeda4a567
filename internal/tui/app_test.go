package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T, start string) (rootModel, *testServices) {
	t.Helper()
	ts := newTestServices(t)
	return newRootModel(context.Background(), ts.services, newTheme(false), models.NewAppBuildInfo("1.2.3", "", "abc"), start), ts
}

func update(t *testing.T, r rootModel, msg tea.Msg) (rootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(rootModel)
	require.True(t, ok)
	return root, cmd
}

func TestOnboarding_FinishesAndOpensMenu(t *testing.T) {
	root, ts := newTestRoot(t, pageOnboarding)
	ts.settings.EXPECT().MarkOnboardingSeen(gomock.Any()).Return(nil)

	assert.Contains(t, root.View(), "WELCOME TO VIBECHEF")

	var cmd tea.Cmd
	for range onboardingPages {
		root, cmd = update(t, root, keyType(tea.KeyEnter))
	}
	assert.Contains(t, root.View(), "KEEP WHAT YOU LIKE")

	done := runCmd(t, cmd)
	require.IsType(t, onboardingDoneMsg{}, done)

	root, cmd = update(t, root, done)
	root, _ = update(t, root, runCmd(t, cmd))

	assert.Equal(t, pageMenu, root.currentPage)
	assert.Contains(t, root.View(), "Log in")
}

func TestOnboarding_SkipWithEscStillMarksSeen(t *testing.T) {
	root, ts := newTestRoot(t, pageOnboarding)
	ts.settings.EXPECT().MarkOnboardingSeen(gomock.Any()).Return(errors.New("disk full"))

	root, cmd := update(t, root, keyType(tea.KeyEsc))
	root, cmd = update(t, root, runCmd(t, cmd))
	root, _ = update(t, root, runCmd(t, cmd))

	assert.Equal(t, pageMenu, root.currentPage)
}

func TestRoot_MenuNavigation(t *testing.T) {
	root, _ := newTestRoot(t, pageMenu)

	root, _ = update(t, root, keyType(tea.KeyDown))
	root, cmd := update(t, root, keyType(tea.KeyEnter))
	root, _ = update(t, root, runCmd(t, cmd))
	assert.Equal(t, pageRegister, root.currentPage)
	assert.Contains(t, root.View(), "REGISTER")

	root, cmd = update(t, root, keyType(tea.KeyEsc))
	root, _ = update(t, root, runCmd(t, cmd))
	assert.Equal(t, pageMenu, root.currentPage)
}

func TestRoot_QuitFromMenu(t *testing.T) {
	root, _ := newTestRoot(t, pageMenu)

	root, cmd := update(t, root, keyRunes("q"))

	assert.True(t, root.quitByUser)
	requireQuit(t, cmd)
}

func TestRoot_BuildInfoWindow(t *testing.T) {
	root, _ := newTestRoot(t, pageMenu)

	root, _ = update(t, root, keyRunes("v"))
	view := root.View()
	assert.Contains(t, view, "Version: 1.2.3")
	assert.Contains(t, view, "Date: N/A")
	assert.Contains(t, view, "Commit: abc")

	root, _ = update(t, root, keyType(tea.KeyEsc))
	assert.False(t, root.showBuildInfo)
}

func TestLogin_SuccessEndsFlow(t *testing.T) {
	root, ts := newTestRoot(t, pageLogin)
	session := models.Session{UserID: 7, Login: "alice", Token: "tok"}
	ts.auth.EXPECT().
		Login(gomock.Any(), models.User{Login: "alice", Password: "secret1"}).
		Return(session, nil)

	model := typeText(root, "alice")
	model, _ = model.Update(keyType(tea.KeyTab))
	model = typeText(model, "secret1")
	model, cmd := model.Update(keyType(tea.KeyEnter))

	root = model.(rootModel)
	root, cmd = update(t, root, runCmd(t, cmd))

	assert.Equal(t, session, root.session)
	requireQuit(t, cmd)
}

func TestLogin_FailureShowsMessage(t *testing.T) {
	root, ts := newTestRoot(t, pageLogin)
	ts.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrWrongPassword)

	model := typeText(root, "alice")
	model, _ = model.Update(keyType(tea.KeyTab))
	model = typeText(model, "nope123")
	model, cmd := model.Update(keyType(tea.KeyEnter))

	root = model.(rootModel)
	root, _ = update(t, root, runCmd(t, cmd))

	assert.False(t, root.session.Valid())
	assert.Contains(t, root.View(), "Wrong login or password")
}

func TestAuthForm_Validation(t *testing.T) {
	tests := []struct {
		name   string
		kind   authFormKind
		fields []string
		errMsg string
	}{
		{name: "empty login", kind: formLogin, fields: []string{"", "secret1"}, errMsg: "Login and password are required"},
		{name: "empty password", kind: formLogin, fields: []string{"alice", ""}, errMsg: "Login and password are required"},
		{name: "passwords differ", kind: formRegister, fields: []string{"alice", "secret1", "secret2"}, errMsg: "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServices(t)
			form := newAuthFormModel(context.Background(), ts.auth, newTheme(false), tt.kind)

			var model tea.Model = form
			for i, value := range tt.fields {
				if i > 0 {
					model, _ = model.Update(keyType(tea.KeyTab))
				}
				model = typeText(model, value)
			}
			_, cmd := model.Update(keyType(tea.KeyEnter))

			assert.Nil(t, cmd)
			assert.Equal(t, tt.errMsg, form.errMsg)
			assert.False(t, form.submitting)
		})
	}
}

func TestRegister_CallsRegister(t *testing.T) {
	ts := newTestServices(t)
	form := newAuthFormModel(context.Background(), ts.auth, newTheme(false), formRegister)
	ts.auth.EXPECT().
		Register(gomock.Any(), models.User{Login: "bob", Password: "secret1"}).
		Return(models.Session{UserID: 9, Login: "bob", Token: "t"}, nil)

	var model tea.Model = form
	model = typeText(model, "bob")
	model, _ = model.Update(keyType(tea.KeyTab))
	model = typeText(model, "secret1")
	model, _ = model.Update(keyType(tea.KeyTab))
	model = typeText(model, "secret1")
	_, cmd := model.Update(keyType(tea.KeyEnter))

	result, ok := runCmd(t, cmd).(authResultMsg)
	require.True(t, ok)
	assert.NoError(t, result.err)
	assert.Equal(t, int64(9), result.session.UserID)
	assert.True(t, form.submitting)
}
