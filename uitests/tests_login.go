package uitests

import (
	"github.com/stretchr/testify/require"
)

const (
	loginFormSelector      = `form[data-testid="login-form"]`
	usernameSelector       = `input[name="username"]`
	passwordSelector       = `input[name="password"]`
	passwordToggleSelector = `input[name="password"] + button`
	dashboardSelector      = `[data-testid="dashboard"]`
	signInButtonText       = "Sign In"
)

// DoLoginTests walks the login page: the form renders, the password
// visibility toggle flips the field between hidden and plain text, and
// signing in with valid credentials reaches the dashboard.
func DoLoginTests(t *T) {
	t.Run("form renders", func(t *T) {
		s := t.requireSession()
		require.NoError(t, s.Open(t.state.baseURL))
		t.RequireElement(loginFormSelector)
		t.RequireElement(usernameSelector)
		t.RequireElement(passwordSelector)
	})

	t.Run("password visibility toggle", func(t *T) {
		require.Equal(t, "password", t.passwordFieldType())

		toggle := t.RequireElement(passwordToggleSelector)
		t.RequireClick(toggle)
		require.Equal(t, "text", t.passwordFieldType(),
			"toggle did not reveal the password")

		t.RequireClick(toggle)
		require.Equal(t, "password", t.passwordFieldType(),
			"second toggle did not hide the password again")
	})

	t.Run("sign in", func(t *T) {
		s := t.requireSession()
		t.RequireInput(t.RequireElement(usernameSelector), t.state.creds.Username)
		t.RequireInput(t.RequireElement(passwordSelector), t.state.creds.Password)

		button, err := s.Page().ElementR("button", signInButtonText)
		require.NoError(t, err, "no %q button found", signInButtonText)
		t.RequireClick(button)

		t.RequireElement(dashboardSelector)
		t.state.loggedIn = true
	})
}

func (t *T) passwordFieldType() string {
	el := t.RequireElement(passwordSelector)
	v, err := el.Property("type")
	require.NoError(t, err)
	return v.Str()
}
