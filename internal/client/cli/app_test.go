package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/authclient/internal/client/client"
	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/client/screens"
	"github.com/dmitrijs2005/authclient/internal/client/session"
	"github.com/dmitrijs2005/authclient/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	LoginRet    *models.Session
	LoginErr    error
	RegisterErr error
	LogoutErr   error
	Stored      bool

	Logins    []models.Credentials
	Registers []models.Credentials
	Logouts   int
	Closed    int
}

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) (*models.Session, error) {
	f.Logins = append(f.Logins, c)
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	f.Stored = true
	return f.LoginRet, nil
}

func (f *fakeAuth) Register(_ context.Context, c models.Credentials) error {
	f.Registers = append(f.Registers, c)
	return f.RegisterErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.Logouts++
	if f.LogoutErr != nil {
		return f.LogoutErr
	}
	f.Stored = false
	return nil
}

func (f *fakeAuth) HasStoredSession(context.Context) (bool, error) { return f.Stored, nil }

func (f *fakeAuth) Close(context.Context) error {
	f.Closed++
	return nil
}

func newSession() *models.Session {
	return &models.Session{
		User:            models.User{Name: "Ann", Email: "ann@x.io", AccessToken: "a"},
		RefreshToken:    "r",
		AccessExpiresAt: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func runApp(t *testing.T, auth *fakeAuth, lines ...string) (*App, string) {
	t.Helper()
	stubTerminal(t, false, nil, errors.New("not a terminal"))

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	app := NewApp(auth, session.New(), in, &out, -1, logging.Discard())
	app.Run(context.Background())
	return app, out.String()
}

func TestApp_SignInFlow(t *testing.T) {
	auth := &fakeAuth{LoginRet: newSession()}

	app, out := runApp(t, auth,
		"signin",
		"  ann@x.io ",
		"pw",
		"", // dismiss notice
		"whoami",
		"logout",
		"whoami",
		"exit",
	)

	require.Equal(t, []models.Credentials{{Email: "ann@x.io", Password: "pw"}}, auth.Logins)
	assert.Contains(t, out, "Notice")
	assert.Contains(t, out, screens.MsgSignedIn)
	assert.Equal(t, 2, strings.Count(out, "Signed in as Ann <ann@x.io>"))
	assert.Contains(t, out, "Access token expires")
	assert.Contains(t, out, "Signed out.")
	assert.Contains(t, out, "Not signed in.")
	assert.Equal(t, 1, auth.Logouts)
	assert.Equal(t, 1, auth.Closed)
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, screens.RouteSignIn, app.route)
}

func TestApp_SignInRejected(t *testing.T) {
	auth := &fakeAuth{LoginErr: &client.RemoteError{StatusCode: 401, Message: "Invalid credentials"}}

	app, out := runApp(t, auth,
		"signin",
		"ann@x.io",
		"bad",
		"",
		"exit",
	)

	assert.Contains(t, out, "Invalid credentials")
	assert.False(t, app.isLoggedIn())
	assert.Len(t, auth.Logins, 1)
}

func TestApp_ValidationNeverSends(t *testing.T) {
	auth := &fakeAuth{LoginRet: newSession()}

	_, out := runApp(t, auth,
		"signin",
		"   ",
		"pw",
		"",
		"exit",
	)

	assert.Contains(t, out, "Please enter your email.")
	assert.Empty(t, auth.Logins)
}

func TestApp_SignUpThenSignIn(t *testing.T) {
	auth := &fakeAuth{LoginRet: newSession()}

	app, out := runApp(t, auth,
		"signin",
		":signup", // link from the sign-in form
		"ann@x.io",
		" Ann ",
		"Passw0rd!",
		"", // dismiss "account created"
		"ann@x.io",
		"Passw0rd!",
		"", // dismiss "signed in"
		"exit",
	)

	require.Equal(t, []models.Credentials{{Email: "ann@x.io", Name: "Ann", Password: "Passw0rd!"}}, auth.Registers)
	require.Len(t, auth.Logins, 1)
	assert.Contains(t, out, screens.MsgAccountCreated)
	assert.Contains(t, out, screens.MsgSignedIn)
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, screens.RouteHome, app.route)
}

func TestApp_StoredSessionBanner(t *testing.T) {
	_, out := runApp(t, &fakeAuth{Stored: true}, "exit")
	assert.Contains(t, out, "A saved session was found on this device.")

	_, out = runApp(t, &fakeAuth{}, "exit")
	assert.NotContains(t, out, "A saved session")
}

func TestApp_LogoutError(t *testing.T) {
	auth := &fakeAuth{LogoutErr: errors.New("disk")}
	_, out := runApp(t, auth, "logout", "exit")
	assert.Contains(t, out, "Logout failed: disk")
}
