package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	after int
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) SignIn(ctx context.Context) error {
	f.calls = append(f.calls, "signin")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) SignUp(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) afterCommand(ctx context.Context) { f.after++ }

func TestRunREPL_Dispatch(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"signup",
		"",
		"SIGNIN",
		"help",
		"whoami",
		"logout",
		"register",
		"login",
		"exit",
		"whoami",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "(s)" }, bufio.NewReader(strings.NewReader(input)), &out)

	assert.Equal(t, []string{"signup", "signin", "whoami", "logout", "signup", "signin"}, exec.calls)
	assert.Equal(t, 8, exec.after)
	assert.Contains(t, out.String(), "Available commands: signin, signup, exit")
	assert.Contains(t, out.String(), "Available commands: whoami, logout, exit")
	assert.Contains(t, out.String(), "authclient (s)> ")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("sigin\nfoobar\n")), &out)

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), `Unknown command: sigin (did you mean "signin"?)`)
	assert.Contains(t, out.String(), "Unknown command: foobar\n")
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "logout", suggest("logot"))
	assert.Equal(t, "whoami", suggest("whoam"))
	assert.Equal(t, "", suggest("completely-different"))
}
