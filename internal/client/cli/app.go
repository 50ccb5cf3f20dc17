package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/client/screens"
	"github.com/dmitrijs2005/authclient/internal/client/services"
	"github.com/dmitrijs2005/authclient/internal/client/session"
	"github.com/dmitrijs2005/authclient/internal/common"
	"github.com/dmitrijs2005/authclient/internal/logging"
)

// signUpLink, typed at the sign-in email prompt, opens the sign-up form.
const signUpLink = ":signup"

var noticeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

type App struct {
	auth  services.AuthService
	users *session.Store
	log   logging.Logger

	reader *bufio.Reader
	out    io.Writer
	fd     int

	route   screens.Route
	pending screens.Route
	expires time.Time
}

// NewApp builds the REPL. fd is the terminal the password is read from;
// when it is not a terminal passwords are read from in like any other line.
func NewApp(auth services.AuthService, users *session.Store, in io.Reader, out io.Writer, fd int, log logging.Logger) *App {
	return &App{
		auth:   auth,
		users:  users,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		fd:     fd,
		route:  screens.RouteSignIn,
	}
}

// Run prints the banner and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)

	fmt.Fprintln(a.out, "Welcome to authclient (type 'help' for commands)")
	if ok, err := a.auth.HasStoredSession(ctx); err != nil {
		a.log.Warn(ctx, "cannot read stored session", "error", err)
	} else if ok {
		fmt.Fprintln(a.out, "A saved session was found on this device.")
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) status() string {
	if u, ok := a.users.User(); ok {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return fmt.Sprintf("(%s)", a.route)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.users.User()
	return ok
}

func (a *App) deps() screens.Deps {
	return screens.Deps{
		Auth:      a.auth,
		Presenter: a,
		Navigator: a,
		Users:     a.users,
		Log:       a.log,
	}
}

// Alert prints a framed notice and waits for Enter.
func (a *App) Alert(title, message string) {
	fmt.Fprintln(a.out, noticeStyle.Render(title+"\n\n"+message))
	fmt.Fprint(a.out, "Press Enter to continue")
	_, _ = readLine(a.reader)
	fmt.Fprintln(a.out)
}

// Navigate records the destination; the REPL opens it after the current
// command returns.
func (a *App) Navigate(r screens.Route) {
	a.route = r
	a.pending = r
}

func (a *App) afterCommand(ctx context.Context) {
	for a.pending != "" {
		r := a.pending
		a.pending = ""

		switch r {
		case screens.RouteSignIn:
			_ = a.SignIn(ctx)
		case screens.RouteSignUp:
			_ = a.SignUp(ctx)
		case screens.RouteHome:
			_ = a.WhoAmI(ctx)
		}
	}
}

// SignIn opens a fresh sign-in form, collects email and password and
// submits them.
func (a *App) SignIn(ctx context.Context) error {
	a.route = screens.RouteSignIn
	s := screens.NewSignIn(a.deps())

	email, err := GetSimpleText(a.reader, fmt.Sprintf("Email (or %s to create an account)", signUpLink), a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(email) == signUpLink {
		s.ToSignUp()
		return nil
	}
	s.SetEmail(email)

	password, err := GetPassword(a.reader, a.fd, a.out)
	if err != nil {
		return err
	}
	s.SetPassword(string(password))
	common.WipeByteArray(password)

	out := s.Submit(ctx)
	if out.Kind == models.Success && out.Session != nil {
		a.expires = out.Session.AccessExpiresAt
	}
	return nil
}

// SignUp opens a fresh sign-up form: email, name, password.
func (a *App) SignUp(ctx context.Context) error {
	a.route = screens.RouteSignUp
	s := screens.NewSignUp(a.deps())

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	s.SetEmail(email)

	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	s.SetName(name)

	password, err := GetPassword(a.reader, a.fd, a.out)
	if err != nil {
		return err
	}
	s.SetPassword(string(password))
	common.WipeByteArray(password)

	s.Submit(ctx)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.users.User()
	if !ok {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", u.Name, u.Email)
	if !a.expires.IsZero() {
		fmt.Fprintf(a.out, "Access token expires %s\n", a.expires.Local().Format(time.RFC1123))
	}
	return nil
}

// Logout forgets the stored refresh token and the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	a.users.Clear()
	a.expires = time.Time{}
	a.route = screens.RouteSignIn
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
