// Package tui is the full-screen authclient front end built on bubbletea.
//
// The model shows one route at a time (sign in, sign up or home). Screens
// talk back through a Bridge: alerts become a modal overlaid on the current
// view and navigation swaps the route. Submissions run in a tea.Cmd so the
// spinner keeps turning while a request is outstanding.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/client/screens"
	"github.com/dmitrijs2005/authclient/internal/client/services"
	"github.com/dmitrijs2005/authclient/internal/client/session"
	"github.com/dmitrijs2005/authclient/internal/logging"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type logoutDoneMsg struct {
	err error
}

type storedSessionMsg struct {
	found bool
}

type Model struct {
	ctx    context.Context
	auth   services.AuthService
	users  *session.Store
	bridge *Bridge
	log    logging.Logger

	route   screens.Route
	form    *form
	modal   *alertMsg
	spinner spinner.Model
	expires time.Time
	stored  bool

	width  int
	height int
}

func New(ctx context.Context, auth services.AuthService, users *session.Store, bridge *Bridge, log logging.Logger) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:     ctx,
		auth:    auth,
		users:   users,
		bridge:  bridge,
		log:     log,
		spinner: sp,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.open(screens.RouteSignIn)
	return m
}

func (m *Model) deps() screens.Deps {
	return screens.Deps{
		Auth:      m.auth,
		Presenter: m.bridge,
		Navigator: m.bridge,
		Users:     m.users,
		Log:       m.log,
	}
}

// open switches to route. Forms are rebuilt on every visit so no values
// survive leaving a screen.
func (m *Model) open(r screens.Route) {
	m.route = r
	switch r {
	case screens.RouteSignIn:
		m.form = newForm(screens.NewSignIn(m.deps()))
	case screens.RouteSignUp:
		m.form = newForm(screens.NewSignUp(m.deps()))
	default:
		m.form = nil
	}
}

func (m *Model) Init() tea.Cmd {
	auth, ctx, log := m.auth, m.ctx, m.log
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		ok, err := auth.HasStoredSession(ctx)
		if err != nil {
			log.Warn(ctx, "cannot read stored session", "error", err)
			return nil
		}
		return storedSessionMsg{found: ok}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case alertMsg:
		// a newer alert replaces the open one; its caller is released
		m.dismiss()
		m.modal = &msg
		return m, nil

	case navigateMsg:
		m.open(msg.route)
		return m, nil

	case submitDoneMsg:
		if s := msg.outcome.Session; msg.outcome.Kind == models.Success && s != nil {
			m.expires = s.AccessExpiresAt
		}
		return m, nil

	case storedSessionMsg:
		m.stored = msg.found
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			m.log.Error(m.ctx, "logout failed", "error", msg.err)
			m.modal = &alertMsg{title: screens.AlertTitle, message: screens.MsgGeneric}
			return m, nil
		}
		m.users.Clear()
		m.expires = time.Time{}
		m.stored = false
		m.open(screens.RouteSignIn)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// an open modal swallows the key that dismisses it
	if m.modal != nil {
		m.dismiss()
		return m, nil
	}

	if m.form == nil {
		return m.handleHomeKey(msg)
	}

	if msg.String() == "esc" && m.route == screens.RouteSignUp {
		m.open(screens.RouteSignIn)
		return m, nil
	}
	return m, m.form.update(m.ctx, msg)
}

func (m *Model) dismiss() {
	if m.modal == nil {
		return
	}
	if m.modal.done != nil {
		close(m.modal.done)
	}
	m.modal = nil
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		auth, ctx := m.auth, m.ctx
		return m, func() tea.Msg {
			return logoutDoneMsg{err: auth.Logout(ctx)}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var body string
	if m.form != nil {
		body = m.form.view(m.spinner.View())
		if m.stored && m.route == screens.RouteSignIn {
			body += "\n" + hintStyle.Render("A saved session was found on this device.")
		}
	} else {
		body = m.homeView()
	}

	if m.modal == nil {
		return body
	}
	box := modalStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.modal.title),
			"",
			m.modal.message,
			"",
			hintStyle.Render("press any key"),
		),
	)
	return overlayCenter(body, box, m.width, m.height)
}

func (m *Model) homeView() string {
	u, ok := m.users.User()
	if !ok {
		return errStyle.Render("Not signed in.") + "\n\n" + hintStyle.Render("q: quit")
	}

	s := titleStyle.Render("Welcome, "+u.Name) + "\n\n"
	s += fmt.Sprintf("Email: %s\n", u.Email)
	if !m.expires.IsZero() {
		s += fmt.Sprintf("Session expires: %s\n", m.expires.Local().Format(time.RFC1123))
	}
	s += "\n" + hintStyle.Render("l: sign out  q: quit")
	return s
}
