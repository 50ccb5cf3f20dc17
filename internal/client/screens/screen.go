package screens

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/authclient/internal/client/client"
	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/client/validation"
	"github.com/dmitrijs2005/authclient/internal/logging"
)

const (
	MsgSignedIn       = "You are signed in."
	MsgAccountCreated = "Your account has been created."
	MsgUnreachable    = "Could not reach the server. Please try again."
	MsgGeneric        = "Something went wrong. Please try again."
)

// ErrSubmitInProgress is reported when Submit is called while an earlier
// submission on the same screen has not finished.
var ErrSubmitInProgress = errors.New("submission already in progress")

type State int

const (
	Idle State = iota
	Validating
	Submitting
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Deps are the capabilities a Screen is built with. Validator may be nil,
// in which case the package-level rules are used.
type Deps struct {
	Auth      Authenticator
	Presenter Presenter
	Navigator Navigator
	Users     UserSetter
	Validator *validation.Validator
	Log       logging.Logger
}

type Screen struct {
	form models.Form
	deps Deps

	mu    sync.Mutex
	creds models.Credentials
	state State

	inFlight atomic.Bool
}

func NewSignIn(deps Deps) *Screen { return newScreen(models.SignIn, deps) }

func NewSignUp(deps Deps) *Screen { return newScreen(models.SignUp, deps) }

func newScreen(form models.Form, deps Deps) *Screen {
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}
	if deps.Log == nil {
		deps.Log = logging.Discard()
	}
	deps.Log = deps.Log.With("form", string(form))
	return &Screen{form: form, deps: deps}
}

func (s *Screen) Form() models.Form { return s.form }

// SetEmail, SetPassword and SetName replace one field. The sign-up form
// stores values trimmed; the sign-in form stores them as typed.
func (s *Screen) SetEmail(v string) {
	s.update(func(c *models.Credentials) { c.Email = s.normalize(v) })
}

func (s *Screen) SetPassword(v string) {
	s.update(func(c *models.Credentials) { c.Password = s.normalize(v) })
}

// SetName is ignored on the sign-in form.
func (s *Screen) SetName(v string) {
	if s.form != models.SignUp {
		return
	}
	s.update(func(c *models.Credentials) { c.Name = s.normalize(v) })
}

func (s *Screen) normalize(v string) string {
	if s.form == models.SignUp {
		return strings.TrimSpace(v)
	}
	return v
}

func (s *Screen) update(fn func(c *models.Credentials)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.creds
	fn(&next)
	s.creds = next
}

// Credentials returns a copy of the collected values.
func (s *Screen) Credentials() models.Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds
}

// CanSubmit reports whether both email and password have been entered. It
// drives the submit control's enabled look only; Submit validates regardless.
func (s *Screen) CanSubmit() bool {
	c := s.Credentials()
	return c.Email != "" && c.Password != ""
}

func (s *Screen) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether a request is outstanding.
func (s *Screen) Loading() bool {
	return s.State() == Submitting
}

func (s *Screen) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// ToSignUp navigates from the sign-in form to the sign-up form.
func (s *Screen) ToSignUp() {
	if s.form != models.SignIn {
		return
	}
	s.deps.Navigator.Navigate(RouteSignUp)
}

// Submit validates the collected credentials and, when they pass, sends one
// sign-in or sign-up request. Every result is shown through the Presenter.
// A call made while another Submit on the same screen is running returns a
// Failure outcome at once and has no other effect.
func (s *Screen) Submit(ctx context.Context) models.Outcome {
	if !s.inFlight.CompareAndSwap(false, true) {
		return models.Outcome{Kind: models.Failure, Message: ErrSubmitInProgress.Error()}
	}
	defer s.inFlight.Store(false)

	s.setState(Validating)
	creds := s.Credentials()
	creds.Email = strings.TrimSpace(creds.Email)

	if res := s.deps.Validator.Validate(s.form, creds); !res.OK() {
		s.deps.Log.Debug(ctx, "validation failed", "rule", res.Rule)
		s.setState(Idle)
		s.deps.Presenter.Alert(AlertTitle, res.Message)
		return models.Outcome{Kind: models.Rejected, Message: res.Message}
	}

	s.setState(Submitting)
	if s.form == models.SignIn {
		return s.signIn(ctx, creds)
	}
	return s.signUp(ctx, creds)
}

func (s *Screen) signIn(ctx context.Context, creds models.Credentials) models.Outcome {
	sess, err := s.deps.Auth.Login(ctx, creds)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.deps.Users.SetUser(sess.User)
	s.setState(Done)
	s.deps.Presenter.Alert(AlertTitle, MsgSignedIn)
	s.deps.Navigator.Navigate(RouteHome)
	return models.Outcome{Kind: models.Success, Message: MsgSignedIn, Session: sess}
}

func (s *Screen) signUp(ctx context.Context, creds models.Credentials) models.Outcome {
	if err := s.deps.Auth.Register(ctx, creds); err != nil {
		return s.fail(ctx, err)
	}

	s.setState(Done)
	s.deps.Presenter.Alert(AlertTitle, MsgAccountCreated)
	s.deps.Navigator.Navigate(RouteSignIn)
	return models.Outcome{Kind: models.Success, Message: MsgAccountCreated}
}

// fail leaves the collected values untouched so the user can correct and
// resubmit.
func (s *Screen) fail(ctx context.Context, err error) models.Outcome {
	msg := FailureMessage(err)
	s.deps.Log.Warn(ctx, "submit failed", "error", err)
	s.setState(Idle)
	s.deps.Presenter.Alert(AlertTitle, msg)
	return models.Outcome{Kind: models.Failure, Message: msg}
}

// FailureMessage maps a submit error to the text shown to the user.
func FailureMessage(err error) string {
	var re *client.RemoteError
	if errors.As(err, &re) {
		if re.Message != "" {
			return re.Message
		}
		// the server answered, just not with a message
		return MsgGeneric
	}
	if errors.Is(err, client.ErrUnavailable) {
		return MsgUnreachable
	}
	return MsgGeneric
}
