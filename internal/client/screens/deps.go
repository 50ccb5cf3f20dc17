package screens

import (
	"context"

	"github.com/dmitrijs2005/authclient/internal/client/models"
)

// Route names a destination a screen can navigate to.
type Route string

const (
	RouteSignIn Route = "signin"
	RouteSignUp Route = "signup"
	RouteHome   Route = "home"
)

// AlertTitle is the title of every message a screen presents.
const AlertTitle = "Notice"

// Presenter shows a blocking, dismissible message.
type Presenter interface {
	Alert(title, message string)
}

type Navigator interface {
	Navigate(r Route)
}

// UserSetter receives the signed-in user.
type UserSetter interface {
	SetUser(u models.User)
}

// Authenticator is the part of services.AuthService a screen calls.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Register(ctx context.Context, creds models.Credentials) error
}
