// Package services contains the client's application services.
// AuthService talks to the auth backend and keeps the refresh token in the
// secure store.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authclient/internal/client/client"
	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/client/securestore"
	"github.com/dmitrijs2005/authclient/internal/common"
	"github.com/dmitrijs2005/authclient/internal/logging"
)

// ErrStore wraps failures of the secure store so callers can tell them
// apart from transport errors.
var ErrStore = errors.New("secure store")

// AuthService defines the authentication operations used by the screens.
//
//   - Login: authenticate and persist the refresh token.
//   - Register: create an account; nothing is stored.
//   - Logout: forget the stored refresh token.
//   - HasStoredSession: report whether a refresh token is stored.
//   - Close: release the underlying client.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Register(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	HasStoredSession(ctx context.Context) (bool, error)
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  securestore.Store
	log    logging.Logger
}

func NewAuthService(c client.Client, store securestore.Store, log logging.Logger) AuthService {
	return &authService{client: c, store: store, log: log}
}

// Login sends the credentials and, on success, stores the refresh token
// exactly once before returning the session. A token that cannot be stored
// fails the login.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	s, err := a.client.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := a.store.SetItem(ctx, common.RefreshTokenKey, s.RefreshToken); err != nil {
		a.log.Error(ctx, "refresh token not saved", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	a.log.Info(ctx, "signed in", "email", s.User.Email)
	return s, nil
}

func (a *authService) Register(ctx context.Context, creds models.Credentials) error {
	if err := a.client.Register(ctx, creds.Email, creds.Name, creds.Password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	a.log.Info(ctx, "account created", "email", creds.Email)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.RemoveItem(ctx, common.RefreshTokenKey); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

func (a *authService) HasStoredSession(ctx context.Context) (bool, error) {
	_, ok, err := a.store.GetItem(ctx, common.RefreshTokenKey)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return ok, nil
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
