package client

import (
	"context"

	"github.com/dmitrijs2005/authclient/internal/client/models"
)

type Client interface {
	Close() error
	Login(ctx context.Context, email string, password string) (*models.Session, error)
	Register(ctx context.Context, email string, name string, password string) error
}
