// Package bootstrap assembles the client from its configuration: logger,
// vault, secure store, HTTP client and auth service.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/authclient/internal/client/client"
	"github.com/dmitrijs2005/authclient/internal/client/config"
	"github.com/dmitrijs2005/authclient/internal/client/securestore"
	"github.com/dmitrijs2005/authclient/internal/client/services"
	"github.com/dmitrijs2005/authclient/internal/client/session"
	"github.com/dmitrijs2005/authclient/internal/logging"
)

// Env is everything a front end needs. Close releases the vault and the
// log file, if any.
type Env struct {
	Config *config.Config
	Log    logging.Logger
	Auth   services.AuthService
	Users  *session.Store

	db      *sql.DB
	logSink io.Closer
}

// OpenLogger builds the logger described by lc. Output goes to lc.File when
// set and to fallback otherwise; a nil fallback discards.
func OpenLogger(lc config.LogConfig, fallback io.Writer) (logging.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}

	l, err := logging.New(lc.Level, lc.Format, w)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, nil, err
	}
	return l, closer, nil
}

// Open wires the client for cfg. logFallback is where logs go when no log
// file is configured.
func Open(ctx context.Context, cfg *config.Config, logFallback io.Writer) (*Env, error) {
	log, sink, err := OpenLogger(cfg.Log, logFallback)
	if err != nil {
		return nil, err
	}

	db, err := securestore.OpenVault(ctx, cfg.VaultPath)
	if err != nil {
		log.Error(ctx, "error opening vault", "path", cfg.VaultPath, "error", err)
		closeQuietly(sink)
		return nil, err
	}

	store, err := securestore.NewEncryptedStore(ctx, db, cfg.KeyFile)
	if err != nil {
		log.Error(ctx, "error opening secure store", "error", err)
		_ = db.Close()
		closeQuietly(sink)
		return nil, err
	}

	api := client.NewHTTPClient(cfg.LoginURL(), cfg.RegisterURL(), cfg.RequestTimeout, log)
	log.Debug(ctx, "client ready", "login_url", cfg.LoginURL(), "register_url", cfg.RegisterURL())

	return &Env{
		Config:  cfg,
		Log:     log,
		Auth:    services.NewAuthService(api, store, log),
		Users:   session.New(),
		db:      db,
		logSink: sink,
	}, nil
}

func (e *Env) Close() error {
	err := e.db.Close()
	if e.logSink != nil {
		err = errors.Join(err, e.logSink.Close())
	}
	return err
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
