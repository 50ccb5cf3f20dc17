// Package securestore keeps small secrets (the refresh token) encrypted in a
// local SQLite vault.
package securestore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/authclient/internal/client/migrations"
	"github.com/dmitrijs2005/authclient/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenVault opens (creating if needed) the vault database at path and brings
// its schema up to date.
func OpenVault(ctx context.Context, path string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(path, 0o700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("vault migrations: %w", err)
	}
	return db, nil
}
