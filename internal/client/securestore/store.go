package securestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authclient/internal/common"
	"github.com/dmitrijs2005/authclient/internal/cryptox"
	"github.com/dmitrijs2005/authclient/internal/dbx"
	"github.com/dmitrijs2005/authclient/internal/filex"
)

const (
	saltKey    = "vault:salt"
	itemPrefix = "item:"

	secretSize = 32
	saltSize   = 16
)

// ErrBadKeyFile is returned when the device secret file exists but has the
// wrong length.
var ErrBadKeyFile = errors.New("key file is corrupt")

// Store is a string key/value store for secrets.
type Store interface {
	SetItem(ctx context.Context, key, value string) error
	GetItem(ctx context.Context, key string) (string, bool, error)
	RemoveItem(ctx context.Context, key string) error
}

// EncryptedStore seals every value with AES-GCM before it reaches the
// metadata table. The key is derived from a device secret kept in a
// separate file and a salt kept in the vault.
type EncryptedStore struct {
	repo metadata.Repository
	key  []byte
}

// NewEncryptedStore prepares the vault for use: it loads or creates the
// device secret at keyFile and the salt in db, then derives the sealing key.
func NewEncryptedStore(ctx context.Context, db *sql.DB, keyFile string) (*EncryptedStore, error) {
	secret, err := loadOrCreateSecret(keyFile)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(secret)

	var salt []byte
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		s, err := repo.Get(ctx, saltKey)
		if err == nil {
			salt = s
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		salt = common.GenerateRandByteArray(saltSize)
		return repo.Set(ctx, saltKey, salt)
	})
	if err != nil {
		return nil, fmt.Errorf("vault salt: %w", err)
	}

	return &EncryptedStore{
		repo: metadata.NewSQLiteRepository(db),
		key:  cryptox.DeriveKey(secret, salt),
	}, nil
}

func loadOrCreateSecret(path string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	if err == nil {
		if len(secret) != secretSize {
			return nil, fmt.Errorf("%s: %w", path, ErrBadKeyFile)
		}
		return secret, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	if err := filex.EnsureParentDir(path, 0o700); err != nil {
		return nil, fmt.Errorf("create key dir: %w", err)
	}

	secret = common.GenerateRandByteArray(secretSize)
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return secret, nil
}

func (s *EncryptedStore) SetItem(ctx context.Context, key, value string) error {
	ct, nonce, err := cryptox.Seal([]byte(value), s.key)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	// stored as nonce || ciphertext
	return s.repo.Set(ctx, itemPrefix+key, append(nonce, ct...))
}

// GetItem reports ok=false for a key that was never set or has been removed.
func (s *EncryptedStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	blob, err := s.repo.Get(ctx, itemPrefix+key)
	if errors.Is(err, common.ErrorNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	n := cryptox.NonceSize
	if len(blob) < n {
		return "", false, fmt.Errorf("open %s: %w", key, cryptox.ErrDecrypt)
	}
	plain, err := cryptox.Open(blob[n:], blob[:n], s.key)
	if err != nil {
		return "", false, fmt.Errorf("open %s: %w", key, err)
	}
	return string(plain), true, nil
}

func (s *EncryptedStore) RemoveItem(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, itemPrefix+key)
}
