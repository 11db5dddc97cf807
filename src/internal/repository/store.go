package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Storage slot keys. These match the record layout the wallet has always
// used, one JSON document per key.
const (
	KeyAuth               = "trading_wallet_auth"
	KeyUser               = "trading_wallet_user"
	KeyWallet             = "trading_wallet_data"
	KeyNotifications      = "trading_wallet_notifications"
	KeyWithdrawalDefaults = "admin_default_withdrawal"
)

var storageKeys = []string{
	KeyAuth,
	KeyUser,
	KeyWallet,
	KeyNotifications,
	KeyWithdrawalDefaults,
}

var (
	ErrMalformedStorage = errors.New("malformed storage")
	ErrNotFound         = errors.New("not found")
)

// Store is a key-value adapter persisting one JSON document per key under a
// data directory. Writes are immediate and whole-record. A process-local
// mutex serializes access; concurrent processes sharing the directory get
// last-writer-wins, which is accepted for a single-user local wallet.
type Store struct {
	mu  sync.Mutex
	fs  afero.Fs
	dir string
}

func NewStore(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the document stored under key into v. It returns ErrNotFound
// when the slot is absent and ErrMalformedStorage when the stored text does
// not parse; the caller decides whether to fall back to a default.
func (s *Store) Get(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedStorage, key, err)
	}
	return nil
}

// Set serializes v and replaces the document under key. A failed write is a
// hard error; nothing is partially applied.
func (s *Store) Set(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Exists distinguishes an absent slot from a present-but-empty one.
func (s *Store) Exists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := afero.Exists(s.fs, s.path(key))
	return err == nil && ok
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// ClearAll removes every known storage slot.
func (s *Store) ClearAll() error {
	for _, key := range storageKeys {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
