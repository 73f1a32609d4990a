package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the session token under a fixed storage key.
// It is the only on-device state the dashboard keeps.
type TokenStore interface {
	// Token returns the persisted token, or "" when none is stored.
	Token(ctx context.Context) (string, error)
	// Save persists the token, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}

// tokenFileName is the fixed storage key for the file-backed store.
const tokenFileName = "token"

// defaultTokenPath resolves the default token location under the user
// config directory.
func defaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "phish-directory", tokenFileName), nil
}

// FileTokenStore persists the token in a single file with owner-only
// permissions.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a file-backed token store at path.
// An empty path selects the default location under the user config dir.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		p, err := defaultTokenPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileTokenStore{path: path}, nil
}

// Path returns the file location backing the store.
func (s *FileTokenStore) Path() string {
	return s.path
}

// Token reads the persisted token. A missing file means no session.
func (s *FileTokenStore) Token(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token with 0600 permissions, creating parent
// directories as needed.
func (s *FileTokenStore) Save(ctx context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the token file. Idempotent.
func (s *FileTokenStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
