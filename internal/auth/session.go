package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// SessionStore persists the current session token in a file, the CLI
// equivalent of a browser session cookie.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store backed by the given file path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Save writes the token, replacing any existing session.
func (s *SessionStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Load returns the stored token, or "" if no session exists.
func (s *SessionStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading session: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the stored session. Clearing a missing session is not
// an error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
