// Package session persists the bearer token used to authenticate against the MatchLLM API.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds the session token for the current user, backed by a file so the
// session survives process restarts. The token is replaced wholesale by
// Set/Clear; callers never mutate it in place.
type Store struct {
	path string

	mu    sync.RWMutex
	token string
}

// NewStore creates a store backed by the file at path. An existing token on
// disk is loaded; a missing or unreadable file simply means no session.
func NewStore(path string) *Store {
	s := &Store{path: path}
	if data, err := os.ReadFile(path); err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// Token returns the current token, or "" when no session is active.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set stores token in memory and on disk.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	s.token = token
	return nil
}

// Clear removes the session from memory and disk. Clearing an absent session
// is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
