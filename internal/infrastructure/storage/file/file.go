// internal/infrastructure/storage/file/file.go
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/session"
)

// CartStore persists cart lines as a JSON file, the client-side analog of
// browser local storage.
type CartStore struct {
	path string
}

// NewCartStore creates a file-backed cart store at the given path.
func NewCartStore(path string) *CartStore {
	return &CartStore{path: path}
}

// Load reads the persisted line set. A missing file is an empty cart; a
// corrupt file is an error the cart store downgrades to empty.
func (s *CartStore) Load() ([]cart.Line, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var lines []cart.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to parse cart file: %w", err)
	}
	return lines, nil
}

// Save writes the full line set.
func (s *CartStore) Save(lines []cart.Line) error {
	return writeJSON(s.path, lines)
}

// Clear removes the persisted cart.
func (s *CartStore) Clear() error {
	return removeFile(s.path)
}

// SessionStore persists the session snapshot as a JSON file.
type SessionStore struct {
	path string
}

// NewSessionStore creates a file-backed session store at the given path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load reads the persisted session. A missing file means no session.
func (s *SessionStore) Load() (*session.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &snap, nil
}

// Save writes the session snapshot.
func (s *SessionStore) Save(snap *session.Snapshot) error {
	return writeJSON(s.path, snap)
}

// Clear removes the persisted session.
func (s *SessionStore) Clear() error {
	return removeFile(s.path)
}

func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
