package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultFile is the fixed key the username is persisted under.
const DefaultFile = ".vupp-session"

type state struct {
	Username string `json:"username"`
}

// Store keeps the logged-in username on disk. Presence of a non-empty username
// is the only thing that makes the client consider itself authenticated.
type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Username returns the stored username, or "" if nothing is stored.
func (s *Store) Username() (string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("failed to read session file: %w", err)
	}

	var st state
	if err = json.Unmarshal(data, &st); err != nil {
		return "", fmt.Errorf("failed to decode session file: %w", err)
	}

	return st.Username, nil
}

// Set persists username. An empty username removes the session.
func (s *Store) Set(username string) error {
	if username == "" {
		return s.Clear()
	}

	data, err := json.Marshal(state{Username: username})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err = s.fs.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create session dir: %w", err)
		}
	}

	if err = afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

func (s *Store) Clear() error {
	err := s.fs.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}

func (s *Store) IsAuthenticated() bool {
	username, err := s.Username()
	if err != nil {
		logger.Error("failed to read session", zap.Error(err))

		return false
	}

	return username != ""
}
