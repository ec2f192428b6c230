package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// State is what a Session persists between runs.
type State struct {
	Token string `json:"token"`
	Theme string `json:"theme"`
}

// TokenStore persists session state between runs.
type TokenStore interface {
	Load() (State, error)
	Save(State) error
}

// FileTokenStore keeps session state in a JSON file. A missing file loads as
// empty state.
type FileTokenStore struct {
	Path string
}

// NewFileTokenStore creates a FileTokenStore at the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{Path: path}
}

func (s *FileTokenStore) Load() (State, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return State{}, err
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return State{}, err
	}
	return state, nil
}

func (s *FileTokenStore) Save(state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, raw, 0o600)
}

// memoryTokenStore is an in-process TokenStore for tests and throwaway
// sessions.
type memoryTokenStore struct {
	state State
}

// NewMemoryTokenStore creates a TokenStore that never touches disk.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Load() (State, error) {
	return s.state, nil
}

func (s *memoryTokenStore) Save(state State) error {
	s.state = state
	return nil
}
