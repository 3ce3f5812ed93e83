// Package preference persists the local UI preferences of the portfolio.
// The only preference is whether the dark theme is enabled.
package preference

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DarkThemeKey is the key the dark theme flag is stored under.
const DarkThemeKey = "darkTheme"

// Store reads and writes preferences in a YAML file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store backed by the file at path.
// The file is created on the first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// DarkTheme reports whether the dark theme is enabled. A missing file means disabled.
func (s *Store) DarkTheme() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// SetDarkTheme stores the dark theme flag.
func (s *Store) SetDarkTheme(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(enabled)
}

// Toggle flips the dark theme flag and returns the new value.
func (s *Store) Toggle() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled, err := s.read()
	if err != nil {
		return false, err
	}
	enabled = !enabled
	if err := s.write(enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

func (s *Store) read() (bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading preferences %s: %w", s.path, err)
	}
	var prefs map[string]bool
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return false, fmt.Errorf("parsing preferences %s: %w", s.path, err)
	}
	return prefs[DarkThemeKey], nil
}

func (s *Store) write(enabled bool) error {
	data, err := yaml.Marshal(map[string]bool{DarkThemeKey: enabled})
	if err != nil {
		return fmt.Errorf("marshalling preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating preferences dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences %s: %w", s.path, err)
	}
	return nil
}
