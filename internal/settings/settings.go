// Package settings persists the small amount of state that survives between
// runs: the last viewed file and the recent-files list. None of it matters
// for correctness, so loading falls back to defaults and saving is
// best-effort.
package settings

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// MaxRecentFiles caps the recent-files list, most recent first.
const MaxRecentFiles = 10

// Settings is the on-disk state, stored as TOML under the user config dir.
type Settings struct {
	LastFile    string   `toml:"last_file"`
	RecentFiles []string `toml:"recent_files"`
}

// Path returns the settings file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tabv", "settings.toml"), nil
}

// Load reads the settings file, returning zero-value settings when it does
// not exist yet.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return &Settings{}, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Settings, error) {
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &s, nil
		}
		return &Settings{}, err
	}
	return &s, nil
}

// Save writes the settings file, creating the directory if needed.
func (s *Settings) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return s.saveTo(path)
}

func (s *Settings) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}

// Touch records path as the last viewed file and moves it to the front of
// the recent-files list, deduplicated and capped at MaxRecentFiles.
func (s *Settings) Touch(path string) {
	s.LastFile = path

	recent := make([]string, 0, len(s.RecentFiles)+1)
	recent = append(recent, path)
	for _, p := range s.RecentFiles {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > MaxRecentFiles {
		recent = recent[:MaxRecentFiles]
	}
	s.RecentFiles = recent
}
