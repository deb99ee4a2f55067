// Package settings persists TUI preferences per kind: the sort and the
// equality filters that were active when the browser was closed.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/cristianoliveira/hrdesk/internal/config"
	"github.com/cristianoliveira/hrdesk/internal/domain"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML files.
	FileExtTOML = ".toml"
)

const tuiSettingsFilename = "tui" + FileExtTOML

// ViewSettings is what is remembered for one kind.
type ViewSettings struct {
	SortBy    string            `toml:"sortBy,omitempty"`
	SortOrder string            `toml:"sortOrder,omitempty"`
	Filters   map[string]string `toml:"filters,omitempty"`
}

// IsEmpty reports whether nothing is remembered.
func (v ViewSettings) IsEmpty() bool {
	return v.SortBy == "" && v.SortOrder == "" && len(v.Filters) == 0
}

// Settings holds TUI preferences persisted to disk, keyed by kind.
//
// Example:
//
//	[views.leave-requests]
//	sortBy = "startDate"
//	sortOrder = "desc"
//
//	[views.leave-requests.filters]
//	status = "PENDING"
type Settings struct {
	Views map[string]ViewSettings `toml:"views"`
}

// New returns empty settings.
func New() *Settings {
	return &Settings{Views: map[string]ViewSettings{}}
}

// For returns the settings remembered for kind.
func (s *Settings) For(kind domain.Kind) (ViewSettings, bool) {
	v, ok := s.Views[kind.String()]
	return v, ok && !v.IsEmpty()
}

// Set remembers v for kind. Empty settings forget the kind.
func (s *Settings) Set(kind domain.Kind, v ViewSettings) {
	if s.Views == nil {
		s.Views = map[string]ViewSettings{}
	}
	if v.IsEmpty() {
		delete(s.Views, kind.String())
		return
	}
	s.Views[kind.String()] = v
}

// Path returns the settings file location: tui_settings_path when set,
// otherwise tui.toml in the config directory.
func Path() string {
	if override := config.Get("tui_settings_path", ""); override != "" {
		return override
	}
	return filepath.Join(config.Get("config_dir", ""), tuiSettingsFilename)
}

// Load reads the settings file. A missing file yields empty settings.
// Entries for unknown kinds are dropped.
func Load() (*Settings, error) {
	path := Path()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	s := New()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	if s.Views == nil {
		s.Views = map[string]ViewSettings{}
	}
	for name := range s.Views {
		if !domain.Kind(name).IsValid() {
			delete(s.Views, name)
		}
	}
	return s, nil
}

// Save writes s to the settings file, replacing it atomically.
func Save(s *Settings) error {
	if s == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tui-*.toml")
	if err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), FileModeFile); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
