// Package config manages the persistent CLI settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the persistent application settings.
type Settings struct {
	DBPath    string `json:"db_path,omitempty"`
	MoveCap   int    `json:"move_cap,omitempty"`
	LastRunID string `json:"last_run_id,omitempty"`
}

// StateFile manages the settings file.
type StateFile struct {
	path     string
	settings Settings
}

// DefaultStatePath returns the default settings file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".cubie", "state.json"), nil
}

// NewStateFile creates a settings file manager. A missing file is not an
// error; it is created on the first Save.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// NewDefaultStateFile creates a settings file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load loads the settings from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &sf.settings); err != nil {
		return fmt.Errorf("failed to parse %s: %w", sf.path, err)
	}
	return nil
}

// Save saves the settings to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Settings returns the current settings.
func (sf *StateFile) Settings() Settings {
	return sf.settings
}

// Path returns the settings file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// SetDBPath sets the database path.
func (sf *StateFile) SetDBPath(path string) error {
	sf.settings.DBPath = path
	return sf.Save()
}

// SetMoveCap sets the default cycle move cap.
func (sf *StateFile) SetMoveCap(n int) error {
	if n < 0 {
		return fmt.Errorf("move cap must not be negative: %d", n)
	}
	sf.settings.MoveCap = n
	return sf.Save()
}

// SetLastRun records the most recently saved run.
func (sf *StateFile) SetLastRun(runID string) error {
	sf.settings.LastRunID = runID
	return sf.Save()
}

// DBPath returns the database path.
func (sf *StateFile) DBPath() string {
	return sf.settings.DBPath
}

// MoveCap returns the configured move cap, or 0 if unset.
func (sf *StateFile) MoveCap() int {
	return sf.settings.MoveCap
}

// LastRunID returns the most recently saved run ID.
func (sf *StateFile) LastRunID() string {
	return sf.settings.LastRunID
}
