// Package settings manages persistent user settings for the macshift CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences
type Settings struct {
	// DefaultUsername is used when --username is not specified
	DefaultUsername string `json:"default_username,omitempty"`

	// OutputDir is where snapshot and profile-db files are written
	OutputDir string `json:"output_dir,omitempty"`

	// ProfileDBPath overrides the default profile-db file location
	ProfileDBPath string `json:"profile_db_path,omitempty"`

	// RedisAddr is the default Redis address for the profile db
	RedisAddr string `json:"redis_addr,omitempty"`

	// AuditLogPath overrides the default audit log location
	AuditLogPath string `json:"audit_log_path,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "macshift_settings.json"
	}
	return filepath.Join(home, ".macshift", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetOutputDir returns the output directory (with fallback)
func (s *Settings) GetOutputDir() string {
	if s.OutputDir != "" {
		return s.OutputDir
	}
	return "."
}

// GetProfileDBPath returns the profile-db path (with fallback)
func (s *Settings) GetProfileDBPath() string {
	if s.ProfileDBPath != "" {
		return s.ProfileDBPath
	}
	return filepath.Join(s.GetOutputDir(), "mac_profiles.json")
}

// GetAuditLogPath returns the audit log path (with fallback)
func (s *Settings) GetAuditLogPath() string {
	if s.AuditLogPath != "" {
		return s.AuditLogPath
	}
	return filepath.Join(filepath.Dir(DefaultSettingsPath()), "audit.jsonl")
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
