package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/paths"
)

// Settings represents the structure of ~/.appender/settings.json
type Settings struct {
	Debug           *bool  `json:"debug,omitempty"`
	DefaultBaseDir  string `json:"default_base_dir,omitempty"`
	DefaultHost     string `json:"default_host,omitempty"`
	DefaultUser     string `json:"default_user,omitempty"`
	ErrorClearDelay *int   `json:"error_clear_delay,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
	RecentsPath     string `json:"recents_path,omitempty"`
	SuggestionLimit *int   `json:"suggestion_limit,omitempty"`
}

// LoadSettings loads settings from ~/.appender/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that start with ~
	if settings.RecentsPath != "" {
		settings.RecentsPath = paths.ExpandPath(settings.RecentsPath)
	}
	if settings.DefaultBaseDir != "" {
		settings.DefaultBaseDir = paths.ExpandPath(settings.DefaultBaseDir)
	}

	return &settings, nil
}
