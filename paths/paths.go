package paths

import (
	"os"
	"path/filepath"
)

// GetAppHome returns APPENDER_HOME or ~/.appender default
func GetAppHome() string {
	appHome := os.Getenv("APPENDER_HOME")
	if appHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".appender"
		}
		return filepath.Join(homeDir, ".appender")
	}
	return ExpandPath(appHome)
}

// GetRecentsPath returns $APPENDER_HOME/recents.json
func GetRecentsPath() string {
	return filepath.Join(GetAppHome(), "recents.json")
}

// GetSettingsPath returns $APPENDER_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetAppHome(), "settings.json")
}

// GetSSHDir returns $APPENDER_HOME/ssh, where the serve command keeps its
// host key
func GetSSHDir() string {
	return filepath.Join(GetAppHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
