package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAppHomeFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APPENDER_HOME", dir)

	assert.Equal(t, dir, GetAppHome())
	assert.Equal(t, filepath.Join(dir, "recents.json"), GetRecentsPath())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(dir, "ssh"), GetSSHDir())
}

func TestGetAppHomeDefault(t *testing.T) {
	t.Setenv("APPENDER_HOME", "")

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".appender"), GetAppHome())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "docs"), ExpandPath("~/docs"))
	assert.Equal(t, "/absolute/path", ExpandPath("/absolute/path"))
	assert.Equal(t, "relative", ExpandPath("relative"))
}
