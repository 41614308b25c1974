package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store := NewRecentsFile(filepath.Join(t.TempDir(), "recents.json"))

	assert.Empty(t, store.Load())
}

func TestLoadMalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recents.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewRecentsFile(path)

	assert.Empty(t, store.Load())
}

func TestAppendPersistsAndDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recents.json")
	store := NewRecentsFile(path)

	require.NoError(t, store.Append("/home/user"))
	require.NoError(t, store.Append("/srv/data"))
	require.NoError(t, store.Append("/home/user"))

	assert.Equal(t, []string{"/home/user", "/srv/data"}, store.Load())

	// A fresh store sees the same contents.
	assert.Equal(t, []string{"/home/user", "/srv/data"}, NewRecentsFile(path).Load())
}

func TestAppendCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "recents.json")
	store := NewRecentsFile(path)

	require.NoError(t, store.Append("/home/user"))

	assert.Equal(t, []string{"/home/user"}, store.Load())
}

func TestAppendRewritesWholeFileAsJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recents.json")
	store := NewRecentsFile(path)

	require.NoError(t, store.Append("/a"))
	require.NoError(t, store.Append("/b"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var recents []string
	require.NoError(t, json.Unmarshal(data, &recents))
	assert.Equal(t, []string{"/a", "/b"}, recents)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recents.json")
	store := NewRecentsFile(path)

	require.NoError(t, store.Append("/home/user"))
	require.NoError(t, store.Clear())

	assert.Empty(t, store.Load())
}
