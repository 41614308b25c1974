package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
)

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("nested"), 0644))
	return dir
}

func TestList(t *testing.T) {
	dir := setupDir(t)
	b := New()
	defer b.Close()

	entries, err := b.List(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]bool{}
	for _, e := range entries {
		byName[e.Name] = e.IsDir
	}
	assert.False(t, byName["a.txt"])
	assert.True(t, byName["sub"])
}

func TestListMissingDirectory(t *testing.T) {
	b := New()
	defer b.Close()

	_, err := b.List(context.Background(), filepath.Join(t.TempDir(), "nope"))

	var ioErr *domain.IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestIsDir(t *testing.T) {
	dir := setupDir(t)
	b := New()
	defer b.Close()

	isDir, err := b.IsDir(context.Background(), filepath.Join(dir, "sub"))
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = b.IsDir(context.Background(), filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.False(t, isDir)

	_, err = b.IsDir(context.Background(), filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestReadFileIsVerbatim(t *testing.T) {
	dir := setupDir(t)
	b := New()
	defer b.Close()

	data, err := b.ReadFile(context.Background(), filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello\n"), data)

	data, err = b.ReadFile(context.Background(), filepath.Join(dir, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("nested"), data)
}

func TestJoin(t *testing.T) {
	b := New()
	defer b.Close()

	assert.Equal(t, filepath.Join("/home/user", "docs"), b.Join("/home/user", "docs"))
}

func TestOperationsFailAfterClose(t *testing.T) {
	dir := setupDir(t)
	b := New()

	require.NoError(t, b.Close())
	require.NoError(t, b.Close(), "close is idempotent")

	_, err := b.List(context.Background(), dir)
	assert.True(t, domain.IsClosed(err))

	_, err = b.IsDir(context.Background(), dir)
	assert.True(t, domain.IsClosed(err))

	_, err = b.ReadFile(context.Background(), filepath.Join(dir, "a.txt"))
	assert.True(t, domain.IsClosed(err))
}

func TestCancelledContext(t *testing.T) {
	dir := setupDir(t)
	b := New()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.List(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}
