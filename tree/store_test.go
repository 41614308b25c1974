package tree

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/search"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/testutil"
)

func TestCreateRoot(t *testing.T) {
	fs := testutil.NewFakeFS()
	store := NewStore(fs, nil)

	root := store.CreateRoot("/home/user")

	assert.Equal(t, "/home/user", root.Key)
	assert.Equal(t, "/home/user", root.DisplayName)
	assert.Equal(t, domain.KindDirectory, root.Kind)
	assert.Equal(t, domain.RootParent, root.Parent)
	assert.False(t, root.Expanded)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "/home/user", store.Root())
}

func TestCreateRootDiscardsPreviousTree(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/old", ports.Entry{Name: "f.txt"})
	fs.AddFile("/old/f.txt", []byte("x"))

	index := search.NewIndex()
	store := NewStore(fs, index)

	store.CreateRoot("/old")
	require.NoError(t, store.Expand(context.Background(), "/old"))
	require.Equal(t, 2, store.Len())
	require.Len(t, index.Query("f", 10), 1)

	store.CreateRoot("/new")

	assert.Equal(t, 1, store.Len())
	assert.Empty(t, index.Query("f", 10))
	_, ok := store.Get("/old/f.txt")
	assert.False(t, ok)
}

func TestExpandOrdersDirectoriesFirstCaseInsensitive(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/r",
		ports.Entry{Name: "b.txt"},
		ports.Entry{Name: "a", IsDir: true},
		ports.Entry{Name: "C", IsDir: true},
	)

	store := NewStore(fs, nil)
	store.CreateRoot("/r")

	require.NoError(t, store.Expand(context.Background(), "/r"))

	root, ok := store.Get("/r")
	require.True(t, ok)
	assert.True(t, root.Expanded)
	assert.Equal(t, []string{"/r/C", "/r/a", "/r/b.txt"}, root.Children)

	child, ok := store.Get("/r/b.txt")
	require.True(t, ok)
	assert.Equal(t, domain.KindFile, child.Kind)
	assert.Equal(t, "b.txt", child.DisplayName)
	assert.Equal(t, "/r", child.Parent)
}

func TestExpandIsIdempotent(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/r", ports.Entry{Name: "a.txt"})
	fs.AddFile("/r/a.txt", []byte("x"))

	store := NewStore(fs, nil)
	store.CreateRoot("/r")

	require.NoError(t, store.Expand(context.Background(), "/r"))
	require.NoError(t, store.Expand(context.Background(), "/r"))

	assert.Equal(t, 1, fs.Listings("/r"))
	root, _ := store.Get("/r")
	assert.Equal(t, []string{"/r/a.txt"}, root.Children)
}

func TestExpandUnknownKeyIsNoOp(t *testing.T) {
	store := NewStore(testutil.NewFakeFS(), nil)
	store.CreateRoot("/r")

	assert.NoError(t, store.Expand(context.Background(), "/gone"))
	assert.Equal(t, 1, store.Len())
}

func TestExpandFileNodeFails(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/r", ports.Entry{Name: "a.txt"})

	store := NewStore(fs, nil)
	store.CreateRoot("/r")
	require.NoError(t, store.Expand(context.Background(), "/r"))

	err := store.Expand(context.Background(), "/r/a.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestExpandFailureLeavesNodeUnexpanded(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/r", ports.Entry{Name: "sub", IsDir: true})
	fs.ListErr["/r/sub"] = errors.New("permission denied")

	store := NewStore(fs, nil)
	store.CreateRoot("/r")
	require.NoError(t, store.Expand(context.Background(), "/r"))

	err := store.Expand(context.Background(), "/r/sub")
	require.Error(t, err)

	node, ok := store.Get("/r/sub")
	require.True(t, ok)
	assert.False(t, node.Expanded)
	assert.Empty(t, node.Children)
	assert.Equal(t, 2, store.Len())

	// A later retry succeeds once the backend recovers.
	delete(fs.ListErr, "/r/sub")
	fs.AddDir("/r/sub", ports.Entry{Name: "deep.txt"})
	require.NoError(t, store.Expand(context.Background(), "/r/sub"))

	node, _ = store.Get("/r/sub")
	assert.True(t, node.Expanded)
	assert.Equal(t, []string{"/r/sub/deep.txt"}, node.Children)
}

func TestConcurrentExpandsShareOneListing(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/r", ports.Entry{Name: "a.txt"})
	fs.ListDelay = 50 * time.Millisecond

	store := NewStore(fs, nil)
	store.CreateRoot("/r")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Expand(context.Background(), "/r"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fs.Listings("/r"))
	root, _ := store.Get("/r")
	assert.Equal(t, []string{"/r/a.txt"}, root.Children)
}

func TestExpandFeedsFileSink(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/r",
		ports.Entry{Name: "notes.txt"},
		ports.Entry{Name: "docs", IsDir: true},
	)

	index := search.NewIndex()
	store := NewStore(fs, index)
	store.CreateRoot("/r")

	require.NoError(t, store.Expand(context.Background(), "/r"))

	assert.Equal(t, []string{"/r/notes.txt"}, index.Query("notes", 10))
	assert.Empty(t, index.Query("docs", 10), "directories are not indexed")
}

func TestRemoveSubtree(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/r",
		ports.Entry{Name: "sub", IsDir: true},
		ports.Entry{Name: "top.txt"},
	)
	fs.AddDir("/r/sub", ports.Entry{Name: "deep.txt"})

	store := NewStore(fs, nil)
	store.CreateRoot("/r")
	require.NoError(t, store.Expand(context.Background(), "/r"))
	require.NoError(t, store.Expand(context.Background(), "/r/sub"))
	require.Equal(t, 4, store.Len())

	store.RemoveSubtree("/r/sub")

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get("/r/sub")
	assert.False(t, ok)
	_, ok = store.Get("/r/sub/deep.txt")
	assert.False(t, ok)

	root, _ := store.Get("/r")
	assert.Equal(t, []string{"/r/top.txt"}, root.Children)
}

func TestRemoveSubtreeUnknownKeyIsNoOp(t *testing.T) {
	store := NewStore(testutil.NewFakeFS(), nil)
	store.CreateRoot("/r")

	store.RemoveSubtree("/nope")

	assert.Equal(t, 1, store.Len())
}

func TestRemoveSubtreeOfRootEmptiesTree(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/r", ports.Entry{Name: "a.txt"})

	store := NewStore(fs, nil)
	store.CreateRoot("/r")
	require.NoError(t, store.Expand(context.Background(), "/r"))

	store.RemoveSubtree("/r")

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, "", store.Root())
}

func TestAncestorChain(t *testing.T) {
	fs := testutil.NewFakeFS()
	fs.AddDir("/r", ports.Entry{Name: "sub", IsDir: true})
	fs.AddDir("/r/sub", ports.Entry{Name: "deep.txt"})

	store := NewStore(fs, nil)
	store.CreateRoot("/r")
	require.NoError(t, store.Expand(context.Background(), "/r"))
	require.NoError(t, store.Expand(context.Background(), "/r/sub"))

	assert.Equal(t,
		[]string{"/r/sub/deep.txt", "/r/sub", "/r"},
		store.AncestorChain("/r/sub/deep.txt"))
	assert.Equal(t, []string{"/r"}, store.AncestorChain("/r"))
	assert.Nil(t, store.AncestorChain("/unknown"))

	store.RemoveSubtree("/r/sub")
	assert.Nil(t, store.AncestorChain("/r/sub/deep.txt"))
}
