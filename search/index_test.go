package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryEmptyTextYieldsNothing(t *testing.T) {
	index := NewIndex()
	index.AddAll([]string{"/home/user/a.txt"})

	assert.Nil(t, index.Query("", 10))
	assert.Nil(t, index.Query("   ", 10))
}

func TestQueryMatchesCaseInsensitively(t *testing.T) {
	index := NewIndex()
	index.AddAll([]string{
		"/home/user/README.md",
		"/home/user/notes.TXT",
		"/home/user/main.go",
	})

	assert.Equal(t, []string{"/home/user/notes.TXT"}, index.Query("txt", 10))
	assert.Equal(t, []string{"/home/user/README.md"}, index.Query("readme", 10))
}

func TestQueryResultsAreLexicographic(t *testing.T) {
	index := NewIndex()
	index.AddAll([]string{
		"/r/c.txt",
		"/r/a.txt",
		"/r/b.txt",
	})

	assert.Equal(t,
		[]string{"/r/a.txt", "/r/b.txt", "/r/c.txt"},
		index.Query(".txt", 10))
}

func TestQueryTruncatesToLimit(t *testing.T) {
	index := NewIndex()
	var paths []string
	for i := 0; i < 12; i++ {
		paths = append(paths, fmt.Sprintf("/r/file-%02d.txt", i))
	}
	index.AddAll(paths)

	results := index.Query("file", 0)
	assert.Len(t, results, DefaultLimit)
	assert.Equal(t, "/r/file-00.txt", results[0])

	assert.Len(t, index.Query("file", 3), 3)
}

func TestAddAllDeduplicates(t *testing.T) {
	index := NewIndex()
	index.AddAll([]string{"/r/a.txt", "/r/a.txt"})
	index.AddAll([]string{"/r/a.txt"})

	assert.Equal(t, 1, index.Len())
}

func TestReset(t *testing.T) {
	index := NewIndex()
	index.AddAll([]string{"/r/a.txt", "/r/b.txt"})

	index.Reset()

	assert.Equal(t, 0, index.Len())
	assert.Nil(t, index.Query("txt", 10))
}
