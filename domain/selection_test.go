package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionPreservesInsertionOrder(t *testing.T) {
	s := NewSelectionSet()

	assert.True(t, s.Add("/r/c.txt"))
	assert.True(t, s.Add("/r/a.txt"))
	assert.True(t, s.Add("/r/b.txt"))

	assert.Equal(t, []string{"/r/c.txt", "/r/a.txt", "/r/b.txt"}, s.Paths())
	assert.Equal(t, 3, s.Len())
}

func TestSelectionAddDeduplicates(t *testing.T) {
	s := NewSelectionSet()

	assert.True(t, s.Add("/r/a.txt"))
	assert.False(t, s.Add("/r/a.txt"))

	assert.Equal(t, []string{"/r/a.txt"}, s.Paths())
}

func TestSelectionRemove(t *testing.T) {
	s := NewSelectionSet()
	s.Add("/r/a.txt")
	s.Add("/r/b.txt")
	s.Add("/r/c.txt")

	s.Remove("/r/b.txt")

	assert.Equal(t, []string{"/r/a.txt", "/r/c.txt"}, s.Paths())
	assert.False(t, s.Contains("/r/b.txt"))

	// Removing an absent path changes nothing.
	s.Remove("/r/b.txt")
	assert.Equal(t, 2, s.Len())
}

func TestSelectionRemoveThenReAddMovesToEnd(t *testing.T) {
	s := NewSelectionSet()
	s.Add("/r/a.txt")
	s.Add("/r/b.txt")

	s.Remove("/r/a.txt")
	assert.True(t, s.Add("/r/a.txt"))

	assert.Equal(t, []string{"/r/b.txt", "/r/a.txt"}, s.Paths())
}

func TestSelectionClear(t *testing.T) {
	s := NewSelectionSet()
	s.Add("/r/a.txt")
	s.Add("/r/b.txt")

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Paths())
	assert.False(t, s.Contains("/r/a.txt"))
}

func TestSelectionPathsReturnsCopy(t *testing.T) {
	s := NewSelectionSet()
	s.Add("/r/a.txt")

	paths := s.Paths()
	paths[0] = "/mutated"

	assert.Equal(t, []string{"/r/a.txt"}, s.Paths())
}
