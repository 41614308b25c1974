package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/search"
)

func indexWith(paths ...string) *search.Index {
	index := search.NewIndex()
	index.AddAll(paths)
	return index
}

func TestRefreshQueriesIndex(t *testing.T) {
	box := NewSuggestionBox(indexWith("/r/a.txt", "/r/b.txt", "/r/notes.md"), 8)

	box.Input.SetValue("txt")
	box.Refresh()

	assert.Equal(t, []string{"/r/a.txt", "/r/b.txt"}, box.Suggestions())
	assert.Equal(t, -1, box.Cursor(), "refresh clears the highlight")
}

func TestNavigationClampsAtBounds(t *testing.T) {
	box := NewSuggestionBox(indexWith("/r/a.txt", "/r/b.txt"), 8)
	box.Input.SetValue("txt")
	box.Refresh()

	box.Handle(NavDown)
	assert.Equal(t, 0, box.Cursor())
	box.Handle(NavDown)
	assert.Equal(t, 1, box.Cursor())
	box.Handle(NavDown)
	assert.Equal(t, 1, box.Cursor(), "clamped at last suggestion")

	box.Handle(NavUp)
	assert.Equal(t, 0, box.Cursor())
	box.Handle(NavUp)
	assert.Equal(t, 0, box.Cursor(), "clamped at first suggestion")
}

func TestNavigationWithoutSuggestionsIsNoOp(t *testing.T) {
	box := NewSuggestionBox(search.NewIndex(), 8)

	_, confirmed := box.Handle(NavDown)
	assert.False(t, confirmed)
	assert.Equal(t, -1, box.Cursor())
}

func TestConfirmReturnsHighlightedSuggestion(t *testing.T) {
	box := NewSuggestionBox(indexWith("/r/a.txt", "/r/b.txt"), 8)
	box.Input.SetValue("txt")
	box.Refresh()

	box.Handle(NavDown)
	box.Handle(NavDown)

	chosen, confirmed := box.Handle(NavConfirm)
	require.True(t, confirmed)
	assert.Equal(t, "/r/b.txt", chosen)

	// Confirming empties the box.
	assert.Equal(t, "", box.Input.Value())
	assert.Empty(t, box.Suggestions())
	assert.Equal(t, -1, box.Cursor())
}

func TestConfirmWithoutHighlightReturnsTypedText(t *testing.T) {
	box := NewSuggestionBox(search.NewIndex(), 8)
	box.Input.SetValue("  /srv/data/raw.txt  ")

	chosen, confirmed := box.Handle(NavConfirm)
	require.True(t, confirmed)
	assert.Equal(t, "/srv/data/raw.txt", chosen)
}

func TestConfirmEmptyInputIsNotConfirmed(t *testing.T) {
	box := NewSuggestionBox(search.NewIndex(), 8)
	box.Input.SetValue("   ")

	_, confirmed := box.Handle(NavConfirm)
	assert.False(t, confirmed)
}

func TestSuggestionLimit(t *testing.T) {
	index := search.NewIndex()
	index.AddAll([]string{
		"/r/a1.txt", "/r/a2.txt", "/r/a3.txt", "/r/a4.txt", "/r/a5.txt",
	})

	box := NewSuggestionBox(index, 3)
	box.Input.SetValue("a")
	box.Refresh()

	assert.Len(t, box.Suggestions(), 3)
}
