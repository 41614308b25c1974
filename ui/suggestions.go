package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/search"
)

// NavEvent is an enumerated input event for suggestion navigation. The
// update loop translates key bindings into these, so the cursor logic never
// sees platform key codes.
type NavEvent int

const (
	NavUp NavEvent = iota
	NavDown
	NavConfirm
)

// SuggestionBox is the search input plus its autocomplete list. Suggestions
// come from the session's search index; the highlighted one (or the raw
// typed path when nothing matched) is returned on confirm.
type SuggestionBox struct {
	Input       textinput.Model
	index       *search.Index
	limit       int
	suggestions []string
	cursor      int
}

// NewSuggestionBox creates a search box backed by index
func NewSuggestionBox(index *search.Index, limit int) *SuggestionBox {
	ti := textinput.New()
	ti.Placeholder = "search indexed files"
	ti.Prompt = "/ "
	ti.CharLimit = 512

	return &SuggestionBox{
		Input:  ti,
		index:  index,
		limit:  limit,
		cursor: -1,
	}
}

// SetIndex swaps the backing index (after a reconnect)
func (b *SuggestionBox) SetIndex(index *search.Index) {
	b.index = index
	b.Refresh()
}

// Refresh recomputes suggestions from the current input text
func (b *SuggestionBox) Refresh() {
	b.suggestions = b.index.Query(b.Input.Value(), b.limit)
	b.cursor = -1
}

// Suggestions returns the current suggestion list
func (b *SuggestionBox) Suggestions() []string {
	return b.suggestions
}

// Cursor returns the highlighted suggestion index, -1 when none
func (b *SuggestionBox) Cursor() int {
	return b.cursor
}

// Handle applies a navigation event. For NavConfirm it returns the path to
// add to the selection: the highlighted suggestion, or the raw typed text
// when no suggestion is highlighted. Confirming empties the box.
func (b *SuggestionBox) Handle(ev NavEvent) (chosen string, confirmed bool) {
	switch ev {
	case NavUp:
		if len(b.suggestions) == 0 {
			return "", false
		}
		b.cursor--
		if b.cursor < 0 {
			b.cursor = 0
		}
	case NavDown:
		if len(b.suggestions) == 0 {
			return "", false
		}
		b.cursor++
		if b.cursor >= len(b.suggestions) {
			b.cursor = len(b.suggestions) - 1
		}
	case NavConfirm:
		if b.cursor >= 0 && b.cursor < len(b.suggestions) {
			chosen = b.suggestions[b.cursor]
		} else {
			chosen = strings.TrimSpace(b.Input.Value())
		}
		b.Input.SetValue("")
		b.suggestions = nil
		b.cursor = -1
		if chosen == "" {
			return "", false
		}
		return chosen, true
	}
	return "", false
}

// View renders the input and its suggestion list
func (b *SuggestionBox) View() string {
	var sb strings.Builder
	sb.WriteString(b.Input.View())
	for i, s := range b.suggestions {
		sb.WriteString("\n")
		if i == b.cursor {
			sb.WriteString(cursorStyle.Render("> " + s))
		} else {
			sb.WriteString(dimStyle.Render("  " + s))
		}
	}
	return sb.String()
}
