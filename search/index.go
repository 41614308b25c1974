package search

import (
	"sort"
	"strings"
	"sync"
)

// DefaultLimit is the suggestion count shown by the search box
const DefaultLimit = 8

// Index is the append-only set of file paths discovered while browsing.
// It feeds the search box's autocomplete. Directories are never indexed;
// the tree only sinks file paths. Entries survive the removal of their tree
// nodes and are discarded only by Reset at backend-switch time.
type Index struct {
	mu    sync.RWMutex
	paths map[string]bool
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{paths: make(map[string]bool)}
}

// AddAll implements tree.FileSink
func (i *Index) AddAll(paths []string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, p := range paths {
		i.paths[p] = true
	}
}

// Reset implements tree.FileSink, discarding every indexed path
func (i *Index) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.paths = make(map[string]bool)
}

// Len returns the number of indexed paths
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.paths)
}

// Query returns up to limit indexed paths containing text, matched
// case-insensitively. Results are in ascending lexicographic order so equal
// queries always yield equal suggestion lists. An empty query yields no
// results regardless of index contents; limit <= 0 means DefaultLimit.
func (i *Index) Query(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	needle := strings.ToLower(text)

	i.mu.RLock()
	var matches []string
	for p := range i.paths {
		if strings.Contains(strings.ToLower(p), needle) {
			matches = append(matches, p)
		}
	}
	i.mu.RUnlock()

	sort.Strings(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
