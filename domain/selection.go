package domain

import "sync"

// SelectionSet is the ordered, deduplicated list of paths the user has chosen
// for aggregation. Insertion order is preserved; adding a path that is
// already present is a no-op.
//
// Safe for concurrent use: the UI mutates it from the interaction loop while
// workers add folder listings and snapshot it for aggregation.
type SelectionSet struct {
	mu      sync.Mutex
	order   []string
	present map[string]bool
}

// NewSelectionSet creates an empty selection
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{present: make(map[string]bool)}
}

// Add appends path unless it is already selected. Returns true if the
// selection changed.
func (s *SelectionSet) Add(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.present[path] {
		return false
	}
	s.present[path] = true
	s.order = append(s.order, path)
	return true
}

// Remove deletes path from the selection, preserving the order of the rest.
// Removing an absent path is a no-op.
func (s *SelectionSet) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present[path] {
		return
	}
	delete(s.present, path)
	for i, p := range s.order {
		if p == path {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear empties the selection
func (s *SelectionSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.present = make(map[string]bool)
}

// Contains reports whether path is selected
func (s *SelectionSet) Contains(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.present[path]
}

// Len returns the number of selected paths
func (s *SelectionSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Paths returns the selected paths in insertion order. The returned slice is
// a copy; mutating it does not affect the selection.
func (s *SelectionSet) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
