package session

import (
	"context"
	"fmt"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/aggregate"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/search"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/tree"
)

// Session owns everything scoped to one backend: the backend itself, the
// virtual tree, the search index, and the selection. Switching backends
// resets all of it together; none of this state is shared across sessions.
type Session struct {
	backend   ports.FileSystemBackend
	tree      *tree.Store
	index     *search.Index
	selection *domain.SelectionSet
	base      string
}

// New creates a session with no active backend. Connect must succeed before
// any browsing operation works.
func New() *Session {
	return &Session{
		index:     search.NewIndex(),
		selection: domain.NewSelectionSet(),
	}
}

// Connect releases the current backend, resets all session state, and then
// establishes a new backend via factory, rooting the tree at base.
//
// The old backend's resources are gone before the factory runs, on every
// path: if establishing the new backend fails the session is explicitly
// left without a working backend (Connected reports false) and the error
// comes back as a *domain.ConnectionError. Callers re-prompt rather than
// silently keeping a stale connection.
func (s *Session) Connect(ctx context.Context, factory ports.BackendFactory, base string) error {
	s.release()

	backend, err := factory(ctx)
	if err != nil {
		logging.Logger.Error("Backend connection failed", "base", base, "error", err)
		return &domain.ConnectionError{Target: base, Cause: err}
	}

	s.backend = backend
	s.base = base
	s.tree = tree.NewStore(backend, s.index)
	s.tree.CreateRoot(base)

	logging.Logger.Info("Session connected", "base", base)
	return nil
}

// release closes the active backend and clears every piece of
// backend-scoped state.
func (s *Session) release() {
	if s.backend != nil {
		if err := s.backend.Close(); err != nil {
			logging.Logger.Warn("Failed to close previous backend", "error", err)
		}
	}
	s.backend = nil
	s.tree = nil
	s.base = ""
	s.index.Reset()
	s.selection.Clear()
}

// Close releases the session's backend. Safe to call without a connection.
func (s *Session) Close() {
	s.release()
}

// Connected reports whether the session has a working backend
func (s *Session) Connected() bool {
	return s.backend != nil
}

// Base returns the base path the tree is rooted at
func (s *Session) Base() string {
	return s.base
}

// Backend returns the active backend, or nil
func (s *Session) Backend() ports.FileSystemBackend {
	return s.backend
}

// Tree returns the virtual tree, or nil before the first Connect
func (s *Session) Tree() *tree.Store {
	return s.tree
}

// Index returns the session's search index
func (s *Session) Index() *search.Index {
	return s.index
}

// Selection returns the session's selection set
func (s *Session) Selection() *domain.SelectionSet {
	return s.selection
}

// Expand populates the children of the directory node at key
func (s *Session) Expand(ctx context.Context, key string) error {
	if s.backend == nil || s.tree == nil {
		return domain.ErrNoBackend
	}
	return s.tree.Expand(ctx, key)
}

// AddAllFilesIn selects every file directly inside dirKey (one level, no
// recursion). The directory is listed first and the selection only mutates
// after a successful listing: either all new files are added or none are.
func (s *Session) AddAllFilesIn(ctx context.Context, dirKey string) (int, error) {
	if s.backend == nil {
		return 0, domain.ErrNoBackend
	}

	entries, err := s.backend.List(ctx, dirKey)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", dirKey, err)
	}

	added := 0
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		if s.selection.Add(s.backend.Join(dirKey, e.Name)) {
			added++
		}
	}
	logging.Logger.Debug("Added folder files to selection", "dir", dirKey, "added", added)
	return added, nil
}

// Aggregate builds the concatenated text artifact for the current selection
func (s *Session) Aggregate(ctx context.Context) (string, error) {
	if s.backend == nil {
		return "", domain.ErrNoBackend
	}
	return aggregate.Build(ctx, s.selection.Paths(), s.backend), nil
}
