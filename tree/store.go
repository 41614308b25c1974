package tree

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
)

// FileSink receives the absolute paths of files discovered during expansion.
// The search index implements it.
type FileSink interface {
	AddAll(paths []string)
	Reset()
}

// Store is the lazily populated virtual directory tree. Nodes live in a flat
// table keyed by absolute path; parent and children are key references, so
// subtree removal is a table walk rather than pointer surgery.
//
// All methods are safe for concurrent use. Concurrent expansions of the same
// key collapse into a single backend listing.
type Store struct {
	mu      sync.Mutex
	nodes   map[string]*domain.Node
	root    string
	backend ports.FileSystemBackend
	sink    FileSink
	group   singleflight.Group
}

// NewStore creates an empty tree reading through backend. sink may be nil.
func NewStore(backend ports.FileSystemBackend, sink FileSink) *Store {
	return &Store{
		nodes:   make(map[string]*domain.Node),
		backend: backend,
		sink:    sink,
	}
}

// CreateRoot discards any existing tree and creates a single unexpanded
// root node for path. The file sink is reset along with the tree.
func (s *Store) CreateRoot(path string) domain.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = make(map[string]*domain.Node)
	s.root = path
	s.nodes[path] = &domain.Node{
		Key:         path,
		DisplayName: path,
		Kind:        domain.KindDirectory,
		Parent:      domain.RootParent,
	}
	if s.sink != nil {
		s.sink.Reset()
	}

	logging.Logger.Debug("Tree root created", "path", path)
	return *s.nodes[path]
}

// Root returns the root node's key, or "" before CreateRoot
func (s *Store) Root() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// Get returns a copy of the node at key
func (s *Store) Get(key string) (domain.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.nodes[key]
	if !ok {
		return domain.Node{}, false
	}
	return copyNode(node), true
}

// Len returns the number of nodes in the tree
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.nodes)
}

// Expand populates key's children from the backend. It is idempotent: an
// already-expanded node is a no-op, as is a key no longer in the tree (stale
// keys arrive from UI races and are tolerated the same way RemoveSubtree
// tolerates them). Expanding a file node is an error.
//
// The whole operation is atomic: on a listing failure the node stays
// unexpanded and no children are inserted. Concurrent calls for the same key
// share one backend listing.
func (s *Store) Expand(ctx context.Context, key string) error {
	s.mu.Lock()
	node, ok := s.nodes[key]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	if node.Kind == domain.KindFile {
		s.mu.Unlock()
		return fmt.Errorf("expand %s: not a directory: %w", key, domain.ErrInvalidOperation)
	}
	if node.Expanded {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	_, err, _ := s.group.Do(key, func() (interface{}, error) {
		return nil, s.expandOnce(ctx, key)
	})
	return err
}

func (s *Store) expandOnce(ctx context.Context, key string) error {
	// The winning flight may have finished between the caller's check and
	// this one; re-check before hitting the backend.
	s.mu.Lock()
	node, ok := s.nodes[key]
	if !ok || node.Expanded {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	entries, err := s.backend.List(ctx, key)
	if err != nil {
		logging.Logger.Debug("Expand failed", "key", key, "error", err)
		return err
	}
	sortEntries(entries)

	s.mu.Lock()
	node, ok = s.nodes[key]
	if !ok || node.Expanded {
		// Removed or expanded while the listing was in flight.
		s.mu.Unlock()
		return nil
	}

	var files []string
	for _, e := range entries {
		childKey := s.backend.Join(key, e.Name)
		if _, exists := s.nodes[childKey]; exists {
			continue
		}
		kind := domain.KindFile
		if e.IsDir {
			kind = domain.KindDirectory
		}
		s.nodes[childKey] = &domain.Node{
			Key:         childKey,
			DisplayName: e.Name,
			Kind:        kind,
			Parent:      key,
		}
		node.Children = append(node.Children, childKey)
		if !e.IsDir {
			files = append(files, childKey)
		}
	}
	node.Expanded = true
	s.mu.Unlock()

	if s.sink != nil && len(files) > 0 {
		s.sink.AddAll(files)
	}

	logging.Logger.Debug("Node expanded", "key", key, "children", len(entries))
	return nil
}

// RemoveSubtree deletes key and all its descendants, detaching the subtree
// from its parent. Removing a key that is not in the tree is a no-op.
func (s *Store) RemoveSubtree(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.nodes[key]
	if !ok {
		return
	}

	// Detach from parent first so no partially removed subtree is ever
	// reachable from the root.
	if parent, ok := s.nodes[node.Parent]; ok {
		for i, child := range parent.Children {
			if child == key {
				parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
				break
			}
		}
	}
	s.deleteRecursive(key)
	if key == s.root {
		s.root = ""
	}
}

func (s *Store) deleteRecursive(key string) {
	node, ok := s.nodes[key]
	if !ok {
		return
	}
	for _, child := range node.Children {
		s.deleteRecursive(child)
	}
	delete(s.nodes, key)
}

// AncestorChain returns the keys from key up to the root, starting with key
// itself. A key not in the tree yields nil; if an ancestor has gone missing
// mid-traversal the chain stops at the last still-present node.
func (s *Store) AncestorChain(key string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.nodes[key]
	if !ok {
		return nil
	}

	chain := []string{key}
	for node.Parent != domain.RootParent {
		parent, ok := s.nodes[node.Parent]
		if !ok {
			break
		}
		chain = append(chain, parent.Key)
		node = parent
	}
	return chain
}

// sortEntries orders directories before files, then case-insensitively by
// name. Stable so equal-folding names keep the backend's order.
func sortEntries(entries []ports.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

func copyNode(n *domain.Node) domain.Node {
	out := *n
	out.Children = make([]string, len(n.Children))
	copy(out.Children, n.Children)
	return out
}
