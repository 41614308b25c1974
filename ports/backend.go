package ports

import "context"

// Entry is one name returned by a directory listing
type Entry struct {
	Name  string
	IsDir bool
}

// FileSystemBackend is the capability set every filesystem provider must
// satisfy. Both the local-disk and the SFTP implementations are used through
// this interface only; nothing downstream branches on which one is active.
//
// List, IsDir, and ReadFile are blocking round trips and accept a context.
// Implementations backed by a single connection must serialize concurrent
// calls themselves. After Close, every call must fail fast with
// *domain.ClosedError rather than hang; Close itself is idempotent.
type FileSystemBackend interface {
	// List returns the direct entries of the directory at path, in whatever
	// order the underlying filesystem yields them.
	List(ctx context.Context, path string) ([]Entry, error)

	// IsDir reports whether path refers to a directory.
	IsDir(ctx context.Context, path string) (bool, error)

	// ReadFile returns the raw content of the file at path, byte for byte.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// Join builds the key of a child entry under dir using the backend's
	// path convention.
	Join(dir, name string) string

	// Close releases the backend's resources.
	Close() error
}

// BackendFactory establishes a new backend. Used by the session when
// switching providers so the old backend can be released before the new one
// is dialed.
type BackendFactory func(ctx context.Context) (FileSystemBackend, error)
