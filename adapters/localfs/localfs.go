package localfs

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
)

// Backend browses the process's own filesystem
type Backend struct {
	mu     sync.Mutex
	closed bool
}

// New creates a local filesystem backend
func New() *Backend {
	return &Backend{}
}

// List implements ports.FileSystemBackend
func (b *Backend) List(ctx context.Context, path string) ([]ports.Entry, error) {
	if err := b.check("list"); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.NewIOError(path, err)
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		logging.Logger.Debug("Local listing failed", "path", path, "error", err)
		return nil, domain.NewIOError(path, err)
	}

	entries := make([]ports.Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, ports.Entry{Name: d.Name(), IsDir: d.IsDir()})
	}
	return entries, nil
}

// IsDir implements ports.FileSystemBackend
func (b *Backend) IsDir(ctx context.Context, path string) (bool, error) {
	if err := b.check("stat"); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, domain.NewIOError(path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, domain.NewIOError(path, err)
	}
	return info.IsDir(), nil
}

// ReadFile implements ports.FileSystemBackend
func (b *Backend) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := b.check("read"); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.NewIOError(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logging.Logger.Debug("Local read failed", "path", path, "error", err)
		return nil, domain.NewIOError(path, err)
	}
	return data, nil
}

// Join implements ports.FileSystemBackend using the OS path convention
func (b *Backend) Join(dir, name string) string {
	return filepath.Join(dir, name)
}

// Close implements ports.FileSystemBackend. It is idempotent; subsequent
// calls against the backend fail with *domain.ClosedError.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

func (b *Backend) check(op string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return &domain.ClosedError{Op: op}
	}
	return nil
}
