// Package testutil provides hand-rolled fakes shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
)

// FakeFS is an in-memory ports.FileSystemBackend for tests. Directories and
// files are declared up front; errors can be injected per path and listing
// calls are counted so tests can assert on backend traffic.
type FakeFS struct {
	mu sync.Mutex

	Dirs  map[string][]ports.Entry
	Files map[string][]byte

	ListErr map[string]error
	ReadErr map[string]error

	ListCalls map[string]int
	ListDelay time.Duration

	Closed bool
}

// NewFakeFS creates an empty fake filesystem
func NewFakeFS() *FakeFS {
	return &FakeFS{
		Dirs:      make(map[string][]ports.Entry),
		Files:     make(map[string][]byte),
		ListErr:   make(map[string]error),
		ReadErr:   make(map[string]error),
		ListCalls: make(map[string]int),
	}
}

// AddDir declares a directory with the given raw listing order
func (f *FakeFS) AddDir(path string, entries ...ports.Entry) {
	f.Dirs[path] = entries
}

// AddFile declares a file and its content
func (f *FakeFS) AddFile(path string, content []byte) {
	f.Files[path] = content
}

// List implements ports.FileSystemBackend
func (f *FakeFS) List(ctx context.Context, path string) ([]ports.Entry, error) {
	f.mu.Lock()
	f.ListCalls[path]++
	closed := f.Closed
	delay := f.ListDelay
	f.mu.Unlock()

	if closed {
		return nil, &domain.ClosedError{Op: "list"}
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	if err := f.ListErr[path]; err != nil {
		return nil, domain.NewIOError(path, err)
	}
	entries, ok := f.Dirs[path]
	if !ok {
		return nil, domain.NewIOError(path, fmt.Errorf("no such directory"))
	}
	out := make([]ports.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// IsDir implements ports.FileSystemBackend
func (f *FakeFS) IsDir(ctx context.Context, path string) (bool, error) {
	f.mu.Lock()
	closed := f.Closed
	f.mu.Unlock()
	if closed {
		return false, &domain.ClosedError{Op: "stat"}
	}
	if _, ok := f.Dirs[path]; ok {
		return true, nil
	}
	if _, ok := f.Files[path]; ok {
		return false, nil
	}
	return false, domain.NewIOError(path, fmt.Errorf("no such path"))
}

// ReadFile implements ports.FileSystemBackend
func (f *FakeFS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	closed := f.Closed
	f.mu.Unlock()
	if closed {
		return nil, &domain.ClosedError{Op: "read"}
	}
	if err := f.ReadErr[path]; err != nil {
		return nil, domain.NewIOError(path, err)
	}
	content, ok := f.Files[path]
	if !ok {
		return nil, domain.NewIOError(path, fmt.Errorf("no such file"))
	}
	return content, nil
}

// Join implements ports.FileSystemBackend with POSIX separators
func (f *FakeFS) Join(dir, name string) string {
	if dir == "/" {
		return "/" + name
	}
	return strings.TrimRight(dir, "/") + "/" + name
}

// Close implements ports.FileSystemBackend
func (f *FakeFS) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return nil
}

// Listings returns how many times path was listed
func (f *FakeFS) Listings(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ListCalls[path]
}
