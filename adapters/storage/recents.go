package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
)

// RecentsFile persists recently used base paths as a JSON array in a single
// file. The whole file is rewritten on every append. A missing or malformed
// file reads as an empty list; recents are a convenience, never fatal.
type RecentsFile struct {
	path string
}

// NewRecentsFile creates a store backed by the file at path
func NewRecentsFile(path string) *RecentsFile {
	return &RecentsFile{path: path}
}

// Load implements ports.RecentsStore
func (r *RecentsFile) Load() []string {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read recents file", "path", r.path, "error", err)
		}
		return []string{}
	}

	var recents []string
	if err := json.Unmarshal(data, &recents); err != nil {
		logging.Logger.Warn("Malformed recents file, starting empty", "path", r.path, "error", err)
		return []string{}
	}
	return recents
}

// Append implements ports.RecentsStore. Duplicates are skipped; order of
// existing entries is preserved.
func (r *RecentsFile) Append(path string) error {
	recents := r.Load()
	for _, existing := range recents {
		if existing == path {
			return nil
		}
	}
	recents = append(recents, path)
	return r.write(recents)
}

// Clear implements ports.RecentsStore
func (r *RecentsFile) Clear() error {
	return r.write([]string{})
}

func (r *RecentsFile) write(recents []string) error {
	data, err := json.MarshalIndent(recents, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode recents: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create recents directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write recents file: %w", err)
	}
	return nil
}
