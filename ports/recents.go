package ports

// RecentsStore persists the list of recently used base paths across runs
type RecentsStore interface {
	// Load returns the stored paths in order. A missing or malformed store
	// yields an empty list, not an error.
	Load() []string

	// Append adds path to the list if absent and rewrites the store.
	Append(path string) error

	// Clear empties the store.
	Clear() error
}
