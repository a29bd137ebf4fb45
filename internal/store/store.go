package store

// Store performs the registry's data operations against a SQLite file.
// Every operation acquires a fresh connection and releases it before
// returning, so no handle outlives the call that opened it.
type Store struct {
	Path string // SQLite database file path
}

// New creates a Store for the database at path
func New(path string) *Store {
	return &Store{Path: path}
}
