package storage

import "fmt"

// Open builds the Store named by backend ("file" or "sqlite") rooted at
// path. It is the single place that knows about every concrete backend, so
// adding one never touches callers.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "file":
		return NewFileStore(path), nil
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
