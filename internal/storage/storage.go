// Package storage provides the whole-blob storage adapter used to persist a
// session snapshot, plus concrete implementations of it. The replay engine
// depends only on the Store interface in this file and treats the adapter
// as an external collaborator with atomic-replacement semantics.
package storage

// Store is the byte-addressable blob storage primitive the replay engine is
// built on: whole-blob read and whole-blob atomic replace.
type Store interface {
	// Read returns the entire current blob. It returns an empty, non-nil
	// byte slice (not an error) when nothing has ever been written, or after
	// Write(nil) / Write([]byte{}).
	Read() ([]byte, error)

	// Write atomically replaces the blob's contents.
	Write(data []byte) error
}
