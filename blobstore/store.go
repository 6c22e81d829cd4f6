// Package blobstore provides storage abstraction for index snapshots.
//
// BlobStore is the interface for reading and writing immutable data
// blobs. Implementations must be safe for concurrent use.
//
//   - LocalStore: local filesystem with atomic blob creation
//   - MemoryStore: in-memory store for testing
package blobstore

import (
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable data blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(name string) (Blob, error)

	// Create creates a blob for writing. The blob becomes visible to
	// Open only once Close returns.
	Create(name string) (WritableBlob, error)

	// Delete removes a blob.
	Delete(name string) error

	// List returns the names of all blobs with the given prefix.
	List(prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a write-only handle to a blob under construction.
type WritableBlob interface {
	io.WriteCloser
}
