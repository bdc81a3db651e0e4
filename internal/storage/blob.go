// Package storage holds the bytes of uploaded notes. Objects are
// addressed by (branch, filename), metadata about them lives in the
// notes table. The two are not updated atomically, the blob is always
// written first so the worst case after a crash is an orphan blob that
// the next identical upload overwrites.
package storage

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/viper"
)

// ErrNotFound is returned when no blob exists at the requested
// (branch, filename) address.
var ErrNotFound = errors.New("blob not found")

type BlobStore interface {
	// Save writes the blob, silently overwriting an existing one at
	// the same address. The write must be atomic, a reader must never
	// observe a half-written blob.
	Save(ctx context.Context, branch, filename string, r io.Reader) error

	// Open returns a reader over the blob and its size in bytes.
	// The caller closes the reader.
	Open(ctx context.Context, branch, filename string) (io.ReadCloser, int64, error)
}

// New builds the blob store selected by storage.type.
func New(ctx context.Context) (BlobStore, error) {
	if viper.GetString("storage.type") == "s3" {
		return NewS3Store(ctx)
	}

	return NewLocalStore(viper.GetString("storage.upload_dir"))
}
