package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore keeps blobs on the local filesystem, one directory per
// branch under the root. Writes go through a staging file in the same
// filesystem followed by a rename, so concurrent uploads to the same
// address race but the last rename always leaves a complete file.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory, %w", err)
	}

	return &LocalStore{root: root}, nil
}

func (l *LocalStore) Save(_ context.Context, branch, filename string, r io.Reader) error {
	dir := filepath.Join(l.root, branch)

	// Idempotent, branches are created on first upload
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create branch directory, %w", err)
	}

	staging, err := os.CreateTemp(l.root, ".staging-*")
	if err != nil {
		return fmt.Errorf("failed to create staging file, %w", err)
	}

	_, err = io.Copy(staging, r)
	if cerr := staging.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(staging.Name())
		return fmt.Errorf("failed to write staging file, %w", err)
	}

	if err := os.Rename(staging.Name(), filepath.Join(dir, filename)); err != nil {
		os.Remove(staging.Name())
		return fmt.Errorf("failed to publish blob, %w", err)
	}

	return nil
}

func (l *LocalStore) Open(_ context.Context, branch, filename string) (io.ReadCloser, int64, error) {
	f, err := os.Open(filepath.Join(l.root, branch, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, ErrNotFound
		}

		return nil, 0, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	return f, stat.Size(), nil
}
