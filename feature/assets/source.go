package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"dex-viewer/core/storage"
)

// ErrNotFound is returned by a Source for unknown files.
var ErrNotFound = errors.New("dataset file not found")

// Source provides dataset files by name (e.g. "pokemon.json").
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// FSSource reads files from a file system such as the embedded bundle.
type FSSource struct {
	FS fs.FS
}

// Read implements Source.
func (s FSSource) Read(_ context.Context, name string) ([]byte, error) {
	data, err := fs.ReadFile(s.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, err
}

// StorageSource reads files from the bucket under Prefix.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Read implements Source.
func (s StorageSource) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := storage.ReadObject(ctx, s.Client, s.Bucket, storage.ObjectKey(s.Prefix, name))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, err
}
