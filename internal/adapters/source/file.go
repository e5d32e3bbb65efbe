package source

import (
	"context"
	"fmt"
	"os"
)

// File reads a local CSV export on every fetch.
type File struct {
	path string
}

// NewFile creates a file source.
func NewFile(path string) *File {
	return &File{path: path}
}

// Kind reports KindFile.
func (f *File) Kind() string { return KindFile }

// Fetch reads the whole file.
func (f *File) Fetch(ctx context.Context) (string, error) {
	if f.path == "" {
		return "", ErrNoLocation
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.path, err)
	}
	return string(b), nil
}
