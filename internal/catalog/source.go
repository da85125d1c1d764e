package catalog

import (
	"context"
	"fmt"
	"os"
)

// Source loads a catalog from somewhere. Implementations are called once at startup.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
	Name() string
}

// EmbeddedSource serves the built-in catalog.
type EmbeddedSource struct{}

// Load returns the built-in catalog.
func (EmbeddedSource) Load(_ context.Context) (*Catalog, error) {
	return Default(), nil
}

// Name identifies the source in logs and health output.
func (EmbeddedSource) Name() string {
	return "embedded"
}

// FileSource reads a catalog document from the local filesystem.
type FileSource struct {
	Path string
}

// Load reads and parses the catalog file.
func (s FileSource) Load(_ context.Context) (*Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", s.Path, err)
	}

	return c, nil
}

// Name identifies the source in logs and health output.
func (s FileSource) Name() string {
	return "file:" + s.Path
}
