package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/staragent/staragent-go/pkg/persona"
)

// FileCache stores one pretty-printed JSON document per celebrity under a
// directory, named "<celebrity>_persona.json".
type FileCache struct {
	dir string
}

// NewFileCache creates a file-backed persona cache rooted at dir,
// creating the directory if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create persona cache directory: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) path(name string) string {
	return filepath.Join(c.dir, name+"_persona.json")
}

// Get retrieves the cached persona for a celebrity name.
// A missing file is a cache miss, returned as (nil, nil).
func (c *FileCache) Get(_ context.Context, name string) (*persona.Persona, error) {
	data, err := os.ReadFile(c.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read persona cache: %w", err)
	}

	var p persona.Persona
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode persona cache: %w", err)
	}
	return &p, nil
}

// Put stores a persona as an indented UTF-8 JSON document.
func (c *FileCache) Put(_ context.Context, name string, p *persona.Persona) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode persona: %w", err)
	}
	if err := os.WriteFile(c.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write persona cache: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (c *FileCache) Close() error {
	return nil
}
