// Package cache provides persona cache backends.
//
// A cache stores built Persona documents keyed by celebrity name so the
// construction pipeline runs only once per figure. Deleting a cache entry is
// the only way to force a rebuild.
package cache

import (
	"context"

	"github.com/staragent/staragent-go/pkg/persona"
)

// Cache defines the interface for persona cache backends.
type Cache interface {
	// Get retrieves the cached persona for a celebrity name.
	// A cache miss returns (nil, nil).
	Get(ctx context.Context, name string) (*persona.Persona, error)

	// Put stores a persona under the celebrity name, overwriting any
	// previous entry.
	Put(ctx context.Context, name string, p *persona.Persona) error

	// Close releases backend resources.
	Close() error
}
