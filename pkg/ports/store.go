package ports

import (
	"context"

	"github.com/aretw0/weft/pkg/domain"
)

// ContextStore defines the interface for persisting rendering contexts.
// This lets a host seed a context once and render multiple templates
// against it across requests.
type ContextStore interface {
	// Save persists the context under the given ID.
	Save(ctx context.Context, id string, data *domain.Context) error

	// Load retrieves the context for the given ID.
	// Returns domain.ErrContextNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (*domain.Context, error)

	// Delete removes the context for the given ID.
	Delete(ctx context.Context, id string) error
}
