package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/weft/pkg/domain"
)

// Store implements ports.ContextStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Value
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Value),
	}
}

// Save persists the context in memory. The context tree is snapshotted
// through its plain-data form so later renders against the live context
// cannot mutate the stored copy.
func (s *Store) Save(ctx context.Context, id string, data *domain.Context) error {
	snapshot := domain.FromAny(data.Root().Interface())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = snapshot
	return nil
}

// Load retrieves a copy of the context from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Context, error) {
	s.mu.RLock()
	snapshot, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrContextNotFound, id)
	}

	root, ok := domain.FromAny(snapshot.Interface()).AsDict()
	if !ok {
		return nil, fmt.Errorf("stored context %s is not a dictionary", id)
	}
	return domain.NewContext(root), nil
}

// Delete removes the context.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}
