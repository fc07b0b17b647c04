package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// Store implements ports.GraphStore in memory. Documents are kept in wire
// form, so every Load decodes a fresh copy.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// NewFromDocuments creates a store seeded with raw wire JSON documents.
// Each document is decoded once so a malformed seed fails here rather than
// on first Load.
func NewFromDocuments(docs map[string]string) (*Store, error) {
	s := NewStore()
	for name, raw := range docs {
		if err := domain.ValidateGraphName(name); err != nil {
			return nil, err
		}
		if _, err := codec.Unmarshal([]byte(raw)); err != nil {
			return nil, fmt.Errorf("seed document %s: %w", name, err)
		}
		s.data[name] = []byte(raw)
	}
	return s, nil
}

// Save encodes g and stores it under name.
func (s *Store) Save(ctx context.Context, name string, g *domain.Graph) error {
	if err := domain.ValidateGraphName(name); err != nil {
		return err
	}
	data, err := codec.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to encode graph %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = data
	return nil
}

// Load decodes the document stored under name.
func (s *Store) Load(ctx context.Context, name string) (*domain.Graph, error) {
	s.mu.RLock()
	data, ok := s.data[name]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrGraphNotFound
	}
	return codec.Unmarshal(data)
}

// Delete removes the document.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored document names in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
