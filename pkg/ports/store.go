package ports

import (
	"context"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// GraphSource lists and loads graph documents.
type GraphSource interface {
	// Load returns the graph stored under name.
	// Returns domain.ErrGraphNotFound if no such document exists.
	Load(ctx context.Context, name string) (*domain.Graph, error)

	// List returns every document name, sorted.
	List(ctx context.Context) ([]string, error)
}

// GraphStore persists graph documents. The stored form is the wire JSON, so
// anything the execution engine can read is what gets written.
type GraphStore interface {
	GraphSource

	// Save writes g under name, replacing any previous version.
	Save(ctx context.Context, name string, g *domain.Graph) error

	// Delete removes name. Deleting a missing document is not an error.
	Delete(ctx context.Context, name string) error
}

// ReadOnly adapts a GraphSource to a GraphStore whose writes fail with
// domain.ErrReadOnly.
func ReadOnly(src GraphSource) GraphStore {
	return readOnly{src}
}

type readOnly struct {
	GraphSource
}

func (readOnly) Save(context.Context, string, *domain.Graph) error { return domain.ErrReadOnly }
func (readOnly) Delete(context.Context, string) error              { return domain.ErrReadOnly }
