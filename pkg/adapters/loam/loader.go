// Package loam exposes a directory of graph documents as a read-only graph source.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"

	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// Document is the typed view of a graph file: its top-level JSON fields.
type Document map[string]any

// Loader reads graph documents (one *.json file per graph) through a Loam repository.
type Loader struct {
	Repo    *loam.TypedRepository[Document]
	decoder *codec.Decoder
}

// New wraps an initialized Loam repository.
func New(repo core.Repository, opts ...codec.Option) *Loader {
	return &Loader{
		Repo:    loam.NewTypedRepository[Document](repo),
		decoder: codec.NewDecoder(opts...),
	}
}

// Open initializes a read-only, strict Loam repository rooted at dir.
// Strict mode keeps numbers as json.Number so integers survive decoding.
func Open(dir string, opts ...codec.Option) (*Loader, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	repo, err := loam.Init(abs,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(repo, opts...), nil
}

// Load decodes the graph stored under name (file name without extension).
func (l *Loader) Load(ctx context.Context, name string) (*domain.Graph, error) {
	if err := domain.ValidateGraphName(name); err != nil {
		return nil, err
	}
	index, err := l.index(ctx)
	if err != nil {
		return nil, err
	}
	docID, ok := index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGraphNotFound, name)
	}

	doc, err := l.Repo.Get(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", name, err)
	}
	g, err := l.decoder.Graph(map[string]any(doc.Data))
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", name, err)
	}
	return g, nil
}

// List returns the sorted names of all graph documents.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	index, err := l.index(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// index maps graph names to Loam document ids, rejecting two files that
// resolve to the same name (e.g. a.json and a.yaml).
func (l *Loader) index(ctx context.Context) (map[string]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string, len(docs))
	for _, doc := range docs {
		name := trimExtension(doc.ID)
		if existing, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected: graph '%s' is defined in both '%s' and '%s'", name, existing, doc.ID)
		}
		seen[name] = doc.ID
	}
	return seen, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

// Watch implements ports.Watchable. Bursts of file events collapse into a
// single pending signal.
func (l *Loader) Watch(ctx context.Context) (<-chan struct{}, error) {
	events, err := l.Repo.Watch(ctx, "**/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan struct{}, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			}
		}
	}()

	return ch, nil
}
