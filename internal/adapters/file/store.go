package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

const ext = ".json"

// Store implements ports.GraphStore using the local filesystem.
// Each graph is an indented wire JSON file named <name>.json in BasePath.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".awpak/graphs".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".awpak", "graphs")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BasePath, name+ext)
}

// Save writes the graph document atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, name string, g *domain.Graph) error {
	if err := domain.ValidateGraphName(name); err != nil {
		return err
	}

	data, err := codec.MarshalIndent(g, "  ")
	if err != nil {
		return fmt.Errorf("failed to encode graph %s: %w", name, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure graph directory: %w", err)
	}

	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+name+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dest := s.path(name)
	// os.Rename does not replace an existing file on Windows.
	if _, err := os.Stat(dest); err == nil {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to remove existing graph file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file to graph file: %w", err)
	}
	return nil
}

// Load reads and decodes the graph document.
func (s *Store) Load(ctx context.Context, name string) (*domain.Graph, error) {
	if err := domain.ValidateGraphName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrGraphNotFound
		}
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}

	g, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", name, err)
	}
	return g, nil
}

// Delete removes the graph file.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := domain.ValidateGraphName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete graph file: %w", err)
	}
	return nil
}

// List returns the names of every graph file, skipping temporaries.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list graphs: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ext || strings.HasPrefix(name, "tmp-") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ext))
	}
	slices.Sort(names)
	return names, nil
}
