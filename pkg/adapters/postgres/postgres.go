// Package postgres stores graph documents in a PostgreSQL JSONB table via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS awpak_graphs (
    name       TEXT PRIMARY KEY,
    document   JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Store implements ports.GraphStore using PostgreSQL.
type Store struct {
	db *pgxpool.Pool
}

// New creates a new Store backed by the given pgx connection pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Connect opens a pool for dsn and makes sure the schema exists.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	s := New(pool)
	if err := s.CreateSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// CreateSchema creates the awpak_graphs table if it doesn't exist.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres: create schema: %w", err)
	}
	return nil
}

// DropSchema drops the awpak_graphs table.
func (s *Store) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS awpak_graphs`)
	return err
}

// Save upserts the encoded graph.
func (s *Store) Save(ctx context.Context, name string, g *domain.Graph) error {
	if err := domain.ValidateGraphName(name); err != nil {
		return err
	}
	data, err := codec.Marshal(g)
	if err != nil {
		return fmt.Errorf("postgres: encode graph %s: %w", name, err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO awpak_graphs (name, document, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("postgres: save graph %s: %w", name, err)
	}
	return nil
}

// Load reads and decodes the graph.
func (s *Store) Load(ctx context.Context, name string) (*domain.Graph, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT document FROM awpak_graphs WHERE name = $1`, name).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGraphNotFound
		}
		return nil, fmt.Errorf("postgres: load graph %s: %w", name, err)
	}
	g, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", name, err)
	}
	return g, nil
}

// Delete removes the graph row.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM awpak_graphs WHERE name = $1`, name); err != nil {
		return fmt.Errorf("postgres: delete graph %s: %w", name, err)
	}
	return nil
}

// List returns every graph name in order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT name FROM awpak_graphs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list graphs: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres: list graphs: %w", err)
	}
	return names, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.db.Close()
}
