package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/afuentesan/awpak-builder"
	"github.com/afuentesan/awpak-builder/internal/config"
	"github.com/afuentesan/awpak-builder/internal/metrics"
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

// Options are the global command line settings.
type Options struct {
	ConfigPath string
	// Backend and Dir override the configured store when set.
	Backend string
	Dir     string
	Debug   bool
	Stdin   io.Reader
}

// App bundles what every command needs: configuration, a store and an editor.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Backend *Backend
	Editor  *awpak.Editor

	stdin io.Reader
}

// Open loads configuration and connects the configured store.
func Open(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Backend != "" {
		cfg.Store.Backend = opts.Backend
	}
	if opts.Dir != "" {
		cfg.Store.Dir = opts.Dir
		cfg.Store.Loam.Dir = opts.Dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := CreateLogger(cfg.Log, opts.Debug)
	m := metrics.New()

	backend, err := OpenBackend(ctx, cfg, m, logger)
	if err != nil {
		return nil, err
	}

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: m,
		Backend: backend,
		Editor: awpak.New(backend.Store,
			awpak.WithLocker(backend.Locker),
			awpak.WithLogger(logger),
			awpak.WithStrict(cfg.Codec.Strict),
			awpak.WithObserver(m.Observer()),
		),
		stdin: stdin,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Backend.Close()
}

// IsFile reports whether ref names a file rather than a stored document:
// "-" for stdin, or anything with a path separator or a .json suffix.
func IsFile(ref string) bool {
	return ref == "-" || strings.HasSuffix(ref, ".json") || strings.ContainsRune(ref, filepath.Separator) || strings.ContainsRune(ref, '/')
}

// ReadFile returns the bytes of a file reference.
func (a *App) ReadFile(ref string) ([]byte, error) {
	if ref == "-" {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(ref)
}

// LoadDocument resolves ref as a file (see IsFile) or a stored document name.
func (a *App) LoadDocument(ctx context.Context, ref string) (*domain.Graph, error) {
	if !IsFile(ref) {
		return a.Editor.Load(ctx, ref)
	}
	data, err := a.ReadFile(ref)
	if err != nil {
		return nil, err
	}
	g, err := a.Editor.Decode(data)
	a.Metrics.ObserveDecode(err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	return g, nil
}
