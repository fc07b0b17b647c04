package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/afuentesan/awpak-builder/internal/adapters/file"
	"github.com/afuentesan/awpak-builder/internal/adapters/redis"
	"github.com/afuentesan/awpak-builder/internal/config"
	"github.com/afuentesan/awpak-builder/internal/metrics"
	"github.com/afuentesan/awpak-builder/pkg/adapters/loam"
	"github.com/afuentesan/awpak-builder/pkg/adapters/memory"
	"github.com/afuentesan/awpak-builder/pkg/adapters/postgres"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/persistence/middleware"
	"github.com/afuentesan/awpak-builder/pkg/ports"
)

// Backend is a configured graph store with its locker.
type Backend struct {
	Store  ports.GraphStore
	Locker ports.DistributedLocker
	// Watcher is set for backends that can signal document changes.
	Watcher ports.Watchable

	closers []func() error
}

// Close releases connections held by the backend.
func (b *Backend) Close() error {
	var errs []error
	for _, c := range b.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// OpenBackend builds the store selected by cfg.Store.Backend and wraps it
// with the configured middlewares. m may be nil.
func OpenBackend(ctx context.Context, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) (*Backend, error) {
	b := &Backend{Locker: memory.NewLocker()}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		b.Store = memory.NewStore()
	case config.BackendFile:
		b.Store = file.New(cfg.Store.Dir)
	case config.BackendRedis:
		prefix := cfg.Store.Redis.Prefix
		if prefix == "" {
			prefix = redis.DefaultPrefix
		}
		store := redis.New(cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.DB,
			redis.WithPrefix(prefix),
			redis.WithTTL(cfg.Store.Redis.TTL),
		)
		b.Store = store
		b.Locker = redis.NewLocker(store.Client(), prefix)
		b.closers = append(b.closers, store.Close)
	case config.BackendPostgres:
		store, err := postgres.Connect(ctx, cfg.Store.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		if err := store.CreateSchema(ctx); err != nil {
			store.Close()
			return nil, err
		}
		b.Store = store
		b.closers = append(b.closers, func() error { store.Close(); return nil })
	case config.BackendLoam:
		var opts []codec.Option
		if cfg.Codec.Strict {
			opts = append(opts, codec.WithStrict(true))
		}
		opts = append(opts, codec.WithLogger(logger))
		if m != nil {
			opts = append(opts, codec.WithObserver(m.Observer()))
		}
		loader, err := loam.Open(cfg.Store.Loam.Dir, opts...)
		if err != nil {
			return nil, err
		}
		b.Store = ports.ReadOnly(loader)
		b.Watcher = loader
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	mws, err := storeMiddlewares(cfg.Store, m)
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	b.Store = middleware.Chain(b.Store, mws...)

	logger.Debug("Store opened", "backend", cfg.Store.Backend, "middlewares", len(mws))
	return b, nil
}

// storeMiddlewares orders metrics outermost, then redaction, then encryption.
func storeMiddlewares(cfg config.StoreConfig, m *metrics.Metrics) ([]middleware.Middleware, error) {
	var mws []middleware.Middleware
	if m != nil {
		mws = append(mws, m.StoreMiddleware(cfg.Backend))
	}
	if len(cfg.Redact) > 0 {
		redact, err := middleware.NewRedactMiddleware(cfg.Redact)
		if err != nil {
			return nil, err
		}
		mws = append(mws, redact)
	}
	key, err := cfg.Key()
	if err != nil {
		return nil, err
	}
	if key != nil {
		mws = append(mws, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}))
	}
	return mws, nil
}
