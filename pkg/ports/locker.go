package ports

import (
	"context"
	"time"
)

// UnlockFunc is a function that releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker defines the interface for concurrency control across
// replicas editing the same graph document.
type DistributedLocker interface {
	// Lock attempts to acquire a lock for key (a graph name).
	// It blocks until the lock is acquired or the context is canceled. The lock
	// expires after ttl if never released.
	// Returns an UnlockFunc that MUST be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
