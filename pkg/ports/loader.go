package ports

import "context"

// Watchable defines an interface for sources that can notify about backend changes.
// This is typically used for hot-reload of a served directory.
type Watchable interface {
	// Watch returns a channel that is signaled when any document changes.
	// It abstracts away the specific event details, signaling only that a reload is required.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
