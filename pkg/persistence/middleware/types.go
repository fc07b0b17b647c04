// Package middleware wraps graph stores with cross-cutting persistence behavior.
package middleware

import "github.com/afuentesan/awpak-builder/pkg/ports"

// Middleware allows wrapping a GraphStore to add behavior.
type Middleware func(ports.GraphStore) ports.GraphStore

// Chain applies mws so that the first one is the outermost wrapper.
func Chain(store ports.GraphStore, mws ...Middleware) ports.GraphStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
