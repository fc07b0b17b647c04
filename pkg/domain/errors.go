package domain

import "errors"

// ErrGraphNotFound is returned when a graph document cannot be found in a store.
var ErrGraphNotFound = errors.New("graph not found")

// ErrNodeNotFound is returned when a node id does not resolve inside a graph.
var ErrNodeNotFound = errors.New("node not found")

// ErrDuplicateNodeID is returned when a node id is already used by another node.
var ErrDuplicateNodeID = errors.New("duplicate node id")

// ErrInvalidGraphName is returned when a graph document name is empty or unsafe.
var ErrInvalidGraphName = errors.New("invalid graph name")

// ErrReadOnly is returned when writing to a store opened for reading only.
var ErrReadOnly = errors.New("store is read-only")
