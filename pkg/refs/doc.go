// Package refs walks a graph and finds every place that names another node
// or a store by id.
//
// Destinations, AgentHistory expressions and AgentHistoryMut items refer to
// nodes by string id, never by pointer. Renaming or removing a node therefore
// needs a full traversal: Rename and Delete rewrite every matching reference,
// Collect lists them for validation and tooling.
//
// The traversal is expressed as one visitor interface per union family. A new
// variant added to a family must be given a method on its visitor, which the
// collector in this package then fails to satisfy until it handles the case.
package refs
