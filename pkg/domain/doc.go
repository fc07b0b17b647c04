/*
Package domain contains the graph configuration model consumed by the awpak
execution engine.

The model is a family of recursive tagged unions. Each union is a closed
interface with one pointer struct per variant, so callers can mutate a value in
place and type switches over a family stay exhaustive. This package is kept pure
and free of I/O; encoding lives in codec, variant changes in transition and
reference maintenance in refs.

# Key Entities

  - Graph: the root aggregate (stores, initial context, entry node, nodes).
  - Node: a PlainNode running a NodeExecutor, or a GraphNode calling a sub-graph file.
  - DataFrom: an expression describing where a runtime value comes from.
  - DataComparator: a boolean condition over DataFrom expressions.
  - NodeDestination: routing from a node to another node or to an exit.
*/
package domain
