/*
Package ports defines the driven ports (interfaces) around the graph model.

These interfaces decouple editing and transport code from the storage
backends, so the same graph document can live in memory, on disk, in Redis,
in Postgres or in a Loam repository.

# Key Interfaces

  - GraphStore: reads and writes whole graph documents by name.
  - GraphSource: read-only listing and loading, for repositories the tool does not own.
  - DistributedLocker: serializes load-modify-save cycles on the same document.
*/
package ports
