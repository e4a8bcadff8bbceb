// Package core provides the fundamental in-memory graph container:
// a node catalog, an edge catalog, and per-node adjacency lists kept
// mutually consistent by the Graph's mutators.
//
// Consistency rules:
//
//   - Both catalogs are keyed by ID; a record's ID field always equals
//     its catalog key, and IDs are unique per catalog.
//   - An edge is accepted only when both endpoints are cataloged
//     (referential integrity); on insert its endpoint pointers are
//     re-pointed at the stored node records.
//   - A bidirectional edge is mirrored onto both endpoints' adjacency
//     lists (once on each; a self-loop is listed once in total).
//   - Batch mutators (AddNodes, AddEdges, RemoveNodes, RemoveEdges)
//     are all or nothing: the whole batch is validated first, and a
//     non-nil error means the graph was not touched.
//   - Removing a node does not cascade; edges referencing it are left
//     dangling in the edge catalog and in surviving adjacency lists.
//     HasNodes/HasEdges let callers build cascade themselves.
//
// Lookups come in two flavors: GetNode/GetEdge alias the live records
// (mutations visible to all holders, read-only by convention), while
// GetNodeCopy/GetEdgeCopy return deep, fully detached copies with
// shared structure preserved inside the copy. Absent IDs yield nil,
// never an error.
//
// Identifiers are strings. Constructors draw a fresh random UUID per
// call when no ID is given, so default-constructed records never
// collide.
//
// Persistence stays outside this package: Snapshot flattens the graph
// to node and edge records (adjacency is derived and never exported),
// FromSnapshot rebuilds it through the validated mutators, and the
// Exporter/Importer interfaces leave the wire format to an external
// collaborator.
//
// All operations are guarded by a single internal read-write mutex;
// mutators take the write lock, queries the read lock.
package core
