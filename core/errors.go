package core

import "errors"

// Sentinel errors for core graph operations.
// Callers branch on semantics with errors.Is; mutators attach the
// offending identifier via %w wrapping at the call site.
// A non-nil error from any batch mutator means zero mutation occurred.
var (
	// ErrNilNode indicates a nil *Node was supplied to a batch operation.
	ErrNilNode = errors.New("core: node is nil")
	// ErrNilEdge indicates a nil *Edge was supplied to a batch operation.
	ErrNilEdge = errors.New("core: edge is nil")
	// ErrEmptyNodeID indicates a node record carries an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")
	// ErrEmptyEdgeID indicates an edge record carries an empty ID.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")
	// ErrNodeExists indicates a node ID is already present in the catalog
	// (or appears twice within one batch); the whole batch is rejected.
	ErrNodeExists = errors.New("core: node ID already present")
	// ErrEdgeExists indicates an edge ID is already present in the catalog
	// (or appears twice within one batch); the whole batch is rejected.
	ErrEdgeExists = errors.New("core: edge ID already present")
	// ErrNodeNotFound indicates an operation referenced a node ID absent
	// from the node catalog (removal target or edge endpoint).
	ErrNodeNotFound = errors.New("core: node not found")
	// ErrEdgeNotFound indicates an operation referenced an edge ID absent
	// from the edge catalog.
	ErrEdgeNotFound = errors.New("core: edge not found")
	// ErrMissingEndpoint indicates an edge record carries a nil endpoint.
	ErrMissingEndpoint = errors.New("core: edge endpoint is nil")
	// ErrEdgeDetached indicates a cataloged edge is absent from an
	// endpoint's adjacency list, so it cannot be unlinked consistently.
	ErrEdgeDetached = errors.New("core: edge absent from endpoint adjacency list")
	// ErrNoCodec indicates Export/Import was invoked without a collaborator.
	ErrNoCodec = errors.New("core: nil graph codec")
)
