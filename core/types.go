package core

import (
	"sync"

	"github.com/google/uuid"
)

// Node represents a vertex record in the graph.
// ID is a unique identifier, immutable once the node is stored;
// changing identity requires removal and re-creation.
// Edges is the ordered adjacency list of incident edges. It is
// maintained exclusively by Graph mutators; a Node never mutates it.
// Payload holds arbitrary user data and is never interpreted by core.
type Node struct {
	ID      string
	Edges   []*Edge
	Payload any
}

// Edge represents a connection between two node records.
// From → To, with a float64 Weight (zero by default).
// Endpoints are pointers to the records the Graph stores, not copies;
// AddEdges re-points them at the stored instances on insert.
// If Bidirectional is true, the edge is listed on both endpoints'
// adjacency lists, otherwise only on From's.
type Edge struct {
	ID            string
	From          *Node
	To            *Node
	Bidirectional bool
	Weight        float64
}

// Graph is the core data structure: a node catalog, an edge catalog,
// and the per-node adjacency lists derived from the edge catalog.
// Enumeration follows insertion order via the order slices.
// All mutations are protected by an internal mutex.
type Graph struct {
	mu        sync.RWMutex
	nodes     map[string]*Node
	edges     map[string]*Edge
	nodeOrder []string
	edgeOrder []string
}

// NewGraph constructs an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// NewNode constructs a standalone Node record with the given ID and
// opaque payload. An empty id draws a fresh random UUID, so repeated
// default constructions never collide.
// The node is not registered anywhere until passed to AddNodes.
func NewNode(id string, payload any) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	return &Node{ID: id, Payload: payload}
}

// NewEdge constructs a standalone Edge record from → to with the given
// weight. Options may set the ID and the bidirectional flag; without
// WithEdgeID a fresh random UUID is drawn per call.
// The edge is not registered anywhere until passed to AddEdges.
func NewEdge(from, to *Node, weight float64, opts ...EdgeOption) *Edge {
	e := &Edge{From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(e)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return e
}

// removeID deletes the first occurrence of id from order, preserving
// the relative order of the rest.
func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
