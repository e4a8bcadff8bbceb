package core

import (
	"fmt"
	"io"
)

// NodeRecord is the flat, serialization-ready form of a node.
// The adjacency list is deliberately absent: it is derived state,
// reconstructed from the edge set on import.
type NodeRecord struct {
	ID      string
	Payload any
}

// EdgeRecord is the flat, serialization-ready form of an edge,
// referencing endpoints by ID.
type EdgeRecord struct {
	ID            string
	From          string
	To            string
	Bidirectional bool
	Weight        float64
}

// Snapshot is a complete, enumerable view of a graph, sufficient for a
// serializer to reconstruct it faithfully: the full node set with
// payloads and the full edge set with endpoints, directionality, and
// weights. Records follow insertion order.
type Snapshot struct {
	Nodes []NodeRecord
	Edges []EdgeRecord
}

// Exporter writes a Snapshot to a destination stream.
// The wire format is owned entirely by the collaborator.
type Exporter interface {
	ExportGraph(dst io.Writer, snap Snapshot) error
}

// Importer reads a Snapshot from a source stream.
type Importer interface {
	ImportGraph(src io.Reader) (Snapshot, error)
}

// Snapshot captures the current node and edge catalogs as flat records
// in insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V + E)
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot{
		Nodes: make([]NodeRecord, 0, len(g.nodeOrder)),
		Edges: make([]EdgeRecord, 0, len(g.edgeOrder)),
	}
	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		snap.Nodes = append(snap.Nodes, NodeRecord{ID: n.ID, Payload: n.Payload})
	}
	for _, id := range g.edgeOrder {
		e := g.edges[id]
		snap.Edges = append(snap.Edges, EdgeRecord{
			ID:            e.ID,
			From:          e.From.ID,
			To:            e.To.ID,
			Bidirectional: e.Bidirectional,
			Weight:        e.Weight,
		})
	}

	return snap
}

// FromSnapshot rebuilds a graph from flat records, reconstructing
// adjacency lists purely from the edge set via the validated mutators.
// An edge record whose endpoint is missing from the node set fails
// with ErrNodeNotFound; this makes snapshots of graphs holding
// dangling edges non-importable by construction.
func FromSnapshot(snap Snapshot) (*Graph, error) {
	g := NewGraph()

	nodes := make([]*Node, len(snap.Nodes))
	for i, r := range snap.Nodes {
		nodes[i] = NewNode(r.ID, r.Payload)
	}
	if err := g.AddNodes(nodes...); err != nil {
		return nil, err
	}

	for _, r := range snap.Edges {
		from := g.GetNode(r.From)
		if from == nil {
			return nil, fmt.Errorf("core: import edge %q: source %q: %w", r.ID, r.From, ErrNodeNotFound)
		}
		to := g.GetNode(r.To)
		if to == nil {
			return nil, fmt.Errorf("core: import edge %q: destination %q: %w", r.ID, r.To, ErrNodeNotFound)
		}
		e := &Edge{ID: r.ID, From: from, To: to, Bidirectional: r.Bidirectional, Weight: r.Weight}
		if err := g.AddEdges(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Export hands the graph's Snapshot to the collaborator for writing.
// Returns ErrNoCodec when enc is nil.
func (g *Graph) Export(dst io.Writer, enc Exporter) error {
	if enc == nil {
		return ErrNoCodec
	}
	return enc.ExportGraph(dst, g.Snapshot())
}

// Import reads a Snapshot through the collaborator and rebuilds the
// graph from it. Returns ErrNoCodec when dec is nil.
func Import(src io.Reader, dec Importer) (*Graph, error) {
	if dec == nil {
		return nil, ErrNoCodec
	}
	snap, err := dec.ImportGraph(src)
	if err != nil {
		return nil, err
	}
	return FromSnapshot(snap)
}
