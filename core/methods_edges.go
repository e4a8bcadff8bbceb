package core

import "fmt"

// AddEdges inserts a batch of edge records, all or nothing.
// Validation covers the whole batch before any mutation: nil records,
// empty IDs, nil endpoints, IDs already cataloged (or repeated within
// the batch), and endpoints absent from the node catalog (referential
// integrity) each reject the entire batch.
//
// For each accepted edge: endpoints are re-pointed at the stored node
// instances (so the edge aliases the records the graph owns), the edge
// is cataloged, appended to From's adjacency list, and additionally to
// To's when Bidirectional. A bidirectional self-loop is listed once.
// Thread-safe: acquires a write lock.
//
// Complexity: O(len(edges)) amortized.
func (g *Graph) AddEdges(edges ...*Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e == nil {
			return ErrNilEdge
		}
		if e.ID == "" {
			return ErrEmptyEdgeID
		}
		if e.From == nil || e.To == nil {
			return fmt.Errorf("core: add edges: id %q: %w", e.ID, ErrMissingEndpoint)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("core: add edges: id %q: %w", e.ID, ErrEdgeExists)
		}
		if _, exists := g.edges[e.ID]; exists {
			return fmt.Errorf("core: add edges: id %q: %w", e.ID, ErrEdgeExists)
		}
		if _, exists := g.nodes[e.From.ID]; !exists {
			return fmt.Errorf("core: add edges: id %q: source %q: %w", e.ID, e.From.ID, ErrNodeNotFound)
		}
		if _, exists := g.nodes[e.To.ID]; !exists {
			return fmt.Errorf("core: add edges: id %q: destination %q: %w", e.ID, e.To.ID, ErrNodeNotFound)
		}
		seen[e.ID] = struct{}{}
	}

	for _, e := range edges {
		// Alias the stored records so edge and catalog agree on identity.
		e.From = g.nodes[e.From.ID]
		e.To = g.nodes[e.To.ID]

		g.edges[e.ID] = e
		g.edgeOrder = append(g.edgeOrder, e.ID)

		e.From.Edges = append(e.From.Edges, e)
		if e.Bidirectional && e.From != e.To {
			e.To.Edges = append(e.To.Edges, e)
		}
	}

	return nil
}

// CreateEdge builds an edge record from → to and inserts it via
// AddEdges. Without WithEdgeID a fresh random UUID is drawn per call.
func (g *Graph) CreateEdge(from, to *Node, weight float64, opts ...EdgeOption) (*Edge, error) {
	e := NewEdge(from, to, weight, opts...)
	if err := g.AddEdges(e); err != nil {
		return nil, err
	}

	return e, nil
}

// RemoveEdges deletes a batch of edges, all or nothing.
// Every supplied edge must be cataloged (ErrEdgeNotFound otherwise)
// and present in its endpoints' adjacency lists, located by record
// identity; a cataloged edge missing from an endpoint list fails with
// ErrEdgeDetached before anything is unlinked.
// For each accepted edge: unlink from From's adjacency list (and from
// To's when Bidirectional), then delete from the edge catalog.
// Thread-safe: acquires a write lock.
//
// Complexity: O(len(edges) · (deg + E)) due to list and order-slice scans.
func (g *Graph) RemoveEdges(edges ...*Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range edges {
		if e == nil {
			return ErrNilEdge
		}
		stored, exists := g.edges[e.ID]
		if !exists {
			return fmt.Errorf("core: remove edges: id %q: %w", e.ID, ErrEdgeNotFound)
		}
		if indexOfEdge(stored.From.Edges, stored) < 0 {
			return fmt.Errorf("core: remove edges: id %q: source %q: %w", stored.ID, stored.From.ID, ErrEdgeDetached)
		}
		if stored.Bidirectional && stored.From != stored.To {
			if indexOfEdge(stored.To.Edges, stored) < 0 {
				return fmt.Errorf("core: remove edges: id %q: destination %q: %w", stored.ID, stored.To.ID, ErrEdgeDetached)
			}
		}
	}

	for _, e := range edges {
		stored, exists := g.edges[e.ID]
		if !exists {
			// Same edge listed twice in the batch; already removed.
			continue
		}
		stored.From.Edges = unlinkEdge(stored.From.Edges, stored)
		if stored.Bidirectional && stored.From != stored.To {
			stored.To.Edges = unlinkEdge(stored.To.Edges, stored)
		}
		delete(g.edges, stored.ID)
		g.edgeOrder = removeID(g.edgeOrder, stored.ID)
	}

	return nil
}

// Edges returns a snapshot slice of all edge records in insertion
// order. The slice is fresh; the pointers are live catalog records.
// Thread-safe: acquires a read lock.
//
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}

	return out
}

// GetEdge returns the stored edge record for id, or nil when absent.
// The pointer aliases the live record. Absence is not an error.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) GetEdge(id string) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[id]
}

// GetEdgeCopy returns a deep, fully independent copy of the edge for
// id, or nil when absent. Endpoint nodes are themselves deep copies,
// detached from the live graph, with shared structure preserved (the
// copied endpoints' adjacency lists reference the copied edge).
// Thread-safe: acquires a read lock.
//
// Complexity: O(size of the connected component reachable from the edge)
func (g *Graph) GetEdgeCopy(id string) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, exists := g.edges[id]
	if !exists {
		return nil
	}

	return newCloner().cloneEdge(e)
}

// HasEdge reports whether an edge with the given ID is cataloged.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) HasEdge(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.edges[id]
	return exists
}

// HasEdges reports whether every supplied record's ID is cataloged.
// A nil record counts as absent; an empty batch is vacuously true.
// Thread-safe: acquires a read lock.
//
// Complexity: O(len(edges))
func (g *Graph) HasEdges(edges ...*Edge) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range edges {
		if e == nil {
			return false
		}
		if _, exists := g.edges[e.ID]; !exists {
			return false
		}
	}

	return true
}

// EdgeCount returns the number of cataloged edges.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns each unique node adjacent to id, derived from its
// adjacency list: destinations of outgoing edges, plus sources of
// mirrored bidirectional edges. Returns nil for a missing node.
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg)
func (g *Graph) Neighbors(id string) []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, exists := g.nodes[id]
	if !exists {
		return nil
	}

	out := make([]*Node, 0, len(n.Edges))
	seen := make(map[string]struct{}, len(n.Edges))
	for _, e := range n.Edges {
		var nb *Node
		switch {
		case e.From == n:
			nb = e.To
		case e.To == n && e.Bidirectional:
			nb = e.From
		default:
			continue
		}
		if _, dup := seen[nb.ID]; dup {
			continue
		}
		seen[nb.ID] = struct{}{}
		out = append(out, nb)
	}

	return out
}

// indexOfEdge locates e in list by record identity, -1 when absent.
func indexOfEdge(list []*Edge, e *Edge) int {
	for i, x := range list {
		if x == e {
			return i
		}
	}
	return -1
}

// unlinkEdge removes the first identity match of e from list,
// preserving the order of the remaining edges.
func unlinkEdge(list []*Edge, e *Edge) []*Edge {
	if i := indexOfEdge(list, e); i >= 0 {
		return append(list[:i], list[i+1:]...)
	}
	return list
}
