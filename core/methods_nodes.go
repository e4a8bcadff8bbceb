package core

import "fmt"

// AddNodes inserts a batch of node records, all or nothing.
// The whole batch is validated before any insertion: a nil record, an
// empty ID, or an ID already present in the catalog (or repeated
// within the batch) rejects the entire batch and leaves the graph
// unchanged.
// Thread-safe: acquires a write lock.
//
// Complexity: O(len(nodes))
func (g *Graph) AddNodes(nodes ...*Node) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if n == nil {
			return ErrNilNode
		}
		if n.ID == "" {
			return ErrEmptyNodeID
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("core: add nodes: id %q: %w", n.ID, ErrNodeExists)
		}
		if _, exists := g.nodes[n.ID]; exists {
			return fmt.Errorf("core: add nodes: id %q: %w", n.ID, ErrNodeExists)
		}
		seen[n.ID] = struct{}{}
	}

	for _, n := range nodes {
		g.nodes[n.ID] = n
		g.nodeOrder = append(g.nodeOrder, n.ID)
	}

	return nil
}

// CreateNode builds a node record and inserts it via AddNodes.
// An empty id draws a fresh random UUID per call.
// Initial edges supplied via WithInitialEdges go through the validated
// AddEdges path; if any of them is rejected, the node insert is rolled
// back and the edge error returned.
func (g *Graph) CreateNode(id string, opts ...NodeOption) (*Node, error) {
	var spec nodeSpec
	for _, opt := range opts {
		opt(&spec)
	}

	n := NewNode(id, spec.payload)
	if err := g.AddNodes(n); err != nil {
		return nil, err
	}
	if len(spec.initial) > 0 {
		if err := g.AddEdges(spec.initial...); err != nil {
			_ = g.RemoveNodes(n)
			return nil, err
		}
	}

	return n, nil
}

// RemoveNodes deletes a batch of nodes from the catalog, all or
// nothing: if any supplied node's ID is absent, nothing is removed and
// ErrNodeNotFound is returned.
// Removal does not cascade: edges referencing a removed node stay in
// the edge catalog and in surviving adjacency lists. Callers wanting
// cascade delete incident edges first (see HasEdges / RemoveEdges).
// Thread-safe: acquires a write lock.
//
// Complexity: O(len(nodes) · V) due to order-slice maintenance.
func (g *Graph) RemoveNodes(nodes ...*Node) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range nodes {
		if n == nil {
			return ErrNilNode
		}
		if _, exists := g.nodes[n.ID]; !exists {
			return fmt.Errorf("core: remove nodes: id %q: %w", n.ID, ErrNodeNotFound)
		}
	}

	for _, n := range nodes {
		delete(g.nodes, n.ID)
		g.nodeOrder = removeID(g.nodeOrder, n.ID)
	}

	return nil
}

// Nodes returns a snapshot slice of all node records in insertion
// order. The slice is fresh; the pointers are live catalog records.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V)
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}

	return out
}

// GetNode returns the stored node record for id, or nil when absent.
// The pointer aliases the live record: mutations are visible to every
// holder. Absence is not an error; callers check for nil.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) GetNode(id string) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[id]
}

// GetNodeCopy returns a deep, fully independent copy of the node for
// id, or nil when absent. The copy carries its own adjacency list and
// its own copies of every reachable node and edge record; payloads are
// copied by value (shared when they hold a reference type).
// Thread-safe: acquires a read lock.
//
// Complexity: O(size of the connected component reachable from id)
func (g *Graph) GetNodeCopy(id string) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, exists := g.nodes[id]
	if !exists {
		return nil
	}

	return newCloner().cloneNode(n)
}

// HasNode reports whether a node with the given ID is cataloged.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.nodes[id]
	return exists
}

// HasNodes reports whether every supplied record's ID is cataloged.
// A nil record counts as absent; an empty batch is vacuously true.
// This is the gate batch mutators use, exported so callers can
// pre-validate or build cascade policies on top.
// Thread-safe: acquires a read lock.
//
// Complexity: O(len(nodes))
func (g *Graph) HasNodes(nodes ...*Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, n := range nodes {
		if n == nil {
			return false
		}
		if _, exists := g.nodes[n.ID]; !exists {
			return false
		}
	}

	return true
}

// NodeCount returns the number of cataloged nodes.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
