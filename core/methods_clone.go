package core

// cloner performs memoized deep copies of node and edge records.
// The memo both preserves shared structure (the copy of an edge points
// at the copies of its endpoints, and vice versa) and terminates the
// Node ↔ Edge reference cycle.
type cloner struct {
	nodes map[*Node]*Node
	edges map[*Edge]*Edge
}

func newCloner() *cloner {
	return &cloner{
		nodes: make(map[*Node]*Node),
		edges: make(map[*Edge]*Edge),
	}
}

// cloneNode returns the deep copy of n, creating it on first visit.
// Payload is copied by value: shared when it holds a reference type.
// To deep-copy payloads, iterate yourself.
func (c *cloner) cloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	if dup, visited := c.nodes[n]; visited {
		return dup
	}

	dup := &Node{ID: n.ID, Payload: n.Payload}
	c.nodes[n] = dup // memoize before recursing into the adjacency list
	if n.Edges != nil {
		dup.Edges = make([]*Edge, len(n.Edges))
		for i, e := range n.Edges {
			dup.Edges[i] = c.cloneEdge(e)
		}
	}

	return dup
}

// cloneEdge returns the deep copy of e, creating it on first visit.
func (c *cloner) cloneEdge(e *Edge) *Edge {
	if e == nil {
		return nil
	}
	if dup, visited := c.edges[e]; visited {
		return dup
	}

	dup := &Edge{ID: e.ID, Bidirectional: e.Bidirectional, Weight: e.Weight}
	c.edges[e] = dup // memoize before recursing into the endpoints
	dup.From = c.cloneNode(e.From)
	dup.To = c.cloneNode(e.To)

	return dup
}

// Clone returns a deep copy of the Graph: catalogs, adjacency lists,
// and insertion order. One cloner spans the whole copy, so every
// cross-reference between records is preserved inside the clone.
// Thread-safe: acquires a read lock; the source is not mutated.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := newCloner()
	clone := NewGraph()
	for _, id := range g.nodeOrder {
		clone.nodes[id] = c.cloneNode(g.nodes[id])
	}
	clone.nodeOrder = append([]string(nil), g.nodeOrder...)
	for _, id := range g.edgeOrder {
		clone.edges[id] = c.cloneEdge(g.edges[id])
	}
	clone.edgeOrder = append([]string(nil), g.edgeOrder...)

	return clone
}

// Clear resets the graph to an empty state. Records handed out earlier
// stay valid but are no longer cataloged.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.nodeOrder = nil
	g.edgeOrder = nil
}
