package core

// NodeOption configures a CreateNode call before the node is built.
type NodeOption func(*nodeSpec)

// nodeSpec collects CreateNode parameters prior to construction.
// A fresh spec is built per call; option values are never shared
// across invocations.
type nodeSpec struct {
	payload any
	initial []*Edge
}

// WithPayload attaches an opaque user payload to the created node.
func WithPayload(payload any) NodeOption {
	return func(s *nodeSpec) { s.payload = payload }
}

// WithInitialEdges registers edges through the validated AddEdges path
// immediately after the node is inserted. Edges may reference the new
// node through any record carrying its ID; endpoints are re-pointed at
// the stored instances on insert. If any edge is rejected, the node
// insert is rolled back and CreateNode returns the error.
func WithInitialEdges(edges ...*Edge) NodeOption {
	return func(s *nodeSpec) { s.initial = append(s.initial, edges...) }
}

// EdgeOption configures properties of an Edge at construction time.
type EdgeOption func(*Edge)

// WithEdgeID overrides the generated identifier for this edge.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) { e.ID = id }
}

// WithBidirectional marks the edge for mirroring onto both endpoints'
// adjacency lists.
func WithBidirectional() EdgeOption {
	return func(e *Edge) { e.Bidirectional = true }
}
