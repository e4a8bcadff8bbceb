package core_test

import (
	"errors"
	"testing"

	"github.com/AdnanT-ADN/GraphGenerator/core"
)

// TestAddNodes_BatchRejected verifies all-or-nothing insertion: a batch
// carrying one already-present ID leaves the catalog unchanged.
func TestAddNodes_BatchRejected(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddNodes(core.NewNode("A", nil)); err != nil {
		t.Fatalf("AddNodes(A) error: %v", err)
	}

	err := g.AddNodes(core.NewNode("A", nil), core.NewNode("B", nil))
	if !errors.Is(err, core.ErrNodeExists) {
		t.Errorf("AddNodes(A,B) error = %v; want ErrNodeExists", err)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount = %d; want 1", g.NodeCount())
	}
	if g.GetNode("B") != nil {
		t.Error("B must not be inserted when the batch is rejected")
	}
}

// TestAddNodes_Validation covers nil records, empty IDs, and duplicate
// IDs within a single batch.
func TestAddNodes_Validation(t *testing.T) {
	cases := []struct {
		name  string
		nodes []*core.Node
		err   error
	}{
		{"NilNode", []*core.Node{nil}, core.ErrNilNode},
		{"EmptyID", []*core.Node{{ID: ""}}, core.ErrEmptyNodeID},
		{"DuplicateInBatch", []*core.Node{core.NewNode("X", nil), core.NewNode("X", nil)}, core.ErrNodeExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			if err := g.AddNodes(tc.nodes...); !errors.Is(err, tc.err) {
				t.Errorf("AddNodes error = %v; want %v", err, tc.err)
			}
			if g.NodeCount() != 0 {
				t.Errorf("NodeCount = %d; want 0 after rejected batch", g.NodeCount())
			}
		})
	}
}

// TestCreateNode_FreshDefaultIDs verifies that each CreateNode call
// without an ID draws its own identifier: defaults are never shared
// across invocations.
func TestCreateNode_FreshDefaultIDs(t *testing.T) {
	g := core.NewGraph()
	first, err := g.CreateNode("")
	if err != nil {
		t.Fatalf("CreateNode #1 error: %v", err)
	}
	second, err := g.CreateNode("")
	if err != nil {
		t.Fatalf("CreateNode #2 error: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("default IDs collide: %q", first.ID)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount = %d; want 2", g.NodeCount())
	}
}

// TestCreateNode_InitialEdgesRouted verifies that initial edges pass
// through the validated AddEdges path: they land in the edge catalog,
// endpoints are re-pointed at stored records, and the stored node's
// adjacency list is populated.
func TestCreateNode_InitialEdgesRouted(t *testing.T) {
	g := core.NewGraph()
	a, err := g.CreateNode("A")
	if err != nil {
		t.Fatalf("CreateNode(A) error: %v", err)
	}

	// The caller references the not-yet-created node by ID through a
	// placeholder record; AddEdges re-points it on insert.
	placeholder := &core.Node{ID: "B"}
	e := core.NewEdge(placeholder, a, 2, core.WithEdgeID("ba"))
	b, err := g.CreateNode("B", core.WithInitialEdges(e), core.WithPayload("payload"))
	if err != nil {
		t.Fatalf("CreateNode(B) error: %v", err)
	}

	if !g.HasEdge("ba") {
		t.Fatal("initial edge must be registered in the edge catalog")
	}
	if e.From != b {
		t.Error("initial edge source must alias the stored node record")
	}
	if len(b.Edges) != 1 || b.Edges[0] != e {
		t.Errorf("B adjacency = %v; want exactly the initial edge", b.Edges)
	}
	if b.Payload != "payload" {
		t.Errorf("B payload = %v; want %q", b.Payload, "payload")
	}
}

// TestCreateNode_InitialEdgeFailureRollsBack verifies that a rejected
// initial edge undoes the node insert.
func TestCreateNode_InitialEdgeFailureRollsBack(t *testing.T) {
	g := core.NewGraph()
	missing := &core.Node{ID: "Missing"}
	e := core.NewEdge(&core.Node{ID: "C"}, missing, 0)

	_, err := g.CreateNode("C", core.WithInitialEdges(e))
	if !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("CreateNode error = %v; want ErrNodeNotFound", err)
	}
	if g.HasNode("C") {
		t.Error("C must be rolled back when its initial edge is rejected")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d; want 0", g.EdgeCount())
	}
}

// TestRemoveNodes_AllOrNothing verifies the whole-batch existence gate.
func TestRemoveNodes_AllOrNothing(t *testing.T) {
	g := core.NewGraph()
	a := core.NewNode("A", nil)
	if err := g.AddNodes(a); err != nil {
		t.Fatalf("AddNodes error: %v", err)
	}

	err := g.RemoveNodes(a, core.NewNode("Ghost", nil))
	if !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("RemoveNodes error = %v; want ErrNodeNotFound", err)
	}
	if !g.HasNode("A") {
		t.Error("A must survive a rejected removal batch")
	}

	if err = g.RemoveNodes(a); err != nil {
		t.Fatalf("RemoveNodes(A) error: %v", err)
	}
	if g.HasNode("A") {
		t.Error("A must be gone after removal")
	}
}

// TestRemoveNodes_LeavesDanglingEdges locks in the no-cascade policy:
// removing a node keeps its incident edges in the edge catalog and in
// surviving adjacency lists.
func TestRemoveNodes_LeavesDanglingEdges(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.CreateNode("A")
	b, _ := g.CreateNode("B")
	e, err := g.CreateEdge(a, b, 1, core.WithEdgeID("ab"), core.WithBidirectional())
	if err != nil {
		t.Fatalf("CreateEdge error: %v", err)
	}

	if err = g.RemoveNodes(b); err != nil {
		t.Fatalf("RemoveNodes(B) error: %v", err)
	}
	if !g.HasEdge("ab") {
		t.Error("edge must stay cataloged after endpoint removal")
	}
	if len(a.Edges) != 1 || a.Edges[0] != e {
		t.Errorf("A adjacency = %v; want the dangling edge kept", a.Edges)
	}
	if e.To != b {
		t.Error("dangling edge must keep referencing the removed record")
	}
}

// TestGetNode_AliasVsCopy verifies the shared-reference contract of
// GetNode and the independence of GetNodeCopy.
func TestGetNode_AliasVsCopy(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.CreateNode("A", core.WithPayload("original")); err != nil {
		t.Fatalf("CreateNode error: %v", err)
	}

	live := g.GetNode("A")
	if live == nil || live != g.GetNode("A") {
		t.Fatal("GetNode must return the same live record to every caller")
	}

	cp := g.GetNodeCopy("A")
	if cp == live {
		t.Fatal("GetNodeCopy must not alias the live record")
	}
	cp.Payload = "mutated"
	if g.GetNode("A").Payload != "original" {
		t.Error("mutating the copy's payload must not affect the live record")
	}
	cp.Edges = append(cp.Edges, &core.Edge{ID: "rogue"})
	if len(g.GetNode("A").Edges) != 0 {
		t.Error("mutating the copy's adjacency list must not affect the live record")
	}

	if g.GetNode("Missing") != nil || g.GetNodeCopy("Missing") != nil {
		t.Error("absent IDs must yield nil, not an error")
	}
}

// TestNodes_InsertionOrder verifies stable enumeration.
func TestNodes_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	want := []string{"C", "A", "B"}
	for _, id := range want {
		if _, err := g.CreateNode(id); err != nil {
			t.Fatalf("CreateNode(%s) error: %v", id, err)
		}
	}
	got := g.Nodes()
	if len(got) != len(want) {
		t.Fatalf("Nodes length = %d; want %d", len(got), len(want))
	}
	for i, n := range got {
		if n.ID != want[i] {
			t.Errorf("Nodes[%d] = %q; want %q", i, n.ID, want[i])
		}
	}
}

// TestHasNodes covers the exported batch predicate.
func TestHasNodes(t *testing.T) {
	g := core.NewGraph()
	a := core.NewNode("A", nil)
	if err := g.AddNodes(a); err != nil {
		t.Fatalf("AddNodes error: %v", err)
	}

	if !g.HasNodes() {
		t.Error("empty batch must be vacuously true")
	}
	if !g.HasNodes(a) {
		t.Error("HasNodes(A) = false; want true")
	}
	if g.HasNodes(a, core.NewNode("Ghost", nil)) {
		t.Error("HasNodes with a missing member must be false")
	}
	if g.HasNodes(nil) {
		t.Error("HasNodes(nil) must be false")
	}
}
