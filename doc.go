// Package graphgenerator is an in-memory container for directed and
// undirected graphs: uniquely identified node and edge records,
// per-node adjacency lists, and batch mutation operations that keep
// all three mutually consistent.
//
// Everything lives in one subpackage:
//
//	core/ — Node, Edge, and Graph types, batch mutators, deep copies,
//	        existence predicates, and the snapshot/export boundary
//
// The container stores, it does not compute: there are no traversals,
// shortest paths, or serialization formats here. Higher layers build
// those on top of the enumeration surface (Nodes, Edges, Snapshot).
//
// Quick example:
//
//	g := core.NewGraph()
//	alpha, _ := g.CreateNode("Alpha")
//	beta, _ := g.CreateNode("Beta")
//	g.CreateEdge(alpha, beta, 5, core.WithBidirectional())
package graphgenerator
