// Copyright (c) 2026 The Grapht Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package digraph implements a directed labelled multigraph supporting
// node/edge addition, outgoing-edge iteration, edge replacement, and
// reverse-topological sort rooted at a node.
//
// It underlies both the per-resolve() tree and the shared output graph of
// the grapht solver; the two are just two instantiations of the same
// generic Graph with different edge-label types.
package digraph

// Label is the constraint satisfied by edge-label types: labels are
// compared by value equality, which for the solver's domain types
// (Desire, DesireChain) means a hand-written Equal method rather than
// Go's built-in == (Desire's InjectionPoint carries an attribute map and
// DesireChain is a slice, so neither is a `comparable` type in the
// language sense).
type Label[L any] interface {
	Equal(L) bool
}

// Node is a graph vertex. Nodes are compared by identity (pointer
// equality), never by the value of Label.
type Node[N any] struct {
	Label N
}

// Edge is a directed, labelled connection between two nodes.
type Edge[N any, L Label[L]] struct {
	Head  *Node[N]
	Tail  *Node[N]
	Label L
}

// Graph is a directed labelled multigraph. The zero value is not usable;
// construct with New.
type Graph[N any, L Label[L]] struct {
	nodes   []*Node[N]
	present map[*Node[N]]bool
	out     map[*Node[N]][]*Edge[N, L]
}

// New creates an empty graph.
func New[N any, L Label[L]]() *Graph[N, L] {
	return &Graph[N, L]{
		present: make(map[*Node[N]]bool),
		out:     make(map[*Node[N]][]*Edge[N, L]),
	}
}

// AddNode creates, registers, and returns a new node with the given label.
func (g *Graph[N, L]) AddNode(label N) *Node[N] {
	n := &Node[N]{Label: label}
	g.nodes = append(g.nodes, n)
	g.present[n] = true
	return n
}

// HasNode reports whether n belongs to this graph.
func (g *Graph[N, L]) HasNode(n *Node[N]) bool {
	return g.present[n]
}

// RemoveNode removes a node and all edges where it is the head or tail.
// Used to discard an abandoned skip-if-unusable subtree.
func (g *Graph[N, L]) RemoveNode(n *Node[N]) {
	if !g.present[n] {
		return
	}
	delete(g.present, n)
	delete(g.out, n)
	for i, other := range g.nodes {
		if other == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	for head, edges := range g.out {
		filtered := edges[:0]
		for _, e := range edges {
			if e.Tail != n {
				filtered = append(filtered, e)
			}
		}
		g.out[head] = filtered
	}
}

// AddEdge adds a directed edge from head to tail. Both nodes must already
// be present in the graph; the graph rejects edges to nodes it does not
// contain.
func (g *Graph[N, L]) AddEdge(head, tail *Node[N], label L) *Edge[N, L] {
	if !g.present[head] || !g.present[tail] {
		panic("digraph: AddEdge requires both nodes to already be present")
	}
	e := &Edge[N, L]{Head: head, Tail: tail, Label: label}
	g.out[head] = append(g.out[head], e)
	return e
}

// ReplaceEdges replaces all outgoing edges of head with the given set.
func (g *Graph[N, L]) ReplaceEdges(head *Node[N], edges []*Edge[N, L]) {
	g.out[head] = edges
}

// OutgoingEdges returns all edges whose head is n, in insertion order.
func (g *Graph[N, L]) OutgoingEdges(n *Node[N]) []*Edge[N, L] {
	return g.out[n]
}

// OutgoingEdge returns the unique outgoing edge of n labelled label, or nil
// if none matches. It assumes at most one match exists for any label the
// caller queries this way.
func (g *Graph[N, L]) OutgoingEdge(n *Node[N], label L) *Edge[N, L] {
	for _, e := range g.out[n] {
		if e.Label.Equal(label) {
			return e
		}
	}
	return nil
}

// Nodes returns all nodes currently in the graph, in insertion order.
func (g *Graph[N, L]) Nodes() []*Node[N] {
	return g.nodes
}

// Sort returns a reverse-topological order of the nodes reachable from
// root (leaves first, root last), via depth-first postorder.
func (g *Graph[N, L]) Sort(root *Node[N]) []*Node[N] {
	visited := make(map[*Node[N]]bool)
	var order []*Node[N]

	var visit func(n *Node[N])
	visit = func(n *Node[N]) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, e := range g.out[n] {
			visit(e.Tail)
		}
		order = append(order, n)
	}
	visit(root)
	return order
}
