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

package grapht

import (
	"github.com/henfee/grapht/graphtevent"
	"github.com/henfee/grapht/internal/digraph"
)

// merge folds a per-Resolve tree into the shared output graph. Nodes are
// visited in reverse-topological order (leaves
// first) so that a node's dependencies have already been merged by the
// time the node itself is considered, and a node is reused whenever an
// existing output node carries the same satisfaction and the same set of
// (already-merged) dependency nodes.
func (s *Solver) merge(tree *digraph.Graph[Satisfaction, DesireChain], treeRoot *digraph.Node[Satisfaction]) {
	merged := make(map[*digraph.Node[Satisfaction]]*digraph.Node[Satisfaction])

	for _, t := range tree.Sort(treeRoot) {
		if t == treeRoot {
			s.mergeRootEdges(tree, treeRoot, merged)
			continue
		}

		deps := s.dependencyOptions(tree, t, merged)
		existing := s.findExistingNode(t.Label, deps)

		var out *digraph.Node[Satisfaction]
		if existing != nil {
			out = existing
			s.logger.LogEvent(&graphtevent.NodeReused{Satisfaction: t.Label.String()})
		} else {
			out = s.graph.AddNode(t.Label)
			for _, e := range tree.OutgoingEdges(t) {
				s.graph.AddEdge(out, merged[e.Tail], e.Label.First())
			}
			s.logger.LogEvent(&graphtevent.NodeCreated{Satisfaction: t.Label.String()})
		}
		merged[t] = out
	}
}

// mergeRootEdges adds the tree's root-level edges to the shared graph's
// root, skipping any whose label already has an equivalent edge there so
// that resolving the same root desire twice does not create a duplicate.
func (s *Solver) mergeRootEdges(tree *digraph.Graph[Satisfaction, DesireChain], treeRoot *digraph.Node[Satisfaction], merged map[*digraph.Node[Satisfaction]]*digraph.Node[Satisfaction]) {
	for _, e := range tree.OutgoingEdges(treeRoot) {
		label := e.Label.First()
		if s.graph.OutgoingEdge(s.root, label) != nil {
			continue
		}
		s.graph.AddEdge(s.root, merged[e.Tail], label)
	}
}

// dependencyOptions returns the set of already-merged output nodes that t's
// tree-level dependencies were folded into.
func (s *Solver) dependencyOptions(tree *digraph.Graph[Satisfaction, DesireChain], t *digraph.Node[Satisfaction], merged map[*digraph.Node[Satisfaction]]*digraph.Node[Satisfaction]) map[*digraph.Node[Satisfaction]]struct{} {
	deps := make(map[*digraph.Node[Satisfaction]]struct{})
	for _, e := range tree.OutgoingEdges(t) {
		deps[merged[e.Tail]] = struct{}{}
	}
	return deps
}

func (s *Solver) findExistingNode(sat Satisfaction, deps map[*digraph.Node[Satisfaction]]struct{}) *digraph.Node[Satisfaction] {
	for _, n := range s.graph.Nodes() {
		if n == s.root || n.Label == nil || !n.Label.Equal(sat) {
			continue
		}
		existing := make(map[*digraph.Node[Satisfaction]]struct{})
		for _, e := range s.graph.OutgoingEdges(n) {
			existing[e.Tail] = struct{}{}
		}
		if nodeSetsEqual(existing, deps) {
			return n
		}
	}
	return nil
}

func nodeSetsEqual(a, b map[*digraph.Node[Satisfaction]]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
