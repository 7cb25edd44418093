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

// Package grapht implements the core of a dependency-injection container:
// a solver that folds a set of requested Desires into a single shared
// dependency graph, sharing satisfactions between dependents whenever their
// own resolved dependencies are identical.
package grapht

import (
	stderrors "errors"

	"github.com/henfee/grapht/graphtevent"
	"github.com/henfee/grapht/internal/digraph"
	"github.com/henfee/grapht/internal/graphtreflect"
	"github.com/pkg/errors"
)

// Solver resolves Desires into a shared, acyclic output graph. It is not
// safe for concurrent use: a single Solver instance must not have Resolve
// called from more than one goroutine at a time.
type Solver struct {
	bindingFunctions []BindingFunction
	maxDepth         int
	logger           graphtevent.Logger
	registry         *QualifierRegistry

	graph *digraph.Graph[Satisfaction, Desire]
	root  *digraph.Node[Satisfaction]
}

// New creates a Solver that consults bindingFunctions in order (first
// match wins). WithMaxDepth is required; New rejects a max depth below 1
// and a nil binding-function list.
func New(bindingFunctions []BindingFunction, opts ...Option) (*Solver, error) {
	if bindingFunctions == nil {
		return nil, errors.New("grapht: bindingFunctions must not be nil")
	}

	cfg := &solverConfig{logger: graphtevent.NopLogger{}}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	if cfg.maxDepth < 1 {
		return nil, errors.New("grapht: max depth must be at least 1")
	}

	g := digraph.New[Satisfaction, Desire]()
	root := g.AddNode(nil)

	return &Solver{
		bindingFunctions: bindingFunctions,
		maxDepth:         cfg.maxDepth,
		logger:           cfg.logger,
		registry:         cfg.registry,
		graph:            g,
		root:             root,
	}, nil
}

// QualifierRegistry returns the registry configured via
// WithQualifierRegistry, or nil.
func (s *Solver) QualifierRegistry() *QualifierRegistry { return s.registry }

// Graph returns the solver's shared output graph, accumulated across every
// call to Resolve.
func (s *Solver) Graph() *digraph.Graph[Satisfaction, Desire] { return s.graph }

// RootNode returns the shared graph's root, whose label is always nil.
func (s *Solver) RootNode() *digraph.Node[Satisfaction] { return s.root }

// Resolve updates the shared dependency graph to include desire: after it
// returns successfully, an edge from the root node to desire's resolved
// satisfaction exists in Graph().
func (s *Solver) Resolve(desire Desire) error {
	s.logger.LogEvent(&graphtevent.ResolveStarted{
		Desire: desire.String(),
		Caller: graphtreflect.Caller(),
	})

	tree := digraph.New[Satisfaction, DesireChain]()
	treeRoot := tree.AddNode(nil)

	if err := s.resolveFully(desire, treeRoot, tree, NewInjectionContext()); err != nil {
		s.logger.LogEvent(&graphtevent.ResolveFailed{Desire: desire.String(), Err: err})
		return err
	}

	s.merge(tree, treeRoot)

	satName := ""
	if sat, ok := treeSatisfactionOf(tree, treeRoot); ok {
		satName = sat.String()
	}
	s.logger.LogEvent(&graphtevent.ResolveSucceeded{Desire: desire.String(), Satisfaction: satName})
	return nil
}

func treeSatisfactionOf(tree *digraph.Graph[Satisfaction, DesireChain], root *digraph.Node[Satisfaction]) (Satisfaction, bool) {
	edges := tree.OutgoingEdges(root)
	if len(edges) == 0 {
		return nil, false
	}
	return edges[0].Tail.Label, true
}

// resolveFully is the recursive tree builder: it resolves desire to a
// satisfaction, adds a tree node and a parent edge for it, and recurses
// into that satisfaction's own dependencies.
//
// It also implements the skip-if-unusable retry: when the satisfaction
// chosen for desire is marked SkipIfUnusable and building its children
// fails with UnresolvableDependencyError, the subtree is discarded and the
// fixpoint search resumes on the same context - whose prior-desires list
// has already grown to exclude the failed satisfaction, so the next
// resolveOnce call naturally tries the next binding function.
func (s *Solver) resolveFully(desire Desire, parent *digraph.Node[Satisfaction], tree *digraph.Graph[Satisfaction, DesireChain], ctx *InjectionContext) error {
	if ctx.Depth() > s.maxDepth {
		return &CyclicDependencyError{Desire: desire, Depth: ctx.Depth()}
	}

	for {
		sat, chain, err := s.resolveOnce(desire, ctx)
		if err != nil {
			var unresolvable *UnresolvableDependencyError
			if stderrors.As(err, &unresolvable) && desire.InjectionPoint().Nullable() {
				sat = NullSatisfactionOf(desire.Type())
				chain = DesireChain{desire}
				s.logger.LogEvent(&graphtevent.NullSatisfactionUsed{Desire: desire.String()})
			} else {
				return err
			}
		}

		newNode := tree.AddNode(sat)
		tree.AddEdge(parent, newNode, chain)

		childErr := s.resolveChildren(sat, newNode, tree, ctx, desire)
		if childErr == nil {
			return nil
		}

		var unresolvable *UnresolvableDependencyError
		if sat.SkipIfUnusable() && stderrors.As(childErr, &unresolvable) {
			tree.RemoveNode(newNode)
			s.logger.LogEvent(&graphtevent.SatisfactionSkipped{Satisfaction: sat.String(), Reason: childErr})
			continue
		}
		return errors.Wrapf(childErr, "resolving dependencies of %s", sat.String())
	}
}

func (s *Solver) resolveChildren(sat Satisfaction, parent *digraph.Node[Satisfaction], tree *digraph.Graph[Satisfaction, DesireChain], ctx *InjectionContext, desire Desire) error {
	for _, dep := range sat.Dependencies() {
		childCtx := ctx.Push(sat, desire.InjectionPoint().Attributes())
		if err := s.resolveFully(dep, parent, tree, childCtx); err != nil {
			return err
		}
	}
	return nil
}

// resolveOnce is the fixpoint loop: it repeatedly applies binding
// functions to the current desire until a terminal, instantiable
// desire is reached, then returns its satisfaction and the chain of
// desires that led to it within this call.
func (s *Solver) resolveOnce(desire Desire, ctx *InjectionContext) (Satisfaction, DesireChain, error) {
	start := len(ctx.PriorDesires())
	current := desire

	for {
		var binding *BindingResult
		var won BindingFunction
		for _, bf := range s.bindingFunctions {
			r := bf.Bind(ctx, current)
			if r != nil && !ctx.HasVisited(r.Desire) {
				binding = r
				won = bf
				break
			}
		}

		terminate := true
		if binding != nil {
			if err := validateBindingTypes(current, binding.Desire); err != nil {
				return nil, nil, err
			}
			s.logger.LogEvent(&graphtevent.BindingApplied{
				From:       current.String(),
				To:         binding.Desire.String(),
				Terminates: binding.Terminates,
				Via:        graphtreflect.FuncName(won),
			})
			ctx.RecordDesire(current)
			current = binding.Desire
			terminate = binding.Terminates && !binding.Defer
		}

		if terminate && current.Instantiable() {
			ctx.RecordDesire(current)
			sat, _ := current.Satisfaction()
			chain := append(DesireChain{}, ctx.PriorDesires()[start:]...)
			return sat, chain, nil
		}
		if binding == nil {
			return nil, nil, &UnresolvableDependencyError{Desire: current, Context: ctx}
		}
	}
}

func validateBindingTypes(current, next Desire) error {
	if current.Type() == nil || next.Type() == nil {
		return nil
	}
	if next.Type() == current.Type() {
		return nil
	}
	if next.Type().AssignableTo(current.Type()) {
		return nil
	}
	return &InvalidBindingError{
		Desire:    current,
		Candidate: next,
		Reason:    "type " + next.Type().String() + " is not assignable to " + current.Type().String(),
	}
}
