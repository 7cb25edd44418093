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

// Qualifier tags a Desire with extra meaning beyond its type, so that two
// requests for the same type can be told apart (e.g. "the primary database"
// vs. "the replica database"). Qualifiers may form a parent-child hierarchy:
// a qualifier can satisfy a request for any of its ancestors.
//
// A nil Qualifier means "no qualifier" (the default, unqualified request).
type Qualifier interface {
	// Name identifies the qualifier, e.g. an annotation name.
	Name() string

	// Parent returns the qualifier this one inherits from, or nil if it has
	// none.
	Parent() Qualifier

	// InheritsDefault reports whether this qualifier may satisfy a request
	// that carries no qualifier at all (an explicit nil desire qualifier).
	InheritsDefault() bool
}

// AsQualifier reports whether v implements Qualifier, mirroring Grapht's
// is_qualifier(t) predicate.
func AsQualifier(v any) (Qualifier, bool) {
	q, ok := v.(Qualifier)
	return q, ok
}

// Inherits reports whether a qualifier can satisfy a request qualified by b.
//
//   - a == b (including both nil) always inherits.
//   - a's declared parent, transitively, equals b.
//   - b is nil and a is marked InheritsDefault(): an explicit nil request
//     matches any default-inheriting qualifier.
func Inherits(a, b Qualifier) bool {
	return Distance(a, b) >= 0
}

// Distance returns the number of parent hops from a to b, or -1 if a does
// not inherit from b. Identity distance is 0. A default-inheriting
// qualifier has distance 1 to the nil qualifier. Nil-to-nil distance is 0.
func Distance(a, b Qualifier) int {
	if qualifierEqual(a, b) {
		return 0
	}
	if b == nil {
		if a != nil && a.InheritsDefault() {
			return 1
		}
		return -1
	}
	if a == nil {
		return -1
	}

	dist := 0
	cur := a
	for cur != nil {
		if qualifierEqual(cur, b) {
			return dist
		}
		cur = cur.Parent()
		dist++
	}
	return -1
}

func qualifierEqual(a, b Qualifier) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	type equaler interface{ Equal(Qualifier) bool }
	if e, ok := a.(equaler); ok {
		return e.Equal(b)
	}
	return a == b
}

// QualifierRegistry gives string-tagged qualifiers (rather than hand-rolled
// Qualifier implementations) a place to declare parent relationships and
// default-inheritance, for collaborators that model qualifiers as plain
// strings (e.g. annotation parameter names) instead of Go types.
type QualifierRegistry struct {
	parents  map[string]string
	defaults map[string]bool
}

// NewQualifierRegistry creates an empty registry.
func NewQualifierRegistry() *QualifierRegistry {
	return &QualifierRegistry{
		parents:  make(map[string]string),
		defaults: make(map[string]bool),
	}
}

// Declare registers name's parent (empty string for none) and whether it
// inherits the default (unqualified) binding.
func (r *QualifierRegistry) Declare(name, parent string, inheritsDefault bool) {
	if parent != "" {
		r.parents[name] = parent
	}
	r.defaults[name] = inheritsDefault
}

// Qualifier returns a Qualifier backed by this registry for the given name.
// An empty name returns nil (the unqualified qualifier).
func (r *QualifierRegistry) Qualifier(name string) Qualifier {
	if name == "" {
		return nil
	}
	return &namedQualifier{registry: r, name: name}
}

type namedQualifier struct {
	registry *QualifierRegistry
	name     string
}

func (q *namedQualifier) Name() string { return q.name }

func (q *namedQualifier) Parent() Qualifier {
	parent, ok := q.registry.parents[q.name]
	if !ok {
		return nil
	}
	return q.registry.Qualifier(parent)
}

func (q *namedQualifier) InheritsDefault() bool {
	return q.registry.defaults[q.name]
}

func (q *namedQualifier) Equal(other Qualifier) bool {
	o, ok := other.(*namedQualifier)
	return ok && o.registry == q.registry && o.name == q.name
}
