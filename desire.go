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

import "reflect"

// Desire is a typed, possibly-qualified request for a value to be injected
// at a specific InjectionPoint. Desires are immutable; a BindingFunction
// never mutates one, it returns a new Desire (possibly the same one, to
// signal "terminate without changing the desire").
type Desire struct {
	desiredType reflect.Type
	qualifier   Qualifier
	point       InjectionPoint
	sat         Satisfaction // nil until a satisfaction has been chosen
}

// NewDesire creates an unresolved Desire for typ at point, qualified by q.
func NewDesire(typ reflect.Type, q Qualifier, point InjectionPoint) Desire {
	return Desire{desiredType: typ, qualifier: q, point: point}
}

// Type is the erased desired type.
func (d Desire) Type() reflect.Type { return d.desiredType }

// Qualifier is the qualifier attached to this desire, or nil.
func (d Desire) Qualifier() Qualifier { return d.qualifier }

// InjectionPoint is the place this value must be supplied to.
func (d Desire) InjectionPoint() InjectionPoint { return d.point }

// Instantiable reports whether a concrete Satisfaction has already been
// chosen for this desire (true once a binding function has resolved it
// to a terminal desire).
func (d Desire) Instantiable() bool { return d.sat != nil }

// Satisfaction returns the chosen satisfaction and true, or (nil, false) if
// this desire is not yet instantiable.
func (d Desire) Satisfaction() (Satisfaction, bool) {
	if d.sat == nil {
		return nil, false
	}
	return d.sat, true
}

// WithSatisfaction returns a copy of d resolved to the given satisfaction,
// making it instantiable. Used by BindingFunctions to produce a terminal
// next-desire.
func (d Desire) WithSatisfaction(sat Satisfaction) Desire {
	d.sat = sat
	return d
}

// Equal reports whether two desires represent the same request: same
// type, qualifier, and injection point. This is what prior-desires
// containment checks and root-edge "equivalent desire" deduplication
// use. A chosen Satisfaction is not part of the identity of
// a Desire for this purpose - two desires requesting the same thing are
// the same desire whether or not one has been resolved yet.
func (d Desire) Equal(o Desire) bool {
	return d.desiredType == o.desiredType &&
		qualifierEqual(d.qualifier, o.qualifier) &&
		d.point.Equal(o.point)
}

// String renders the desire as "[qualifier:]type", the format used in
// user-visible failure messages.
func (d Desire) String() string {
	name := "<nil>"
	if d.desiredType != nil {
		name = d.desiredType.String()
	}
	if d.qualifier != nil {
		return d.qualifier.Name() + ":" + name
	}
	return name
}

// DesireChain is the ordered list of desires followed to reach a
// satisfaction within one fixpoint loop; it labels the edges of the
// per-resolve tree. Only the first desire survives the merge into the
// output graph.
type DesireChain []Desire

// First returns the first desire in the chain, the one preserved across
// the tree-to-output-graph merge.
func (c DesireChain) First() Desire {
	return c[0]
}

// Equal compares chains by their first desire, the only part of a chain
// that is semantically visible once it crosses into the output graph.
func (c DesireChain) Equal(o DesireChain) bool {
	if len(c) == 0 || len(o) == 0 {
		return len(c) == len(o)
	}
	return c.First().Equal(o.First())
}

// Contains reports whether d appears anywhere in the chain.
func (c DesireChain) Contains(d Desire) bool {
	for _, e := range c {
		if e.Equal(d) {
			return true
		}
	}
	return false
}
