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

// PointKind names the four places a value can be injected: a field, a
// constructor parameter, a setter parameter, or no argument at all.
type PointKind int

const (
	// KindConstructorParameter marks a value supplied as a constructor
	// argument.
	KindConstructorParameter PointKind = iota
	// KindSetterParameter marks a value supplied through a setter method.
	KindSetterParameter
	// KindField marks a value supplied by direct field assignment.
	KindField
	// KindNoArgument marks a point with no carried value (e.g. a
	// zero-dependency constructor's implicit "no injection point").
	KindNoArgument
)

// InjectionPoint is an immutable description of a location a value must be
// supplied to: its type, qualifier, nullability, and any attributes
// attached by the context (used by context-sensitive binding functions).
type InjectionPoint struct {
	kind       PointKind
	typ        reflect.Type
	qualifier  Qualifier
	nullable   bool
	attributes map[string]string
}

// NewInjectionPoint builds an InjectionPoint of the given kind.
func NewInjectionPoint(kind PointKind, typ reflect.Type, qualifier Qualifier, nullable bool) InjectionPoint {
	return InjectionPoint{kind: kind, typ: typ, qualifier: qualifier, nullable: nullable}
}

// WithAttributes returns a copy of the InjectionPoint carrying the given
// attribute bag, consulted by context-sensitive binding functions.
func (p InjectionPoint) WithAttributes(attrs map[string]string) InjectionPoint {
	p.attributes = attrs
	return p
}

// Kind reports which of the four injection-point variants this is.
func (p InjectionPoint) Kind() PointKind { return p.kind }

// Type is the erased type requested at this point.
func (p InjectionPoint) Type() reflect.Type { return p.typ }

// Qualifier is the qualifier attached to this point, or nil.
func (p InjectionPoint) Qualifier() Qualifier { return p.qualifier }

// Nullable reports whether an absent (null) satisfaction is a legal answer.
func (p InjectionPoint) Nullable() bool { return p.nullable }

// Attributes returns the context attributes carried by this point.
func (p InjectionPoint) Attributes() map[string]string { return p.attributes }

// Equal reports structural equality, used by Desire equality and by the
// output graph's "equivalent desire" check on root edges.
func (p InjectionPoint) Equal(o InjectionPoint) bool {
	if p.kind != o.kind || p.typ != o.typ || p.nullable != o.nullable {
		return false
	}
	return qualifierEqual(p.qualifier, o.qualifier)
}
