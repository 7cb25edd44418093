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
	"reflect"
)

// Satisfaction is a chosen way to produce a value for a Desire: a
// constructor call, a pre-made instance, a factory, or a legal absence.
// It is a tagged-variant interface implemented by classSatisfaction,
// instanceSatisfaction, providerSatisfaction, and nullSatisfaction below.
type Satisfaction interface {
	// ErasedType is the concrete type this satisfaction produces.
	ErasedType() reflect.Type

	// Dependencies lists the desires this satisfaction itself induces -
	// the values it needs in order to be instantiated.
	Dependencies() []Desire

	// Instantiable reports whether this satisfaction can be used directly
	// (vs. needing further binding). All four built-in variants are
	// instantiable by construction; the flag exists for SPI-provided
	// variants that might not be.
	Instantiable() bool

	// SkipIfUnusable marks a "default" satisfaction that should be
	// silently discarded, rather than reported as an error, when its own
	// dependencies cannot be resolved.
	SkipIfUnusable() bool

	// Equal reports structural equality: two satisfactions are equal iff
	// they would instantiate identically given identical dependencies.
	Equal(Satisfaction) bool

	// String renders a short human-readable description, used in log
	// messages and error text.
	String() string
}

type baseSatisfaction struct {
	typ      reflect.Type
	deps     []Desire
	skippable bool
}

func (b baseSatisfaction) ErasedType() reflect.Type   { return b.typ }
func (b baseSatisfaction) Dependencies() []Desire     { return b.deps }
func (b baseSatisfaction) Instantiable() bool         { return true }
func (b baseSatisfaction) SkipIfUnusable() bool       { return b.skippable }

// classSatisfaction produces a value by calling a registered constructor
// once its dependencies are supplied (the external reflective instantiator
// is the collaborator that actually performs the call; this core only
// records the shape).
type classSatisfaction struct {
	baseSatisfaction
	ctorName string
}

// NewClassSatisfaction describes producing typ via its constructor, which
// requires the given dependency desires. ctorName is a human-readable
// label for logging/error text (e.g. the constructor's function name).
func NewClassSatisfaction(typ reflect.Type, ctorName string, deps ...Desire) Satisfaction {
	return &classSatisfaction{
		baseSatisfaction: baseSatisfaction{typ: typ, deps: deps},
		ctorName:         ctorName,
	}
}

func (s *classSatisfaction) Equal(o Satisfaction) bool {
	other, ok := o.(*classSatisfaction)
	return ok && other.typ == s.typ && other.ctorName == s.ctorName
}

func (s *classSatisfaction) String() string {
	return "class(" + s.typ.String() + " via " + s.ctorName + ")"
}

// instanceSatisfaction wraps a single pre-made value; it has no
// dependencies of its own.
type instanceSatisfaction struct {
	baseSatisfaction
	value reflect.Value
}

// NewInstanceSatisfaction describes a pre-made instance.
func NewInstanceSatisfaction(value reflect.Value) Satisfaction {
	return &instanceSatisfaction{
		baseSatisfaction: baseSatisfaction{typ: value.Type()},
		value:            value,
	}
}

func (s *instanceSatisfaction) Equal(o Satisfaction) bool {
	other, ok := o.(*instanceSatisfaction)
	if !ok || other.typ != s.typ {
		return false
	}
	if s.value.CanInterface() && other.value.CanInterface() {
		return s.value.Interface() == other.value.Interface()
	}
	return s.value == other.value
}

func (s *instanceSatisfaction) String() string {
	return "instance(" + s.typ.String() + ")"
}

// providerSatisfaction delegates production to a factory function, itself
// subject to the same dependency list as a class satisfaction.
type providerSatisfaction struct {
	baseSatisfaction
	providerName string
}

// NewProviderSatisfaction describes producing typ by delegating to a
// named factory, which requires the given dependency desires.
func NewProviderSatisfaction(typ reflect.Type, providerName string, deps ...Desire) Satisfaction {
	return &providerSatisfaction{
		baseSatisfaction: baseSatisfaction{typ: typ, deps: deps},
		providerName:     providerName,
	}
}

func (s *providerSatisfaction) Equal(o Satisfaction) bool {
	other, ok := o.(*providerSatisfaction)
	return ok && other.typ == s.typ && other.providerName == s.providerName
}

func (s *providerSatisfaction) String() string {
	return "provider(" + s.typ.String() + " via " + s.providerName + ")"
}

// nullSatisfaction represents a legal absence of a value, used when an
// optional injection point's dependency cannot be, or need not be,
// supplied.
type nullSatisfaction struct {
	baseSatisfaction
}

// NullSatisfactionOf describes the legal absence of a value of typ.
func NullSatisfactionOf(typ reflect.Type) Satisfaction {
	return &nullSatisfaction{baseSatisfaction{typ: typ}}
}

func (s *nullSatisfaction) Equal(o Satisfaction) bool {
	other, ok := o.(*nullSatisfaction)
	return ok && other.typ == s.typ
}

func (s *nullSatisfaction) String() string {
	name := "<nil>"
	if s.typ != nil {
		name = s.typ.String()
	}
	return "null(" + name + ")"
}

// Skippable wraps sat so that SkipIfUnusable reports true, marking it as a
// default binding the solver should discard (rather than fail on) when its
// own dependencies cannot be met.
func Skippable(sat Satisfaction) Satisfaction {
	return &skippableSatisfaction{Satisfaction: sat}
}

type skippableSatisfaction struct {
	Satisfaction
}

func (s *skippableSatisfaction) SkipIfUnusable() bool { return true }

func (s *skippableSatisfaction) Equal(o Satisfaction) bool {
	other, ok := o.(*skippableSatisfaction)
	if !ok {
		return false
	}
	return s.Satisfaction.Equal(other.Satisfaction)
}
