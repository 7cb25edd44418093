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

package bindfn

import (
	"fmt"
	"reflect"

	"github.com/henfee/grapht"
	"go.uber.org/multierr"
)

// Registry accumulates instance and type-to-type bindings, validating that
// no type is bound more than once before producing a single combined
// BindingFunction. A second registration for a type already bound is an
// error rather than a silent shadow.
type Registry struct {
	instances  map[reflect.Type]reflect.Value
	typeToType map[reflect.Type]reflect.Type
	order      []reflect.Type
	errs       error
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		instances:  make(map[reflect.Type]reflect.Value),
		typeToType: make(map[reflect.Type]reflect.Type),
	}
}

func (r *Registry) taken(typ reflect.Type) bool {
	if _, ok := r.instances[typ]; ok {
		return true
	}
	_, ok := r.typeToType[typ]
	return ok
}

// BindInstance registers value as the satisfaction for unqualified desires
// of typ. Returns r for chaining.
func (r *Registry) BindInstance(typ reflect.Type, value reflect.Value) *Registry {
	if r.taken(typ) {
		r.errs = multierr.Append(r.errs, fmt.Errorf("bindfn: %s is already bound", typ))
		return r
	}
	r.instances[typ] = value
	r.order = append(r.order, typ)
	return r
}

// BindType registers to as the implementation redirected to for unresolved
// desires of from, qualified or not (see TypeToType). Returns r for
// chaining.
func (r *Registry) BindType(from, to reflect.Type) *Registry {
	if r.taken(from) {
		r.errs = multierr.Append(r.errs, fmt.Errorf("bindfn: %s is already bound", from))
		return r
	}
	r.typeToType[from] = to
	r.order = append(r.order, from)
	return r
}

// Build validates the accumulated bindings and, if none conflicted, returns
// a single BindingFunction trying each registered binding in registration
// order. If any Bind call above found a conflict, Build returns the
// aggregated multierr instead.
func (r *Registry) Build() (grapht.BindingFunction, error) {
	if r.errs != nil {
		return nil, r.errs
	}
	fns := make([]grapht.BindingFunction, 0, len(r.order))
	for _, typ := range r.order {
		if value, ok := r.instances[typ]; ok {
			fns = append(fns, Instance(typ, value))
			continue
		}
		fns = append(fns, TypeToType(typ, r.typeToType[typ]))
	}
	return Chain(fns...), nil
}
