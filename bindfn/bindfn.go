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

// Package bindfn provides ready-made grapht.BindingFunction implementations
// covering the common cases: binding a type to a pre-made instance, binding
// an interface to an implementation type, restricting a binding to a
// context, and manufacturing a best-guess satisfaction for a concrete type
// nothing else claimed.
package bindfn

import (
	"reflect"

	"github.com/henfee/grapht"
)

// Instance returns a BindingFunction that terminally satisfies any
// unqualified desire for typ with the given pre-made value.
func Instance(typ reflect.Type, value reflect.Value) grapht.BindingFunction {
	return grapht.BindingFunctionFunc(func(ctx *grapht.InjectionContext, desire grapht.Desire) *grapht.BindingResult {
		if desire.Instantiable() || desire.Type() != typ || desire.Qualifier() != nil {
			return nil
		}
		return &grapht.BindingResult{
			Desire:     desire.WithSatisfaction(grapht.NewInstanceSatisfaction(value)),
			Terminates: true,
		}
	})
}

// TypeToType returns a BindingFunction that redirects any unresolved desire
// for from (typically an interface), qualified or not, to a fresh desire
// for to (typically its implementation), carrying over the desire's
// qualifier and the injection point's kind and nullability.
// It never terminates the fixpoint loop on its own: the redirected desire
// still needs a satisfaction from a later binding function, such as
// JustInTime.
func TypeToType(from, to reflect.Type) grapht.BindingFunction {
	return grapht.BindingFunctionFunc(func(ctx *grapht.InjectionContext, desire grapht.Desire) *grapht.BindingResult {
		if desire.Instantiable() || desire.Type() != from {
			return nil
		}
		point := grapht.NewInjectionPoint(desire.InjectionPoint().Kind(), to, desire.Qualifier(), desire.InjectionPoint().Nullable())
		return &grapht.BindingResult{
			Desire:     grapht.NewDesire(to, desire.Qualifier(), point),
			Terminates: false,
		}
	})
}

// ContextQualified wraps target so that it only applies while the current
// context's type path includes a satisfaction whose erased type is
// contextType, modelling a binding that only holds "inside" a particular
// dependent (e.g. a CSV formatter bound only inside a report generator,
// while every other consumer of Formatter gets the default).
func ContextQualified(contextType reflect.Type, target grapht.BindingFunction) grapht.BindingFunction {
	return grapht.BindingFunctionFunc(func(ctx *grapht.InjectionContext, desire grapht.Desire) *grapht.BindingResult {
		for _, sat := range ctx.TypePath() {
			if sat != nil && sat.ErasedType() == contextType {
				return target.Bind(ctx, desire)
			}
		}
		return nil
	})
}

// DependencyLookup returns the dependency desires a concrete type's
// constructor needs, used by JustInTime to describe a manufactured
// satisfaction's own dependencies.
type DependencyLookup func(typ reflect.Type) []grapht.Desire

// JustInTime returns a fallback BindingFunction that manufactures a class
// satisfaction for any concrete, not-yet-instantiable desire nothing
// earlier in the chain claimed. The manufactured satisfaction is marked
// skippable: a type nobody explicitly bound is a best guess, and the
// solver may discard it rather than fail if it turns out unusable.
func JustInTime(deps DependencyLookup) grapht.BindingFunction {
	return grapht.BindingFunctionFunc(func(ctx *grapht.InjectionContext, desire grapht.Desire) *grapht.BindingResult {
		typ := desire.Type()
		if desire.Instantiable() || typ == nil || typ.Kind() == reflect.Interface {
			return nil
		}
		var dependencies []grapht.Desire
		if deps != nil {
			dependencies = deps(typ)
		}
		sat := grapht.Skippable(grapht.NewClassSatisfaction(typ, typ.String(), dependencies...))
		return &grapht.BindingResult{
			Desire:     desire.WithSatisfaction(sat),
			Terminates: true,
		}
	})
}

// Chain combines fns into a single BindingFunction that tries each in order
// and returns the first non-nil result whose desire ctx has not already
// visited, the same first-wins protocol the solver itself applies across a
// whole binding-function list.
func Chain(fns ...grapht.BindingFunction) grapht.BindingFunction {
	return grapht.BindingFunctionFunc(func(ctx *grapht.InjectionContext, desire grapht.Desire) *grapht.BindingResult {
		for _, fn := range fns {
			if r := fn.Bind(ctx, desire); r != nil && !ctx.HasVisited(r.Desire) {
				return r
			}
		}
		return nil
	})
}
