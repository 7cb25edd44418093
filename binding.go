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

// BindingResult is the protocol by which a BindingFunction maps a desire to
// another desire - possibly the same one, possibly a terminal one.
type BindingResult struct {
	// Desire is the next desire to resolve. It may equal the input desire,
	// which is useful to set Terminates without changing the desire.
	Desire Desire

	// Terminates ends the fixpoint loop once Desire is instantiable, and
	// the solver uses Desire's satisfaction. If Desire is not instantiable,
	// Terminates does not end the loop: the solver keeps applying binding
	// functions to Desire, and fails once none of them offers a result.
	Terminates bool

	// Defer means "revisit me after the rest of the tree is built". The
	// solver has no deferred-binding pass; Defer is interpreted as
	// equivalent to Terminates == false.
	Defer bool
}

// BindingFunction is a pluggable policy mapping a desire, within a
// context, to another desire, or declining to have an opinion.
//
// Implementations must be pure with respect to the solver: no side
// effects, and they may consult the context (e.g. the type path) for
// context-sensitive rules, but never solver-internal state.
//
// Bind must not return a result whose Desire has already been visited in
// ctx's prior-desires list; the solver treats such a result as if it were
// nil and moves on to the next function in the chain.
type BindingFunction interface {
	Bind(ctx *InjectionContext, desire Desire) *BindingResult
}

// BindingFunctionFunc adapts a plain function to BindingFunction.
type BindingFunctionFunc func(ctx *InjectionContext, desire Desire) *BindingResult

// Bind calls f.
func (f BindingFunctionFunc) Bind(ctx *InjectionContext, desire Desire) *BindingResult {
	return f(ctx, desire)
}
