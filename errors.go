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
	"strconv"
	"strings"
)

// UnresolvableDependencyError is returned when no binding function can
// produce a terminal, instantiable desire for a given request.
type UnresolvableDependencyError struct {
	Desire  Desire
	Context *InjectionContext
}

func (e *UnresolvableDependencyError) Error() string {
	var sb strings.Builder
	sb.WriteString("grapht: unresolvable dependency ")
	sb.WriteString(e.Desire.String())
	sb.WriteString("\n")
	sb.WriteString(formatContext(e.Context))
	return sb.String()
}

// CyclicDependencyError is returned when the resolution path exceeded the
// solver's configured max depth.
type CyclicDependencyError struct {
	Desire Desire
	Depth  int
}

func (e *CyclicDependencyError) Error() string {
	return "grapht: context depth " + strconv.Itoa(e.Depth) +
		" exceeds the maximum while resolving " + e.Desire.String()
}

// InvalidBindingError is returned when a binding function returns a
// structurally invalid result, e.g. a next-desire whose type is
// incompatible with the current desire's type.
type InvalidBindingError struct {
	Desire    Desire
	Candidate Desire
	Reason    string
}

func (e *InvalidBindingError) Error() string {
	return "grapht: invalid binding for " + e.Desire.String() +
		" -> " + e.Candidate.String() + ": " + e.Reason
}

// MultipleBindingsError is returned when a binding function that offers
// multiple candidates cannot disambiguate between them. None of the
// binding functions shipped in package bindfn raise it; it exists for
// richer, multi-candidate binding functions to use.
type MultipleBindingsError struct {
	Desire     Desire
	Candidates []Desire
}

func (e *MultipleBindingsError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = c.String()
	}
	return "grapht: multiple bindings for " + e.Desire.String() +
		": " + strings.Join(names, ", ")
}

// formatContext renders a context's type path and prior desires for
// user-visible failure messages.
func formatContext(ctx *InjectionContext) string {
	var sb strings.Builder
	sb.WriteString("  type path:\n")
	for _, sat := range ctx.TypePath() {
		sb.WriteString("    ")
		if sat == nil {
			sb.WriteString("<root>")
		} else {
			sb.WriteString(sat.String())
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  prior desires:\n")
	for _, d := range ctx.PriorDesires() {
		sb.WriteString("    ")
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
