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

import "github.com/henfee/grapht/graphtevent"

// Option configures a Solver at construction time.
type Option interface {
	apply(*solverConfig)
}

type solverConfig struct {
	maxDepth int
	logger   graphtevent.Logger
	registry *QualifierRegistry
}

type optionFunc func(*solverConfig)

func (f optionFunc) apply(c *solverConfig) { f(c) }

// WithMaxDepth sets the maximum context-path length the solver will follow
// along any resolution branch before declaring a CyclicDependencyError.
// Required; New rejects values less than 1.
func WithMaxDepth(depth int) Option {
	return optionFunc(func(c *solverConfig) { c.maxDepth = depth })
}

// WithLogger attaches a graphtevent.Logger to observe resolution events.
// Defaults to graphtevent.NopLogger.
func WithLogger(logger graphtevent.Logger) Option {
	return optionFunc(func(c *solverConfig) { c.logger = logger })
}

// WithQualifierRegistry attaches a QualifierRegistry. The solver itself
// never consults it; it is handed back by Solver.QualifierRegistry for
// collaborators that model qualifiers as plain string tags rather than
// hand-rolled Qualifier implementations.
func WithQualifierRegistry(reg *QualifierRegistry) Option {
	return optionFunc(func(c *solverConfig) { c.registry = reg })
}
