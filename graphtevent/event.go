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

// Package graphtevent defines the events a grapht.Solver emits while
// resolving desires, and the Logger interface collaborators implement to
// observe them.
package graphtevent

// Event is emitted by a Solver during Resolve.
type Event interface {
	event() // only graphtevent may implement Event
}

func (*ResolveStarted) event()        {}
func (*ResolveSucceeded) event()      {}
func (*ResolveFailed) event()         {}
func (*BindingApplied) event()        {}
func (*NodeCreated) event()           {}
func (*NodeReused) event()            {}
func (*SatisfactionSkipped) event()   {}
func (*NullSatisfactionUsed) event()  {}

// ResolveStarted is emitted when Solver.Resolve is called for a root
// desire.
type ResolveStarted struct {
	Desire string
	Caller string
}

// ResolveSucceeded is emitted once a root desire has been fully merged
// into the shared output graph.
type ResolveSucceeded struct {
	Desire      string
	Satisfaction string
}

// ResolveFailed is emitted when Resolve returns an error.
type ResolveFailed struct {
	Desire string
	Err    error
}

// BindingApplied is emitted each time a binding function contributes a step
// in the fixpoint loop.
type BindingApplied struct {
	From       string
	To         string
	Terminates bool
	Via        string
}

// NodeCreated is emitted when the merger adds a brand-new node to the
// shared output graph for a (satisfaction, dependency-set) pair not seen
// before.
type NodeCreated struct {
	Satisfaction string
}

// NodeReused is emitted when the merger finds an existing output-graph node
// with the same (satisfaction, dependency-set) and reuses it instead of
// creating a new one.
type NodeReused struct {
	Satisfaction string
}

// SatisfactionSkipped is emitted when a skip-if-unusable satisfaction's
// subtree is abandoned because one of its dependencies could not be
// resolved.
type SatisfactionSkipped struct {
	Satisfaction string
	Reason       error
}

// NullSatisfactionUsed is emitted when a nullable injection point's
// dependency could not be resolved and a null satisfaction was substituted
// instead of failing.
type NullSatisfactionUsed struct {
	Desire string
}

// Logger observes Solver events. The zero value of NopLogger is a valid,
// silent Logger.
type Logger interface {
	LogEvent(Event)
}

// NopLogger discards every event. It is the default Logger for a Solver
// constructed without WithLogger.
type NopLogger struct{}

// LogEvent implements Logger.
func (NopLogger) LogEvent(Event) {}
