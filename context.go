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

// contextFrame pairs a satisfaction with the attributes the injection
// point that led to it carried, mirroring one level of InjectionContext's
// stack.
type contextFrame struct {
	satisfaction Satisfaction
	attributes   map[string]string
}

// InjectionContext is the stack of (satisfaction, attributes) frames from
// root to the current parent, plus the chain of desires already visited
// while resolving the current injection point (the "prior desires").
//
// Push is the only way to descend a level; it returns a new context with
// one more frame and a freshly reset prior-desires list. RecordDesire
// mutates the prior-desires list of the current frame in place - that list
// is scoped to one resolution branch and is never shared across a Push
// boundary, so the mutation cannot leak into a sibling or parent context.
type InjectionContext struct {
	frames []contextFrame
	prior  DesireChain
}

// NewInjectionContext returns the empty root context: no frames, no prior
// desires.
func NewInjectionContext() *InjectionContext {
	return &InjectionContext{}
}

// Push returns a new context with one more frame appended - the
// satisfaction that is becoming the current parent, plus the attributes of
// the injection point that led to it - and an empty prior-desires list.
func (c *InjectionContext) Push(sat Satisfaction, attrs map[string]string) *InjectionContext {
	frames := make([]contextFrame, len(c.frames), len(c.frames)+1)
	copy(frames, c.frames)
	frames = append(frames, contextFrame{satisfaction: sat, attributes: attrs})
	return &InjectionContext{frames: frames}
}

// RecordDesire appends d to the prior-desires list of this context.
func (c *InjectionContext) RecordDesire(d Desire) {
	c.prior = append(c.prior, d)
}

// PriorDesires returns the desires already traversed in the current
// resolver fixpoint branch, used to prevent infinite loops.
func (c *InjectionContext) PriorDesires() DesireChain {
	return c.prior
}

// HasVisited reports whether d is already in the prior-desires list.
func (c *InjectionContext) HasVisited(d Desire) bool {
	return c.prior.Contains(d)
}

// TypePath is the sequence of satisfactions from root to current parent -
// used for the max-depth cycle proxy and for error message formatting.
func (c *InjectionContext) TypePath() []Satisfaction {
	path := make([]Satisfaction, len(c.frames))
	for i, f := range c.frames {
		path[i] = f.satisfaction
	}
	return path
}

// Depth is len(TypePath()), the number of frames pushed so far.
func (c *InjectionContext) Depth() int {
	return len(c.frames)
}

// CurrentAttributes returns the attributes of the most recently pushed
// frame, or nil at the root context.
func (c *InjectionContext) CurrentAttributes() map[string]string {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[len(c.frames)-1].attributes
}
