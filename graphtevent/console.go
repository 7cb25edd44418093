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

package graphtevent

import (
	"fmt"
	"io"
)

// ConsoleLogger is a Logger that writes one plain-text line per event to
// an io.Writer, for hosts without a structured logging setup.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(format string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Grapht] "+format+"\n", args...)
}

// LogEvent writes the given event to the wrapped writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *ResolveStarted:
		l.logf("RESOLVE %s (from %s)", e.Desire, e.Caller)
	case *ResolveSucceeded:
		l.logf("RESOLVED %s => %s", e.Desire, e.Satisfaction)
	case *ResolveFailed:
		l.logf("RESOLVE FAILED %s: %v", e.Desire, e.Err)
	case *BindingApplied:
		l.logf("BIND %s -> %s via %s (terminates=%v)", e.From, e.To, e.Via, e.Terminates)
	case *NodeCreated:
		l.logf("NODE CREATED %s", e.Satisfaction)
	case *NodeReused:
		l.logf("NODE REUSED %s", e.Satisfaction)
	case *SatisfactionSkipped:
		l.logf("SKIPPED %s: %v", e.Satisfaction, e.Reason)
	case *NullSatisfactionUsed:
		l.logf("NULL SATISFACTION %s", e.Desire)
	}
}
