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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLoggerFormatsEvents(t *testing.T) {
	var buf bytes.Buffer
	l := &ConsoleLogger{W: &buf}

	l.LogEvent(&ResolveStarted{Desire: "Thing"})
	l.LogEvent(&ResolveSucceeded{Desire: "Thing", Satisfaction: "class(Thing)"})
	l.LogEvent(&ResolveFailed{Desire: "Thing", Err: errors.New("boom")})
	l.LogEvent(&SatisfactionSkipped{Satisfaction: "class(Default)", Reason: errors.New("no dep")})

	out := buf.String()
	assert.Contains(t, out, "RESOLVE Thing")
	assert.Contains(t, out, "RESOLVED Thing => class(Thing)")
	assert.Contains(t, out, "RESOLVE FAILED Thing: boom")
	assert.Contains(t, out, "SKIPPED class(Default): no dep")
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	var l NopLogger
	assert.NotPanics(t, func() {
		l.LogEvent(&ResolveStarted{Desire: "X"})
	})
}
