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

// Package graphtreflect supplies the reflection helpers the logging layer
// needs to print human-readable names: the solver attributes a graphtevent
// BindingApplied event to the BindingFunction that produced it via
// FuncName, and a ResolveStarted event to the call site that entered the
// solver via Caller. It deliberately stops short of extracting injection
// points from types - that reflective walk belongs to the injector built
// on top of the solver, not the solver itself.
package graphtreflect

import (
	"reflect"
	"runtime"
	"strings"
)

// modulePath identifies this module's own frames in a stack walk. Frames
// from test files are attributed to the user even when they live under
// this path, so log output in the solver's own test suite still names the
// test that triggered the resolve.
const modulePath = "github.com/henfee/grapht"

// callerProbeDepth bounds the stack walk in Caller. Resolve sits at most a
// couple of frames below the user's call, so a short probe is enough.
const callerProbeDepth = 10

// Caller names the function that called into the solver: the first frame
// above this one that is not part of the solver's production code.
// Returns "unknown" when every probed frame is internal (e.g. when the
// stack is too deep to probe or the runtime withholds frame data).
func Caller() string {
	// runtime.Caller(0) is this function, so the probe starts one frame up.
	for depth := 1; depth < callerProbeDepth; depth++ {
		pc, file, _, ok := runtime.Caller(depth)
		if !ok {
			break
		}
		if internalFrame(file) {
			continue
		}
		if fn := runtime.FuncForPC(pc); fn != nil {
			return fn.Name()
		}
	}
	return "unknown"
}

// FuncName renders fn's fully qualified name, e.g.
// "github.com/user/app.NewThing". Method values carry a "-fm" suffix in
// the runtime's naming scheme, which is stripped. Non-function values
// render as "unknown".
func FuncName(fn interface{}) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return "unknown"
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return "unknown"
	}
	return strings.TrimSuffix(rf.Name(), "-fm")
}

// internalFrame reports whether file belongs to the solver's production
// code. Test files count as user code so that Caller works inside this
// module's own tests.
func internalFrame(file string) bool {
	return strings.Contains(file, modulePath) && !strings.HasSuffix(file, "_test.go")
}
