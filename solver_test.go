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
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// The BindingFunction fixtures below duplicate a small slice of package
// bindfn's logic locally: solver_test.go lives in package grapht, and
// bindfn imports grapht, so importing bindfn here would be a cycle.
// Package bindfn's own tests exercise the real implementations directly.

func testInstance(typ reflect.Type, value reflect.Value) BindingFunction {
	return BindingFunctionFunc(func(ctx *InjectionContext, desire Desire) *BindingResult {
		if desire.Instantiable() || desire.Type() != typ || desire.Qualifier() != nil {
			return nil
		}
		return &BindingResult{Desire: desire.WithSatisfaction(NewInstanceSatisfaction(value)), Terminates: true}
	})
}

func testTypeToType(from, to reflect.Type) BindingFunction {
	return BindingFunctionFunc(func(ctx *InjectionContext, desire Desire) *BindingResult {
		if desire.Instantiable() || desire.Type() != from {
			return nil
		}
		point := NewInjectionPoint(desire.InjectionPoint().Kind(), to, desire.Qualifier(), desire.InjectionPoint().Nullable())
		return &BindingResult{Desire: NewDesire(to, desire.Qualifier(), point), Terminates: false}
	})
}

func testContextQualified(contextType reflect.Type, target BindingFunction) BindingFunction {
	return BindingFunctionFunc(func(ctx *InjectionContext, desire Desire) *BindingResult {
		for _, sat := range ctx.TypePath() {
			if sat != nil && sat.ErasedType() == contextType {
				return target.Bind(ctx, desire)
			}
		}
		return nil
	})
}

func testJustInTime(deps func(reflect.Type) []Desire) BindingFunction {
	return BindingFunctionFunc(func(ctx *InjectionContext, desire Desire) *BindingResult {
		typ := desire.Type()
		if desire.Instantiable() || typ == nil || typ.Kind() == reflect.Interface {
			return nil
		}
		var dependencies []Desire
		if deps != nil {
			dependencies = deps(typ)
		}
		sat := Skippable(NewClassSatisfaction(typ, typ.String(), dependencies...))
		return &BindingResult{Desire: desire.WithSatisfaction(sat), Terminates: true}
	})
}

func testChain(fns ...BindingFunction) BindingFunction {
	return BindingFunctionFunc(func(ctx *InjectionContext, desire Desire) *BindingResult {
		for _, fn := range fns {
			if r := fn.Bind(ctx, desire); r != nil && !ctx.HasVisited(r.Desire) {
				return r
			}
		}
		return nil
	})
}

type widget struct{}

type logger struct{}

type serviceA struct{}
type serviceB struct{}

type formatter interface{ Format() string }
type jsonFormatter struct{}

func (jsonFormatter) Format() string { return "json" }

type csvFormatter struct{}

func (csvFormatter) Format() string { return "csv" }

type reportA struct{}
type reportB struct{}

type cache interface{ Get(string) string }
type redisCache struct{}

func (redisCache) Get(string) string { return "" }

type memoryCache struct{}

func (memoryCache) Get(string) string { return "" }

type redisConn interface{ Ping() error }
type redisConnImpl struct{}

func (redisConnImpl) Ping() error { return nil }

type ping struct{}
type pong struct{}

func desireFor(typ reflect.Type) Desire {
	point := NewInjectionPoint(KindConstructorParameter, typ, nil, false)
	return NewDesire(typ, nil, point)
}

// singleDep builds a one-element dependency list for a manufactured
// satisfaction, an unqualified desire for target.
func singleDep(target reflect.Type) []Desire {
	return []Desire{desireFor(target)}
}

func TestResolveTrivialType(t *testing.T) {
	widgetType := reflect.TypeOf(widget{})
	bf := testJustInTime(nil)

	s, err := New([]BindingFunction{bf}, WithMaxDepth(10))
	require.NoError(t, err)

	require.NoError(t, s.Resolve(desireFor(widgetType)))

	edges := s.Graph().OutgoingEdges(s.RootNode())
	require.Len(t, edges, 1)
	assert.Equal(t, widgetType, edges[0].Tail.Label.ErasedType())
}

func TestResolveSharesCommonDependency(t *testing.T) {
	serviceAType := reflect.TypeOf(serviceA{})
	serviceBType := reflect.TypeOf(serviceB{})
	loggerType := reflect.TypeOf(logger{})

	deps := func(typ reflect.Type) []Desire {
		if typ == serviceAType || typ == serviceBType {
			return singleDep(loggerType)
		}
		return nil
	}

	s, err := New([]BindingFunction{testJustInTime(deps)}, WithMaxDepth(10))
	require.NoError(t, err)

	require.NoError(t, s.Resolve(desireFor(serviceAType)))
	require.NoError(t, s.Resolve(desireFor(serviceBType)))

	var loggerNodes int
	for _, n := range s.Graph().Nodes() {
		if n == s.RootNode() || n.Label == nil {
			continue
		}
		if n.Label.ErasedType() == loggerType {
			loggerNodes++
		}
	}
	assert.Equal(t, 1, loggerNodes, "the two services should share one Logger node")

	rootEdges := s.Graph().OutgoingEdges(s.RootNode())
	assert.Len(t, rootEdges, 2)
}

func TestResolveContextSensitiveBindingsDoNotShare(t *testing.T) {
	formatterType := reflect.TypeOf((*formatter)(nil)).Elem()
	jsonType := reflect.TypeOf(jsonFormatter{})
	csvType := reflect.TypeOf(csvFormatter{})
	reportAType := reflect.TypeOf(reportA{})
	reportBType := reflect.TypeOf(reportB{})

	deps := func(typ reflect.Type) []Desire {
		if typ == reportAType || typ == reportBType {
			return singleDep(formatterType)
		}
		return nil
	}

	bf := testChain(
		testContextQualified(reportAType, testTypeToType(formatterType, csvType)),
		testTypeToType(formatterType, jsonType),
		testJustInTime(deps),
	)

	s, err := New([]BindingFunction{bf}, WithMaxDepth(10))
	require.NoError(t, err)

	require.NoError(t, s.Resolve(desireFor(reportAType)))
	require.NoError(t, s.Resolve(desireFor(reportBType)))

	var sawCSV, sawJSON bool
	for _, n := range s.Graph().Nodes() {
		if n == s.RootNode() || n.Label == nil {
			continue
		}
		switch n.Label.ErasedType() {
		case csvType:
			sawCSV = true
		case jsonType:
			sawJSON = true
		}
	}
	assert.True(t, sawCSV, "report A should get the context-qualified CSV formatter")
	assert.True(t, sawJSON, "report B should fall through to the default JSON formatter")
}

func TestResolveSkippableDefaultSatisfiedWhenDependencyAvailable(t *testing.T) {
	cacheType := reflect.TypeOf((*cache)(nil)).Elem()
	redisType := reflect.TypeOf(redisCache{})
	memoryType := reflect.TypeOf(memoryCache{})
	connType := reflect.TypeOf((*redisConn)(nil)).Elem()

	deps := func(typ reflect.Type) []Desire {
		if typ == redisType {
			return singleDep(connType)
		}
		return nil
	}

	bf := testChain(
		testTypeToType(cacheType, redisType),
		testTypeToType(cacheType, memoryType),
		testInstance(connType, reflect.ValueOf(redisConnImpl{})),
		testJustInTime(deps),
	)

	s, err := New([]BindingFunction{bf}, WithMaxDepth(10))
	require.NoError(t, err)
	require.NoError(t, s.Resolve(desireFor(cacheType)))

	edges := s.Graph().OutgoingEdges(s.RootNode())
	require.Len(t, edges, 1)
	assert.Equal(t, redisType, edges[0].Tail.Label.ErasedType(), "redis should win when its connection resolves")
}

func TestResolveSkippableDefaultSkippedFallsBackToNextOption(t *testing.T) {
	cacheType := reflect.TypeOf((*cache)(nil)).Elem()
	redisType := reflect.TypeOf(redisCache{})
	memoryType := reflect.TypeOf(memoryCache{})
	connType := reflect.TypeOf((*redisConn)(nil)).Elem()

	deps := func(typ reflect.Type) []Desire {
		if typ == redisType {
			return singleDep(connType)
		}
		return nil
	}

	// No binding for redisConn: the preferred Redis-backed cache cannot be
	// instantiated, and must be discarded in favor of the in-memory cache.
	bf := testChain(
		testTypeToType(cacheType, redisType),
		testTypeToType(cacheType, memoryType),
		testJustInTime(deps),
	)

	s, err := New([]BindingFunction{bf}, WithMaxDepth(10))
	require.NoError(t, err)
	require.NoError(t, s.Resolve(desireFor(cacheType)))

	edges := s.Graph().OutgoingEdges(s.RootNode())
	require.Len(t, edges, 1)
	assert.Equal(t, memoryType, edges[0].Tail.Label.ErasedType(), "unusable redis default should be skipped for memory")
}

func TestResolveCyclicDependencyFails(t *testing.T) {
	pingType := reflect.TypeOf(ping{})
	pongType := reflect.TypeOf(pong{})

	deps := func(typ reflect.Type) []Desire {
		if typ == pingType {
			return singleDep(pongType)
		}
		if typ == pongType {
			return singleDep(pingType)
		}
		return nil
	}

	s, err := New([]BindingFunction{testJustInTime(deps)}, WithMaxDepth(4))
	require.NoError(t, err)

	err = s.Resolve(desireFor(pingType))
	require.Error(t, err)

	var cyclic *CyclicDependencyError
	assert.True(t, errors.As(err, &cyclic))
}

func TestResolveSkippableDefaultUnusableFailsWithoutFallback(t *testing.T) {
	cacheType := reflect.TypeOf((*cache)(nil)).Elem()
	redisType := reflect.TypeOf(redisCache{})
	connType := reflect.TypeOf((*redisConn)(nil)).Elem()

	deps := func(typ reflect.Type) []Desire {
		if typ == redisType {
			return singleDep(connType)
		}
		return nil
	}

	// Redis is the only option for cache and its connection is unbound:
	// the skipped default leaves nothing behind it in the chain.
	bf := testChain(
		testTypeToType(cacheType, redisType),
		testJustInTime(deps),
	)

	s, err := New([]BindingFunction{bf}, WithMaxDepth(10))
	require.NoError(t, err)

	err = s.Resolve(desireFor(cacheType))
	require.Error(t, err)

	var unresolvable *UnresolvableDependencyError
	assert.True(t, errors.As(err, &unresolvable))
}

func TestResolveRepeatedDesireIsIdempotent(t *testing.T) {
	serviceAType := reflect.TypeOf(serviceA{})
	loggerType := reflect.TypeOf(logger{})

	deps := func(typ reflect.Type) []Desire {
		if typ == serviceAType {
			return singleDep(loggerType)
		}
		return nil
	}

	s, err := New([]BindingFunction{testJustInTime(deps)}, WithMaxDepth(10))
	require.NoError(t, err)

	require.NoError(t, s.Resolve(desireFor(serviceAType)))
	nodes := len(s.Graph().Nodes())
	rootEdges := len(s.Graph().OutgoingEdges(s.RootNode()))

	require.NoError(t, s.Resolve(desireFor(serviceAType)))
	assert.Equal(t, nodes, len(s.Graph().Nodes()))
	assert.Equal(t, rootEdges, len(s.Graph().OutgoingEdges(s.RootNode())))
}

func TestResolveMaxDepthOneRejectsDeeperChain(t *testing.T) {
	serviceAType := reflect.TypeOf(serviceA{})
	loggerType := reflect.TypeOf(logger{})
	widgetType := reflect.TypeOf(widget{})

	deps := func(typ reflect.Type) []Desire {
		switch typ {
		case serviceAType:
			return singleDep(loggerType)
		case loggerType:
			return singleDep(widgetType)
		}
		return nil
	}

	s, err := New([]BindingFunction{testJustInTime(deps)}, WithMaxDepth(1))
	require.NoError(t, err)

	// One level of dependencies is fine at depth 1.
	require.NoError(t, s.Resolve(desireFor(loggerType)))

	// Two levels is not.
	err = s.Resolve(desireFor(serviceAType))
	require.Error(t, err)

	var cyclic *CyclicDependencyError
	assert.True(t, errors.As(err, &cyclic))
}

func TestResolveRejectsTypeIncompatibleBinding(t *testing.T) {
	widgetType := reflect.TypeOf(widget{})
	loggerType := reflect.TypeOf(logger{})

	// widget and logger are unrelated structs, so redirecting one to the
	// other is a structurally invalid binding.
	bf := testTypeToType(widgetType, loggerType)

	s, err := New([]BindingFunction{bf}, WithMaxDepth(10))
	require.NoError(t, err)

	err = s.Resolve(desireFor(widgetType))
	require.Error(t, err)

	var invalid *InvalidBindingError
	assert.True(t, errors.As(err, &invalid))
}

func TestResolveNullableInjectionPointFallsBackToNull(t *testing.T) {
	unknownType := reflect.TypeOf(struct{ X int }{})
	point := NewInjectionPoint(KindConstructorParameter, unknownType, nil, true)
	desire := NewDesire(unknownType, nil, point)

	// No binding function offers anything for unknownType: JustInTime skips
	// desires that are already instantiable but nothing binds a bare
	// unresolved struct here, so the chain must be empty deliberately.
	s, err := New([]BindingFunction{testChain()}, WithMaxDepth(10))
	require.NoError(t, err)

	require.NoError(t, s.Resolve(desire))

	edges := s.Graph().OutgoingEdges(s.RootNode())
	require.Len(t, edges, 1)
	assert.Equal(t, unknownType, edges[0].Tail.Label.ErasedType())
}
