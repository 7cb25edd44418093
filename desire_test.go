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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesireEqualIgnoresSatisfaction(t *testing.T) {
	typ := reflect.TypeOf(42)
	point := NewInjectionPoint(KindConstructorParameter, typ, nil, false)
	a := NewDesire(typ, nil, point)
	b := a.WithSatisfaction(NewClassSatisfaction(typ, "newInt"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Instantiable())
	assert.True(t, b.Instantiable())
}

func TestDesireEqualDistinguishesQualifier(t *testing.T) {
	typ := reflect.TypeOf(42)
	reg := NewQualifierRegistry()
	point := NewInjectionPoint(KindConstructorParameter, typ, nil, false)

	unqualified := NewDesire(typ, nil, point)
	qualified := NewDesire(typ, reg.Qualifier("x"), point)

	assert.False(t, unqualified.Equal(qualified))
}

func TestDesireChainFirstAndContains(t *testing.T) {
	typ := reflect.TypeOf(42)
	point := NewInjectionPoint(KindConstructorParameter, typ, nil, false)
	d1 := NewDesire(typ, nil, point)
	d2 := d1.WithSatisfaction(NewClassSatisfaction(typ, "newInt"))

	chain := DesireChain{d1, d2}
	assert.True(t, chain.First().Equal(d1))
	assert.True(t, chain.Contains(d2))
}

func TestDesireString(t *testing.T) {
	typ := reflect.TypeOf(42)
	reg := NewQualifierRegistry()
	point := NewInjectionPoint(KindConstructorParameter, typ, reg.Qualifier("secondary"), false)
	d := NewDesire(typ, reg.Qualifier("secondary"), point)

	assert.Equal(t, "secondary:int", d.String())
}
