/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package resolver_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/resolver"
)

type base struct {
	ID      int
	Created time.Time
}

type middle struct {
	base
	Name string
	ID   string
}

type leaf struct {
	*middle
	time.Time
	Score float64
	_     int
	Skip  string `fixture:"-"`
	note  string
}

type loop struct {
	*loop
	V int
}

func names(attrs []apis.Attribute) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a.String())
	}
	return out
}

func TestOwn(t *testing.T) {
	own := resolver.Own(reflect.TypeFor[leaf]())

	assert.Equal(t, []string{"resolver_test.leaf.Time", "resolver_test.leaf.Score", "resolver_test.leaf.note"}, names(own))
	for _, a := range own {
		assert.Equal(t, reflect.TypeFor[leaf](), a.Owner)
	}
}

func TestAncestors(t *testing.T) {
	anc := resolver.Ancestors(reflect.TypeFor[leaf]())
	require.Len(t, anc, 1, "embedded time.Time has a built-in generator and stays an attribute")
	assert.Equal(t, reflect.TypeFor[middle](), anc[0].Type)
	assert.True(t, anc[0].Pointer)

	anc = resolver.Ancestors(reflect.TypeFor[middle]())
	require.Len(t, anc, 1)
	assert.False(t, anc[0].Pointer)

	assert.Empty(t, resolver.Ancestors(reflect.TypeFor[base]()))
}

func TestAttributes(t *testing.T) {
	lt := reflect.TypeFor[leaf]()

	assert.Len(t, resolver.Attributes(lt, false), 3)

	all := resolver.Attributes(lt, true)
	assert.Equal(t, []string{
		"resolver_test.leaf.Time",
		"resolver_test.leaf.Score",
		"resolver_test.leaf.note",
		"resolver_test.middle.Name",
		"resolver_test.middle.ID",
		"resolver_test.base.ID",
		"resolver_test.base.Created",
	}, names(all))
}

func TestAttributes_NonStruct(t *testing.T) {
	assert.Empty(t, resolver.Attributes(reflect.TypeFor[int](), true))
	assert.Empty(t, resolver.Own(reflect.TypeFor[[]leaf]()))
	assert.Empty(t, resolver.Attributes(nil, true))
}

func TestAttributes_Cycle(t *testing.T) {
	attrs := resolver.Attributes(reflect.TypeFor[loop](), true)
	assert.Equal(t, []string{"resolver_test.loop.V"}, names(attrs))
}

func TestLookup_DeclaredFirst(t *testing.T) {
	a, ok := resolver.Lookup(reflect.TypeFor[middle](), "ID")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[middle](), a.Owner)
	assert.Equal(t, reflect.TypeFor[string](), a.Type)

	a, ok = resolver.Lookup(reflect.TypeFor[leaf](), "Created")
	require.True(t, ok, "inherited attributes resolve")
	assert.Equal(t, reflect.TypeFor[base](), a.Owner)

	_, ok = resolver.Lookup(reflect.TypeFor[leaf](), "Skip")
	assert.False(t, ok)
	assert.False(t, resolver.Has(reflect.TypeFor[leaf](), "missing"))
}

func TestOwn_ReturnsCopy(t *testing.T) {
	lt := reflect.TypeFor[leaf]()
	own := resolver.Own(lt)
	own[0].Name = "mutated"
	assert.Equal(t, "Time", resolver.Own(lt)[0].Name)
}

func TestResolver_Concurrency(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeFor[leaf](),
		reflect.TypeFor[middle](),
		reflect.TypeFor[base](),
		reflect.TypeFor[loop](),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				tt := types[(i+id)%len(types)]
				_ = resolver.Attributes(tt, true)
				_, _ = resolver.Lookup(tt, "ID")
			}
		}(w)
	}
	wg.Wait()
}
