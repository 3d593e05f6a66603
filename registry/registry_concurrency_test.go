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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/config"
	"dirpx.dev/fixture/registry"
	"dirpx.dev/fixture/typeconfig"
)

// A few named types to avoid anonymous/unnamed pitfalls.
type T0 struct{ A int }
type T1 struct{ A int }
type T2 struct{ A int }
type T3 struct{ A int }
type T4 struct{ A int }
type T5 struct{ A int }
type T6 struct{ A int }
type T7 struct{ A int }
type T8 struct{ A int }
type T9 struct{ A int }

var allTypes = []reflect.Type{
	reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2](),
	reflect.TypeFor[T3](), reflect.TypeFor[T4](), reflect.TypeFor[T5](),
	reflect.TypeFor[T6](), reflect.TypeFor[T7](), reflect.TypeFor[T8](),
	reflect.TypeFor[T9](),
}

// TestConcurrentLoadOrStore verifies that concurrent insert-if-absent calls
// agree on a single winner per type.
func TestConcurrentLoadOrStore(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	workers := runtime.GOMAXPROCS(0) * 4
	results := make([][]apis.TypeConfig, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			out := make([]apis.TypeConfig, len(allTypes))
			for i, tt := range allTypes {
				cfg, _ := typeconfig.Default(tt)
				out[i], _ = reg.LoadOrStore(tt, cfg)
				_ = reg.Count()
				_ = reg.Entries()
			}
			results[id] = out
		}(w)
	}
	wg.Wait()

	assert.Equal(t, len(allTypes), reg.Count())
	for i, tt := range allTypes {
		winner, ok := reg.Lookup(tt)
		require.True(t, ok)
		for w := range results {
			if results[w][i] != winner {
				t.Fatalf("worker %d saw a different configuration for %v", w, tt)
			}
		}
	}
}

// TestConcurrentRegister verifies exactly one registration per type succeeds.
func TestConcurrentRegister(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	workers := runtime.GOMAXPROCS(0) * 4
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for _, tt := range allTypes {
				cfg, _ := typeconfig.Default(tt)
				if err := reg.Register(cfg); err == nil {
					mu.Lock()
					ok++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(allTypes), ok)
	assert.Equal(t, len(allTypes), reg.Count())
}

// TestResetSnapshot ensures Reset is safe and Entries returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	for _, tt := range allTypes[:2] {
		cfg, _ := typeconfig.Default(tt)
		require.NoError(t, reg.Register(cfg))
	}

	snap := reg.Entries()
	reg.Reset()

	assert.Equal(t, 0, reg.Count())
	require.Len(t, snap, 2)
	for _, e := range snap {
		assert.NotNil(t, e.Config)
		assert.Nil(t, e.Generator)
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New(config.DefaultConfig())
