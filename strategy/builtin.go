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

package strategy

import (
	"math"
	"math/rand/v2"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/config"
)

// letters is the alphabet of generated strings.
const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// builtins maps exact types to their generator. The table is read-only after
// package initialization.
var builtins = map[reflect.Type]apis.Generator{
	reflect.TypeFor[bool]():    fn(func() any { return rand.IntN(2) == 1 }),
	reflect.TypeFor[int]():     fn(func() any { return rand.IntN(math.MaxInt) }),
	reflect.TypeFor[int8]():    fn(func() any { return int8(rand.IntN(math.MaxInt8)) }),
	reflect.TypeFor[int16]():   fn(func() any { return int16(rand.IntN(math.MaxInt16)) }),
	reflect.TypeFor[int32]():   fn(func() any { return rand.Int32N(math.MaxInt32) }),
	reflect.TypeFor[int64]():   fn(func() any { return rand.Int64N(math.MaxInt64) }),
	reflect.TypeFor[uint]():    fn(func() any { return uint(rand.Uint64()) }),
	reflect.TypeFor[uint8]():   fn(func() any { return uint8(rand.UintN(math.MaxUint8 + 1)) }),
	reflect.TypeFor[uint16]():  fn(func() any { return uint16(rand.UintN(math.MaxUint16 + 1)) }),
	reflect.TypeFor[uint32]():  fn(func() any { return rand.Uint32() }),
	reflect.TypeFor[uint64]():  fn(func() any { return rand.Uint64() }),
	reflect.TypeFor[uintptr](): fn(func() any { return uintptr(rand.Uint64()) }),
	reflect.TypeFor[float32](): fn(func() any { return rand.Float32() }),
	reflect.TypeFor[float64](): fn(func() any { return rand.Float64() }),
	reflect.TypeFor[complex64](): fn(func() any {
		return complex(rand.Float32(), rand.Float32())
	}),
	reflect.TypeFor[complex128](): fn(func() any {
		return complex(rand.Float64(), rand.Float64())
	}),
	reflect.TypeFor[string](): apis.GeneratorFunc(func(ctx apis.Context, _ reflect.Type) (any, error) {
		return RandomString(stringLength(ctx)), nil
	}),
	reflect.TypeFor[time.Time](): fn(func() any { return time.Now() }),
	reflect.TypeFor[time.Duration](): fn(func() any {
		return time.Duration(rand.Int64N(int64(24 * time.Hour)))
	}),
	reflect.TypeFor[uuid.UUID](): fn(func() any { return uuid.New() }),
}

// fn lifts a context-free producer into a generator.
func fn(f func() any) apis.Generator {
	return apis.GeneratorFunc(func(apis.Context, reflect.Type) (any, error) {
		return f(), nil
	})
}

// Builtin returns the built-in generator registered for exactly t.
func Builtin(t reflect.Type) (apis.Generator, bool) {
	if t == nil {
		return nil, false
	}
	g, ok := builtins[t]
	return g, ok
}

// IsBuiltin reports whether t has a built-in generator.
func IsBuiltin(t reflect.Type) bool {
	_, ok := Builtin(t)
	return ok
}

// ForKind returns the built-in generator of the unnamed type of kind k, used
// for named scalars (`type Label string`).
func ForKind(k reflect.Kind) (apis.Generator, reflect.Type, bool) {
	t, ok := kindTypes[k]
	if !ok {
		return nil, nil, false
	}
	return builtins[t], t, true
}

var kindTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:       reflect.TypeFor[bool](),
	reflect.Int:        reflect.TypeFor[int](),
	reflect.Int8:       reflect.TypeFor[int8](),
	reflect.Int16:      reflect.TypeFor[int16](),
	reflect.Int32:      reflect.TypeFor[int32](),
	reflect.Int64:      reflect.TypeFor[int64](),
	reflect.Uint:       reflect.TypeFor[uint](),
	reflect.Uint8:      reflect.TypeFor[uint8](),
	reflect.Uint16:     reflect.TypeFor[uint16](),
	reflect.Uint32:     reflect.TypeFor[uint32](),
	reflect.Uint64:     reflect.TypeFor[uint64](),
	reflect.Uintptr:    reflect.TypeFor[uintptr](),
	reflect.Float32:    reflect.TypeFor[float32](),
	reflect.Float64:    reflect.TypeFor[float64](),
	reflect.Complex64:  reflect.TypeFor[complex64](),
	reflect.Complex128: reflect.TypeFor[complex128](),
	reflect.String:     reflect.TypeFor[string](),
}

// RandomString returns n alphabetic characters.
func RandomString(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(letters[rand.IntN(len(letters))])
	}
	return sb.String()
}

// stringLength reads StringLength from ctx, falling back to the default
// outside of a context.
func stringLength(ctx apis.Context) int {
	if ctx == nil {
		return config.DefaultStringLength
	}
	return ctx.Config().StringLength
}

// listSize reads ListSize from ctx, falling back to the default outside of
// a context.
func listSize(ctx apis.Context) int {
	if ctx == nil {
		return config.DefaultListSize
	}
	return ctx.Config().ListSize
}
