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
	"math/rand/v2"
	"reflect"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
)

// Const always returns v.
func Const(v any) apis.Generator {
	return apis.GeneratorFunc(func(apis.Context, reflect.Type) (any, error) {
		return v, nil
	})
}

// Func adapts a context-free producer.
func Func(f func() any) apis.Generator {
	return fn(f)
}

// OneOf picks one of values uniformly at random.
func OneOf(values ...any) apis.Generator {
	return apis.GeneratorFunc(func(_ apis.Context, t reflect.Type) (any, error) {
		if len(values) == 0 {
			return nil, errors.Wrapf(apis.ErrEmptyEnumeration, "one of for %v", t)
		}
		return values[rand.IntN(len(values))], nil
	})
}

// EnumOf restricts an enum attribute to a subset of its values.
func EnumOf(values ...any) apis.Generator {
	return OneOf(values...)
}

// StringFrom picks one of values uniformly at random.
func StringFrom(values ...string) apis.Generator {
	return apis.GeneratorFunc(func(_ apis.Context, t reflect.Type) (any, error) {
		if len(values) == 0 {
			return nil, errors.Wrapf(apis.ErrEmptyEnumeration, "string from for %v", t)
		}
		return convert(values[rand.IntN(len(values))], t), nil
	})
}

// StringOf produces alphabetic strings of length n.
func StringOf(n int) apis.Generator {
	return apis.GeneratorFunc(func(_ apis.Context, t reflect.Type) (any, error) {
		return convert(RandomString(n), t), nil
	})
}

// UUIDString produces random v4 UUIDs in canonical text form.
func UUIDString() apis.Generator {
	return apis.GeneratorFunc(func(_ apis.Context, t reflect.Type) (any, error) {
		return convert(uuid.NewString(), t), nil
	})
}

// IntRange produces integers in [lo, hi) converted to the integer type of
// the attribute. hi <= lo always yields lo.
func IntRange(lo, hi int64) apis.Generator {
	return apis.GeneratorFunc(func(_ apis.Context, t reflect.Type) (any, error) {
		n := lo
		if hi > lo {
			n = lo + rand.Int64N(hi-lo)
		}
		return convert(n, t), nil
	})
}

// FloatRange produces floats in [lo, hi) converted to the float type of the
// attribute.
func FloatRange(lo, hi float64) apis.Generator {
	return apis.GeneratorFunc(func(_ apis.Context, t reflect.Type) (any, error) {
		return convert(lo+rand.Float64()*(hi-lo), t), nil
	})
}

// ListOf produces a slice of n elements, each generated through the context.
// As an attribute override it receives the element type.
func ListOf(n int) apis.Generator {
	return apis.GeneratorFunc(func(ctx apis.Context, elem reflect.Type) (any, error) {
		return fill(ctx, elem, n, func(ctx apis.Context, t reflect.Type) (any, error) {
			return Value(ctx, t)
		})
	})
}

// ListWith produces a slice of n elements, each produced by g.
// A negative n means the context ListSize.
func ListWith(n int, g apis.Generator) apis.Generator {
	return apis.GeneratorFunc(func(ctx apis.Context, elem reflect.Type) (any, error) {
		return fill(ctx, elem, n, g.Generate)
	})
}

func fill(ctx apis.Context, elem reflect.Type, n int, gen func(apis.Context, reflect.Type) (any, error)) (any, error) {
	if n < 0 {
		n = listSize(ctx)
	}
	out := reflect.MakeSlice(reflect.SliceOf(elem), n, n)
	for i := range n {
		v, err := gen(ctx, elem)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(elem) {
			if rv.Kind() != elem.Kind() || !rv.CanConvert(elem) {
				return nil, errors.Wrapf(apis.ErrAssignment, "list element %v to %v", rv.Type(), elem)
			}
			rv = rv.Convert(elem)
		}
		out.Index(i).Set(rv)
	}
	return out.Interface(), nil
}

// Value generates a value of t through ctx, or through the built-ins when
// ctx is nil.
func Value(ctx apis.Context, t reflect.Type) (any, error) {
	if ctx != nil {
		return ctx.Generate(t)
	}
	if g, ok := Builtin(t); ok {
		return g.Generate(nil, t)
	}
	if s := Plan(t); s.Kind == Scalar {
		g, base, _ := ForKind(t.Kind())
		v, err := g.Generate(nil, base)
		if err != nil {
			return nil, err
		}
		return convert(v, t), nil
	}
	return nil, errors.Wrapf(apis.ErrNoGenerator, "type %v outside of a context", t)
}

// convert turns a basic value into t when both share a kind family.
// Values that cannot be converted are returned unchanged so the assignment
// step reports the mismatch.
func convert(v any, t reflect.Type) any {
	if t == nil {
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == t {
		return v
	}
	if family(rv.Kind()) != family(t.Kind()) || !rv.CanConvert(t) {
		return v
	}
	return rv.Convert(t).Interface()
}

func family(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 1
	case reflect.Float32, reflect.Float64:
		return 2
	case reflect.String:
		return 3
	case reflect.Bool:
		return 4
	default:
		return 0
	}
}
