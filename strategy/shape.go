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
	"reflect"
	"sync"

	uref "dirpx.dev/fixture/utils/reflect"
)

// Kind is the type-derived source of a value, decided once per type.
type Kind uint8

const (
	// Unsupported types (funcs, channels, interfaces) have no source of their own.
	Unsupported Kind = iota
	// Scalar types are basic kinds, named or not; the built-in generator of
	// the kind produces the value which is then converted.
	Scalar
	// Enum types implement apis.Enum; a value is picked from EnumValues.
	Enum
	// List types are slices of ListSize elements.
	List
	// Array types have every slot filled.
	Array
	// Map types get ListSize entries.
	Map
	// Pointer types point to a generated element.
	Pointer
	// Recurse types are structs generated through the context.
	Recurse
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Enum:
		return "enum"
	case List:
		return "list"
	case Array:
		return "array"
	case Map:
		return "map"
	case Pointer:
		return "pointer"
	case Recurse:
		return "recurse"
	default:
		return "unsupported"
	}
}

// Shape is the plan for one type. Element types are kept as reflect.Type and
// planned on demand, so self-referencing types such as `type Tree []Tree`
// plan in constant time.
type Shape struct {
	// Kind is the source variant.
	Kind Kind
	// Type is the planned type.
	Type reflect.Type
	// Elem is the element type of List, Array, Map and Pointer shapes.
	Elem reflect.Type
	// Key is the key type of Map shapes.
	Key reflect.Type
	// Len is the length of Array shapes.
	Len int
	// Values are the declared values of Enum shapes.
	Values []any
}

// planCache memoizes shapes by type.
var planCache sync.Map // key: reflect.Type, val: Shape

// Plan returns the memoized shape of t. Overrides and registered generators
// are not part of the plan: they are mutable configuration and are looked up
// on every generation.
func Plan(t reflect.Type) Shape {
	if t == nil {
		return Shape{Kind: Unsupported}
	}
	if v, ok := planCache.Load(t); ok {
		return v.(Shape)
	}
	s := plan(t)
	planCache.Store(t, s)
	return s
}

func plan(t reflect.Type) Shape {
	if values, ok := uref.EnumValues(t); ok {
		return Shape{Kind: Enum, Type: t, Values: values}
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return Shape{Kind: Scalar, Type: t}
	case reflect.Slice:
		return Shape{Kind: List, Type: t, Elem: t.Elem()}
	case reflect.Array:
		return Shape{Kind: Array, Type: t, Elem: t.Elem(), Len: t.Len()}
	case reflect.Map:
		return Shape{Kind: Map, Type: t, Key: t.Key(), Elem: t.Elem()}
	case reflect.Pointer:
		return Shape{Kind: Pointer, Type: t, Elem: t.Elem()}
	case reflect.Struct:
		return Shape{Kind: Recurse, Type: t}
	default:
		return Shape{Kind: Unsupported, Type: t}
	}
}
