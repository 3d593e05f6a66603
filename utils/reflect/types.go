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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/fixture/apis"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotStruct indicates that the provided type (after stripping
	// pointers) is not a struct.
	ErrReflectNotStruct = errors.New("reflect: type is not a struct")
)

// Tag is the struct tag key read by the generator. A field tagged
// `fixture:"-"` is never generated.
const Tag = "fixture"

// maxIndirect bounds pointer stripping; **...*T deeper than this is not a
// realistic fixture attribute.
const maxIndirect = 8

var enumType = reflect.TypeFor[apis.Enum]()

// Indirect strips pointer levels from t and returns the base type together
// with the number of levels removed.
func Indirect(t reflect.Type) (reflect.Type, int) {
	n := 0
	for t != nil && t.Kind() == reflect.Pointer && n < maxIndirect {
		t = t.Elem()
		n++
	}
	return t, n
}

// StructOf returns t, or the type t points to, when it is a struct.
func StructOf(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	base, _ := Indirect(t)
	if base.Kind() != reflect.Struct {
		return nil, ErrReflectNotStruct
	}
	return base, nil
}

// Skipped reports whether a field is excluded from generation: the blank
// identifier and fields tagged `fixture:"-"`.
func Skipped(f reflect.StructField) bool {
	return f.Name == "_" || f.Tag.Get(Tag) == "-"
}

// EnumValues returns the declared values when t or *t implements apis.Enum.
// Pointer and interface types never qualify themselves.
func EnumValues(t reflect.Type) ([]any, bool) {
	if t == nil || t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return nil, false
	}
	if t.Implements(enumType) {
		return reflect.Zero(t).Interface().(apis.Enum).EnumValues(), true
	}
	if reflect.PointerTo(t).Implements(enumType) {
		return reflect.New(t).Interface().(apis.Enum).EnumValues(), true
	}
	return nil, false
}

// IsEnum reports whether t or *t implements apis.Enum.
func IsEnum(t reflect.Type) bool {
	if t == nil || t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return false
	}
	return t.Implements(enumType) || reflect.PointerTo(t).Implements(enumType)
}
