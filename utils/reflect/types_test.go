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

package reflect_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uref "dirpx.dev/fixture/utils/reflect"
)

type color int

func (color) EnumValues() []any { return []any{color(1), color(2)} }

type size string

func (*size) EnumValues() []any { return []any{size("S"), size("M")} }

type plain struct {
	A int
	_ int
	B int `fixture:"-"`
	C int `fixture:"name"`
}

type label string

func TestIndirect(t *testing.T) {
	base, n := uref.Indirect(reflect.TypeFor[**plain]())
	assert.Equal(t, reflect.TypeFor[plain](), base)
	assert.Equal(t, 2, n)

	base, n = uref.Indirect(reflect.TypeFor[int]())
	assert.Equal(t, reflect.TypeFor[int](), base)
	assert.Zero(t, n)
}

func TestStructOf(t *testing.T) {
	got, err := uref.StructOf(reflect.TypeFor[*plain]())
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[plain](), got)

	_, err = uref.StructOf(reflect.TypeFor[[]plain]())
	assert.ErrorIs(t, err, uref.ErrReflectNotStruct)

	_, err = uref.StructOf(nil)
	assert.ErrorIs(t, err, uref.ErrReflectNilType)
}

func TestSkipped(t *testing.T) {
	st := reflect.TypeFor[plain]()
	want := []bool{false, true, true, false}
	for i := range st.NumField() {
		assert.Equal(t, want[i], uref.Skipped(st.Field(i)), st.Field(i).Name)
	}
}

func TestEnumValues(t *testing.T) {
	vals, ok := uref.EnumValues(reflect.TypeFor[color]())
	require.True(t, ok)
	assert.Equal(t, []any{color(1), color(2)}, vals)

	vals, ok = uref.EnumValues(reflect.TypeFor[size]())
	require.True(t, ok, "pointer receiver enums qualify")
	assert.Len(t, vals, 2)

	_, ok = uref.EnumValues(reflect.TypeFor[*color]())
	assert.False(t, ok)
	_, ok = uref.EnumValues(reflect.TypeFor[int]())
	assert.False(t, ok)

	assert.True(t, uref.IsEnum(reflect.TypeFor[size]()))
	assert.False(t, uref.IsEnum(reflect.TypeFor[label]()))
}

func TestCoerce(t *testing.T) {
	v, ok := uref.Coerce(nil, reflect.TypeFor[int]())
	require.True(t, ok)
	assert.Equal(t, 0, v.Interface())

	v, ok = uref.Coerce("x", reflect.TypeFor[label]())
	require.True(t, ok, "same kind converts")
	assert.Equal(t, label("x"), v.Interface())

	v, ok = uref.Coerce(3, reflect.TypeFor[any]())
	require.True(t, ok)
	assert.Equal(t, 3, v.Interface())

	_, ok = uref.Coerce(3, reflect.TypeFor[string]())
	assert.False(t, ok, "different kinds never convert")

	_, ok = uref.Coerce(int64(3), reflect.TypeFor[int]())
	assert.False(t, ok)
}
