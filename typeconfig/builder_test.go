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

package typeconfig_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/strategy"
	"dirpx.dev/fixture/typeconfig"
)

func TestBuilder(t *testing.T) {
	cfg, err := typeconfig.New(reflect.TypeFor[user]()).
		Ignore("Email").
		Field("ID", strategy.StringFrom("u1")).
		FieldValue("Version", 2).
		UseRegisteredForAncestors(false).
		Build()
	require.NoError(t, err)

	assert.Equal(t, reflect.TypeFor[user](), cfg.Type())
	assert.Equal(t, []string{"Email"}, cfg.Ignores())
	assert.Len(t, cfg.Generators(), 2)
	assert.True(t, cfg.ScanAncestors())
	assert.False(t, cfg.UseRegisteredForAncestors())
}

func TestBuilder_Errors(t *testing.T) {
	cases := []struct {
		name string
		b    *typeconfig.Builder
		want error
	}{
		{"nil type", typeconfig.New(nil), apis.ErrNilType},
		{"not a struct", typeconfig.For[map[string]int](), apis.ErrInstantiation},
		{"unknown field", typeconfig.For[user]().Field("Nope", strategy.Const(1)), apis.ErrAttributeNotFound},
		{"unknown ignore", typeconfig.For[user]().Ignore("Nope"), apis.ErrAttributeNotFound},
		{"duplicate field", typeconfig.For[user]().
			FieldValue("Email", "a").
			FieldValue("Email", "b"), apis.ErrDuplicateGeneratorOverride},
		{"nil generator", typeconfig.For[user]().Field("Email", nil), apis.ErrNoGenerator},
		{"extend mismatch", typeconfig.For[user]().Extend(typeconfig.For[person]().MustBuild()), apis.ErrTypeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.b.Build()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuilder_SameNameOnTwoLevelsIsNotADuplicate(t *testing.T) {
	// "ID" resolves to the declared attribute; the inherited one stays free.
	cfg, err := typeconfig.For[user]().FieldValue("ID", "x").Build()
	require.NoError(t, err)
	_, ok := cfg.Generator(apis.AttributeKey{Owner: reflect.TypeFor[entity](), Name: "ID"})
	assert.False(t, ok)
}

func TestBuilder_Extend(t *testing.T) {
	base := typeconfig.For[person]().Ignore("name").FieldValue("age", 5).MustBuild()
	cfg, err := typeconfig.For[person]().FieldValue("age", 6).Extend(base).Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, cfg.Ignores())

	v, err := cfg.Generate()
	require.NoError(t, err)
	assert.Equal(t, 6, v.(person).age)
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() { typeconfig.For[int]().MustBuild() })
}
