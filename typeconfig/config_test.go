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

type person struct {
	name    string
	age     int
	address string
}

type entity struct {
	ID      int
	Version int
}

type user struct {
	entity
	Email string
	ID    string
}

func TestDefault(t *testing.T) {
	cfg, err := typeconfig.Default(reflect.TypeFor[*person]())
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[person](), cfg.Type(), "pointers resolve to their struct")
	assert.Empty(t, cfg.Ignores())
	assert.Empty(t, cfg.Generators())
	assert.True(t, cfg.ScanAncestors())
	assert.True(t, cfg.UseRegisteredForAncestors())
	assert.Nil(t, cfg.Context())

	_, err = typeconfig.Default(nil)
	assert.ErrorIs(t, err, apis.ErrNilType)
	_, err = typeconfig.Default(reflect.TypeFor[int]())
	assert.ErrorIs(t, err, apis.ErrInstantiation)
}

func TestConfig_Ignores(t *testing.T) {
	cfg := typeconfig.For[person]().MustBuild()

	cfg.AddIgnores("name", "age", "name")
	assert.Equal(t, []string{"age", "name"}, cfg.Ignores())
	assert.True(t, cfg.HasIgnore("age"))

	cfg.RemoveIgnores("age", "missing")
	assert.Equal(t, []string{"name"}, cfg.Ignores())
	assert.False(t, cfg.HasIgnore("age"))
}

func TestConfig_SetGenerator(t *testing.T) {
	cfg := typeconfig.For[user]().MustBuild()

	require.NoError(t, cfg.SetGenerator("Email", strategy.Const("a@b.c")))
	require.NoError(t, cfg.SetGenerator("Email", strategy.Const("x@y.z")), "live reconfiguration replaces")

	v, err := cfg.Generate()
	require.NoError(t, err)
	assert.Equal(t, "x@y.z", v.(user).Email)

	err = cfg.SetGenerator("Missing", strategy.Const(1))
	assert.ErrorIs(t, err, apis.ErrAttributeNotFound)

	require.NoError(t, cfg.SetGenerator("Email", nil))
	assert.Empty(t, cfg.Generators())
}

func TestConfig_SetGenerator_DeclaredBeforeInherited(t *testing.T) {
	cfg := typeconfig.For[user]().MustBuild()
	require.NoError(t, cfg.SetGenerator("ID", strategy.Const("own")))
	require.NoError(t, cfg.SetGenerator("Version", strategy.Const(3)))

	keys := cfg.Generators()
	assert.Contains(t, keys, apis.AttributeKey{Owner: reflect.TypeFor[user](), Name: "ID"})
	assert.Contains(t, keys, apis.AttributeKey{Owner: reflect.TypeFor[entity](), Name: "Version"})

	v, err := cfg.Generate()
	require.NoError(t, err)
	got := v.(user)
	assert.Equal(t, "own", got.ID)
	assert.Equal(t, 3, got.Version)
	assert.GreaterOrEqual(t, got.entity.ID, 0)
}

func TestConfig_GeneratorsIsCopy(t *testing.T) {
	cfg := typeconfig.For[person]().FieldValue("age", 1).MustBuild()
	gens := cfg.Generators()
	clear(gens)
	assert.Len(t, cfg.Generators(), 1)
}

func TestConfig_Clone(t *testing.T) {
	cfg := typeconfig.For[person]().Ignore("name").FieldValue("age", 9).ScanAncestors(false).MustBuild()
	ctx := struct{ apis.Context }{}
	cfg.Bind(ctx)

	clone := cfg.Clone()
	assert.Nil(t, clone.Context(), "clones are unbound")
	assert.Equal(t, cfg.Ignores(), clone.Ignores())
	assert.Len(t, clone.Generators(), 1)
	assert.False(t, clone.ScanAncestors())

	clone.AddIgnores("address")
	assert.False(t, cfg.HasIgnore("address"))
}

func TestConfig_GenerateWithoutContext(t *testing.T) {
	cfg := typeconfig.For[person]().Ignore("age").FieldValue("address", "TEST_ADDRESS").MustBuild()

	v, err := cfg.Generate("name")
	require.NoError(t, err)
	got := v.(person)
	assert.Empty(t, got.name)
	assert.Zero(t, got.age)
	assert.Equal(t, "TEST_ADDRESS", got.address)
}

func TestConfig_Policies(t *testing.T) {
	cfg := typeconfig.For[user]().MustBuild()
	cfg.SetScanAncestors(false)
	cfg.SetUseRegisteredForAncestors(false)
	assert.False(t, cfg.ScanAncestors())
	assert.False(t, cfg.UseRegisteredForAncestors())

	v, err := cfg.Generate()
	require.NoError(t, err)
	assert.Zero(t, v.(user).Version)
}
