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

package engine_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/config"
	"dirpx.dev/fixture/engine"
	"dirpx.dev/fixture/mockctx"
	"dirpx.dev/fixture/typeconfig"
)

type order struct {
	ID      uuid.UUID
	Count   int
	Ratio   float32
	Active  bool
	Placed  time.Time
	Timeout time.Duration
	Note    string
	Tags    []name
	Lines   []inner
	Main    inner
	Ref     *int
}

type counters struct {
	Small int8
	Count uint
	Whole int
	Ratio float32
}

func TestPopulateFrom_Numbers(t *testing.T) {
	v, err := engine.PopulateFrom(nil, view(t, typeconfig.For[counters]()), map[string]any{
		"Small": int64(-5),
		"Count": 7,
		"Whole": 2.0,
		"Ratio": 1,
	})
	require.NoError(t, err)
	got := v.Interface().(counters)
	assert.Equal(t, int8(-5), got.Small)
	assert.Equal(t, uint(7), got.Count)
	assert.Equal(t, 2, got.Whole)
	assert.Equal(t, float32(1), got.Ratio)
}

func TestPopulateFrom_NumbersOutOfRange(t *testing.T) {
	cfg := view(t, typeconfig.For[counters]())

	cases := []struct {
		name string
		data map[string]any
	}{
		{"fraction into int", map[string]any{"Whole": 1.7}},
		{"overflow int8", map[string]any{"Small": 300}},
		{"negative into uint", map[string]any{"Count": -1}},
		{"fraction into uint", map[string]any{"Count": 0.5}},
		{"overflow float32", map[string]any{"Ratio": 1e40}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.PopulateFrom(nil, cfg, tc.data)
			assert.ErrorIs(t, err, apis.ErrParse)
		})
	}
}

func TestPopulateFrom_Scalars(t *testing.T) {
	id := uuid.New()
	data := map[string]any{
		"ID":      id.String(),
		"Count":   "12",
		"Ratio":   0.5,
		"Active":  "true",
		"Placed":  "2024-05-01T10:00:00Z",
		"Timeout": "90s",
		"Note":    nil,
		"Tags":    []any{"a", "b"},
		"Ref":     "7",
	}

	v, err := engine.PopulateFrom(nil, view(t, typeconfig.For[order]().Ignore("Lines", "Main")), data)
	require.NoError(t, err)
	got := v.Interface().(order)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, 12, got.Count)
	assert.Equal(t, float32(0.5), got.Ratio)
	assert.True(t, got.Active)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), got.Placed)
	assert.Equal(t, 90*time.Second, got.Timeout)
	assert.Empty(t, got.Note, "nil data leaves the zero value")
	assert.Equal(t, []name{"a", "b"}, got.Tags)
	require.NotNil(t, got.Ref)
	assert.Equal(t, 7, *got.Ref)
}

func TestPopulateFrom_DataBeatsIgnore(t *testing.T) {
	v, err := engine.PopulateFrom(nil, view(t, typeconfig.For[scalars]().Ignore("S")), map[string]any{"S": "kept"})
	require.NoError(t, err)
	assert.Equal(t, "kept", v.Interface().(scalars).S)
}

func TestPopulateFrom_Nested(t *testing.T) {
	ctx := mockctx.New(config.NewConfig(config.WithImplicit(true)), nil)
	data := map[string]any{
		"Main":  map[string]any{"V": 3},
		"Lines": []any{map[string]any{"V": 1}, map[string]any{"V": "2"}},
	}

	v, err := engine.PopulateFrom(ctx, view(t, typeconfig.For[order]()), data)
	require.NoError(t, err)
	got := v.Interface().(order)

	assert.Equal(t, 3, got.Main.V)
	assert.Equal(t, []inner{{V: 1}, {V: 2}}, got.Lines)
	assert.NotEmpty(t, got.Note, "absent keys are generated")
}

func TestPopulateFrom_ParseErrors(t *testing.T) {
	cfg := view(t, typeconfig.For[order]().Ignore("Lines", "Main"))

	for key, raw := range map[string]any{
		"Count":   "twelve",
		"Placed":  "yesterday",
		"ID":      "not-a-uuid",
		"Active":  3,
		"Timeout": true,
	} {
		_, err := engine.PopulateFrom(nil, cfg, map[string]any{key: raw})
		assert.ErrorIs(t, err, apis.ErrParse, key)
	}
}
