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

package typeconfig

import (
	"reflect"

	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/resolver"
	"dirpx.dev/fixture/strategy"
)

// Builder assembles a Config. Errors are collected and reported by Build, so
// calls can be chained:
//
//	cfg, err := typeconfig.For[User]().
//		Ignore("Password").
//		Field("Age", strategy.IntRange(18, 99)).
//		Build()
type Builder struct {
	t       reflect.Type
	ignores []string
	fields  []field
	scan    *bool
	useReg  *bool
	base    apis.TypeConfig
}

type field struct {
	name string
	g    apis.Generator
}

// New starts a configuration of t.
func New(t reflect.Type) *Builder {
	return &Builder{t: t}
}

// For starts a configuration of T.
func For[T any]() *Builder {
	return New(reflect.TypeFor[T]())
}

// Ignore marks attributes as never generated.
func (b *Builder) Ignore(names ...string) *Builder {
	b.ignores = append(b.ignores, names...)
	return b
}

// Field sets the generator of an attribute. Setting the same attribute twice
// fails the build.
func (b *Builder) Field(name string, g apis.Generator) *Builder {
	b.fields = append(b.fields, field{name: name, g: g})
	return b
}

// FieldValue fixes an attribute to v.
func (b *Builder) FieldValue(name string, v any) *Builder {
	return b.Field(name, strategy.Const(v))
}

// ScanAncestors sets whether embedded struct levels are populated.
func (b *Builder) ScanAncestors(scan bool) *Builder {
	b.scan = &scan
	return b
}

// UseRegisteredForAncestors sets whether embedded levels with their own
// registered configuration are populated through it.
func (b *Builder) UseRegisteredForAncestors(use bool) *Builder {
	b.useReg = &use
	return b
}

// Extend merges base into the built configuration; see Extend.
func (b *Builder) Extend(base apis.TypeConfig) *Builder {
	b.base = base
	return b
}

// Build validates and returns the configuration.
func (b *Builder) Build() (*Config, error) {
	t, err := target(b.t)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(t)

	for _, n := range b.ignores {
		if !resolver.Has(t, n) {
			return nil, errors.Wrapf(apis.ErrAttributeNotFound, "ignore %v.%s", t, n)
		}
		cfg.ignored[n] = struct{}{}
	}
	for _, f := range b.fields {
		attr, ok := resolver.Lookup(t, f.name)
		if !ok {
			return nil, errors.Wrapf(apis.ErrAttributeNotFound, "field %v.%s", t, f.name)
		}
		if f.g == nil {
			return nil, errors.Wrapf(apis.ErrNoGenerator, "field %s: nil generator", attr)
		}
		if _, dup := cfg.generators[attr.Key()]; dup {
			return nil, errors.Wrapf(apis.ErrDuplicateGeneratorOverride, "field %s", attr)
		}
		cfg.generators[attr.Key()] = f.g
	}
	if b.scan != nil {
		cfg.scanAncestors = *b.scan
	}
	if b.useReg != nil {
		cfg.useRegistered = *b.useReg
	}
	if b.base == nil {
		return cfg, nil
	}
	return Extend(cfg, b.base)
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}
