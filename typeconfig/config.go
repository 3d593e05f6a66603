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
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/engine"
	"dirpx.dev/fixture/resolver"
	uref "dirpx.dev/fixture/utils/reflect"
)

// Config is the concrete apis.TypeConfig. The zero value is not usable; build
// one with New, For or Default.
type Config struct {
	// t is the target struct type.
	t reflect.Type

	// mu guards every field below.
	mu sync.RWMutex
	// ignored holds attribute names never generated.
	ignored map[string]struct{}
	// generators maps attributes to their override.
	generators map[apis.AttributeKey]apis.Generator
	// scanAncestors and useRegistered are the ancestor policies.
	scanAncestors bool
	useRegistered bool
	// ctx is the context the configuration is registered in.
	ctx apis.Context
}

// Ensure Config implements apis.TypeConfig.
var _ apis.TypeConfig = (*Config)(nil)

func newConfig(t reflect.Type) *Config {
	return &Config{
		t:             t,
		ignored:       map[string]struct{}{},
		generators:    map[apis.AttributeKey]apis.Generator{},
		scanAncestors: true,
		useRegistered: true,
	}
}

// Default returns a configuration of t with no ignores, no overrides and both
// ancestor policies enabled. A pointer to a struct is accepted for its
// struct type.
func Default(t reflect.Type) (*Config, error) {
	st, err := target(t)
	if err != nil {
		return nil, err
	}
	return newConfig(st), nil
}

func target(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, apis.ErrNilType
	}
	st, err := uref.StructOf(t)
	if err != nil {
		return nil, errors.Wrapf(apis.ErrInstantiation, "type %v is not a struct", t)
	}
	return st, nil
}

// Type returns the target struct type.
func (c *Config) Type() reflect.Type { return c.t }

// HasIgnore reports whether name is ignored.
func (c *Config) HasIgnore(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.ignored[name]
	return ok
}

// Ignores returns the ignored names, sorted.
func (c *Config) Ignores() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.ignored))
}

// AddIgnores adds names to the ignore set.
func (c *Config) AddIgnores(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range names {
		c.ignored[n] = struct{}{}
	}
}

// RemoveIgnores removes names from the ignore set.
func (c *Config) RemoveIgnores(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range names {
		delete(c.ignored, n)
	}
}

// SetGenerator sets the override of the named attribute, replacing any
// previous one. A nil generator removes the override.
func (c *Config) SetGenerator(name string, g apis.Generator) error {
	attr, ok := resolver.Lookup(c.t, name)
	if !ok {
		return errors.Wrapf(apis.ErrAttributeNotFound, "%v.%s", c.t, name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if g == nil {
		delete(c.generators, attr.Key())
		return nil
	}
	c.generators[attr.Key()] = g
	return nil
}

// Generator returns the override of an attribute.
func (c *Config) Generator(key apis.AttributeKey) (apis.Generator, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.generators[key]
	return g, ok
}

// Generators returns a copy of the override map.
func (c *Config) Generators() map[apis.AttributeKey]apis.Generator {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.generators)
}

// ScanAncestors reports whether embedded struct levels are populated.
func (c *Config) ScanAncestors() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scanAncestors
}

// UseRegisteredForAncestors reports whether embedded levels use their own
// registered configuration.
func (c *Config) UseRegisteredForAncestors() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.useRegistered
}

// SetScanAncestors sets the ancestor scanning policy.
func (c *Config) SetScanAncestors(scan bool) {
	c.mu.Lock()
	c.scanAncestors = scan
	c.mu.Unlock()
}

// SetUseRegisteredForAncestors sets the ancestor delegation policy.
func (c *Config) SetUseRegisteredForAncestors(use bool) {
	c.mu.Lock()
	c.useRegistered = use
	c.mu.Unlock()
}

// Bind attaches the configuration to ctx.
func (c *Config) Bind(ctx apis.Context) {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()
}

// Context returns the bound context, or nil.
func (c *Config) Context() apis.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ctx
}

// Generate populates a new instance under the bound context. Outside of a
// context only built-in capabilities are available.
func (c *Config) Generate(tempIgnores ...string) (any, error) {
	v, err := engine.Populate(c.Context(), c, tempIgnores)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// Extend returns a new configuration combining c with base; see Extend.
func (c *Config) Extend(base apis.TypeConfig) (*Config, error) {
	return Extend(c, base)
}

// Clone returns an unbound deep copy.
func (c *Config) Clone() apis.TypeConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Config{
		t:             c.t,
		ignored:       maps.Clone(c.ignored),
		generators:    maps.Clone(c.generators),
		scanAncestors: c.scanAncestors,
		useRegistered: c.useRegistered,
	}
}
