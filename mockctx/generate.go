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

package mockctx

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/engine"
	"dirpx.dev/fixture/strategy"
	"dirpx.dev/fixture/typeconfig"
)

// Generate returns a new value of type t.
//
// A configured struct type is populated through its configuration (in a
// child, the proxy over an inherited one), skipping tempIgnores for this call.
// Other types fall back to a type-level generator or built-in, then to their
// shape: enums, slices, arrays, maps and pointers. An unconfigured struct is
// generated with a default configuration only when Config.Implicit is set.
func (c *Context) Generate(t reflect.Type, tempIgnores ...string) (any, error) {
	return c.generate(1, t, tempIgnores)
}

// GenerateExtended generates t with the configuration ext derives from the
// current one. ext must return a new configuration of the same type.
func (c *Context) GenerateExtended(t reflect.Type, ext apis.Extender, tempIgnores ...string) (any, error) {
	return c.generateExtended(1, t, ext, tempIgnores)
}

// GenerateWith runs g for type t inside c.
func (c *Context) GenerateWith(g apis.Generator, t reflect.Type) (any, error) {
	return c.generateWith(1, g, t)
}

// GenerateFrom generates t taking attribute values from data where present.
func (c *Context) GenerateFrom(t reflect.Type, data map[string]any) (any, error) {
	return c.generateFrom(1, t, data)
}

// GenerateFromYAML is GenerateFrom with data decoded from a YAML mapping.
func (c *Context) GenerateFromYAML(t reflect.Type, doc []byte) (any, error) {
	data, err := decodeYAML(doc)
	if err != nil {
		return nil, err
	}
	return c.GenerateFrom(t, data)
}

// enter validates t and returns the session for depth.
func (c *Context) enter(depth int, t reflect.Type) (session, error) {
	if t == nil {
		return session{}, apis.ErrNilType
	}
	if depth > c.cfg.MaxDepth {
		return session{}, errors.Wrapf(apis.ErrRecursionLimit, "generating %v at depth %d", t, depth)
	}
	return session{Context: c, depth: depth}, nil
}

func (c *Context) generate(depth int, t reflect.Type, tempIgnores []string) (any, error) {
	s, err := c.enter(depth, t)
	if err != nil {
		return nil, err
	}
	if cfg, ok := c.Configuration(t); ok {
		return c.populate(s, cfg, tempIgnores)
	}
	if g, ok := c.Capability(t); ok {
		v, err := g.Generate(s, t)
		return c.done(s, t, v, err)
	}
	switch strategy.Plan(t).Kind {
	case strategy.Recurse:
		view, err := c.implicit(t)
		if err != nil {
			return nil, err
		}
		return c.populate(s, view, tempIgnores)
	case strategy.Unsupported:
		return nil, errors.Wrapf(apis.ErrNoGenerator, "type %v", t)
	}
	v, err := engine.Value(s, t)
	return c.done(s, t, v, err)
}

func (c *Context) generateExtended(depth int, t reflect.Type, ext apis.Extender, tempIgnores []string) (any, error) {
	s, err := c.enter(depth, t)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, errors.Wrap(apis.ErrInvalidExtension, "nil extender")
	}
	base, ok := c.Configuration(t)
	if !ok {
		if base, err = c.implicit(t); err != nil {
			return nil, err
		}
	}
	extended, err := ext(base)
	if err != nil {
		return nil, err
	}
	if extended == nil || extended == base {
		return nil, errors.Wrapf(apis.ErrInvalidExtension, "type %v", t)
	}
	if extended.Type() != t {
		return nil, errors.Wrapf(apis.ErrTypeMismatch, "extender returned %v for %v", extended.Type(), t)
	}
	return c.populate(s, extended, tempIgnores)
}

func (c *Context) generateWith(depth int, g apis.Generator, t reflect.Type) (any, error) {
	s, err := c.enter(depth, t)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.Wrapf(apis.ErrNoGenerator, "nil generator for %v", t)
	}
	v, err := g.Generate(s, t)
	return c.done(s, t, v, err)
}

func (c *Context) generateFrom(depth int, t reflect.Type, data map[string]any) (any, error) {
	s, err := c.enter(depth, t)
	if err != nil {
		return nil, err
	}
	view, ok := c.Configuration(t)
	if !ok {
		if view, err = c.implicit(t); err != nil {
			return nil, err
		}
	}
	v, err := engine.PopulateFrom(s, view, data)
	if err != nil {
		return nil, err
	}
	return c.done(s, t, v.Interface(), nil)
}

// implicit returns a default configuration for an unconfigured struct when
// Config.Implicit allows it.
func (c *Context) implicit(t reflect.Type) (apis.TypeConfig, error) {
	if t.Kind() != reflect.Struct {
		return nil, errors.Wrapf(apis.ErrNoGenerator, "type %v is not configured", t)
	}
	if !c.cfg.Implicit {
		return nil, errors.Wrapf(apis.ErrNoGenerator, "type %v is not configured", t)
	}
	cfg, err := typeconfig.Default(t)
	if err != nil {
		return nil, err
	}
	cfg.Bind(c)
	return cfg, nil
}

func (c *Context) populate(s session, view apis.View, tempIgnores []string) (any, error) {
	v, err := engine.Populate(s, view, tempIgnores)
	if err != nil {
		return nil, err
	}
	return c.done(s, view.Type(), v.Interface(), nil)
}

// done logs values generated at the top of a call chain.
func (c *Context) done(s session, t reflect.Type, v any, err error) (any, error) {
	if err != nil || s.depth != 1 {
		return v, err
	}
	log := c.cfg.Log()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("fixture: generated", "type", t.String(), "value", spew.Sdump(v))
	}
	return v, nil
}

func decodeYAML(doc []byte) (map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(doc, &data); err != nil {
		return nil, errors.Wrapf(apis.ErrParse, "yaml: %v", err)
	}
	return data, nil
}
