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
	"reflect"

	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/config"
	"dirpx.dev/fixture/registry"
	"dirpx.dev/fixture/strategy"
)

// Context is a registry of type configurations that generates instances.
// A Context without a parent is a root; CreateChild derives children that
// read through to their ancestors and scope every modification to themselves.
type Context struct {
	cfg    apis.Config
	reg    apis.Registry
	parent *Context
}

// Ensure Context implements apis.Context.
var _ apis.Context = (*Context)(nil)

// New returns a root context over reg. A nil reg gets a fresh registry.
// Configurations already present in reg are bound to the new context.
func New(cfg apis.Config, reg apis.Registry) *Context {
	if reg == nil {
		reg = registry.New(cfg)
	}
	c := &Context{cfg: cfg, reg: reg}
	for _, e := range reg.Entries() {
		if e.Config != nil {
			e.Config.Bind(c)
		}
	}
	return c
}

// Default returns a root context with the default configuration.
func Default() *Context {
	return New(config.DefaultConfig(), nil)
}

// Config returns the generation knobs of this context.
func (c *Context) Config() apis.Config { return c.cfg }

// Parent returns the parent context, or nil for a root.
func (c *Context) Parent() apis.Context {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// IsRoot reports whether c has no parent.
func (c *Context) IsRoot() bool { return c.parent == nil }

// Registry returns the registry of this level only.
func (c *Context) Registry() apis.Registry { return c.reg }

// CreateChild returns a new child of c with an empty registry.
func (c *Context) CreateChild() apis.Context {
	return c.child()
}

func (c *Context) child() *Context {
	return &Context{cfg: c.cfg, reg: registry.New(c.cfg), parent: c}
}

// Register adds cfg to this level and binds it to c. A child refuses types
// configured anywhere in its parent chain.
func (c *Context) Register(cfg apis.TypeConfig) error {
	if cfg == nil {
		return apis.ErrNilConfiguration
	}
	t := cfg.Type()
	if t == nil {
		return apis.ErrNilType
	}
	if c.parent != nil && c.parent.IsConfigured(t) {
		return errors.Wrapf(apis.ErrDuplicateRegistration, "type %v is configured by a parent context", t)
	}
	if err := c.reg.Register(cfg); err != nil {
		return err
	}
	cfg.Bind(c)
	return nil
}

// RegisterGenerator adds a type-level generator used for t instead of
// attribute scanning. Same duplicate rules as Register.
func (c *Context) RegisterGenerator(t reflect.Type, g apis.Generator) error {
	if t == nil {
		return apis.ErrNilType
	}
	if c.parent != nil && c.parent.IsConfigured(t) {
		return errors.Wrapf(apis.ErrDuplicateRegistration, "type %v is configured by a parent context", t)
	}
	return c.reg.RegisterGenerator(t, g)
}

// IsConfigured reports whether t is registered here or in any ancestor.
func (c *Context) IsConfigured(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for cur := c; cur != nil; cur = cur.parent {
		if cur.reg.Contains(t) {
			return true
		}
	}
	return false
}

// Capability returns the nearest type-level generator registered for t in
// the chain, or the built-in generator of t.
func (c *Context) Capability(t reflect.Type) (apis.Generator, bool) {
	if t == nil {
		return nil, false
	}
	for cur := c; cur != nil; cur = cur.parent {
		if g, ok := cur.reg.LookupGenerator(t); ok {
			return g, true
		}
	}
	return strategy.Builtin(t)
}
