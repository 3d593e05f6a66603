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

package apis

import "reflect"

// Context is a registry of type configurations that generates instances.
// A context is either a root or a child of another context; a child sees every
// configuration of its parent chain but never mutates it.
type Context interface {
	// Config returns the generation knobs of this context.
	Config() Config

	// Parent returns the parent context, or nil for a root.
	Parent() Context

	// Registry returns the registry owned by this level of the chain.
	Registry() Registry

	// Register adds a configuration. It fails with ErrDuplicateRegistration when
	// the type is already configured anywhere in the chain.
	Register(cfg TypeConfig) error

	// RegisterGenerator adds a type-level generator used instead of field
	// scanning for t. Same duplicate rules as Register.
	RegisterGenerator(t reflect.Type, g Generator) error

	// IsConfigured reports whether t has a configuration or type-level
	// generator in this context or any ancestor.
	IsConfigured(t reflect.Type) bool

	// Configuration returns the configuration for t. A child returns a proxy
	// over its parent's configuration, created on first access, so that
	// modifications stay scoped to the child.
	Configuration(t reflect.Type) (TypeConfig, bool)

	// Capability returns the generator that handles t as a whole: a registered
	// type-level generator, or a built-in one.
	Capability(t reflect.Type) (Generator, bool)

	// Generate returns a new populated value of type t.
	Generate(t reflect.Type, tempIgnores ...string) (any, error)

	// GenerateExtended generates t with a configuration derived by ext from
	// the current one.
	GenerateExtended(t reflect.Type, ext Extender, tempIgnores ...string) (any, error)

	// GenerateWith runs g in this context for type t.
	GenerateWith(g Generator, t reflect.Type) (any, error)

	// GenerateFrom generates t taking attribute values from data where present.
	GenerateFrom(t reflect.Type, data map[string]any) (any, error)

	// GenerateFromYAML is GenerateFrom with data decoded from a YAML mapping.
	GenerateFromYAML(t reflect.Type, doc []byte) (any, error)

	// CreateChild returns a new child context whose parent is this context.
	CreateChild() Context
}
