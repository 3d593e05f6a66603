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

// View is the read side of a type configuration, all the engine needs to
// populate an instance.
type View interface {
	// Type returns the target struct type.
	Type() reflect.Type
	// HasIgnore reports whether the attribute name is in the effective ignore set.
	HasIgnore(name string) bool
	// Generator returns the override registered for an attribute.
	Generator(key AttributeKey) (Generator, bool)
	// ScanAncestors reports whether embedded struct levels are populated.
	ScanAncestors() bool
	// UseRegisteredForAncestors reports whether an embedded level with its own
	// registered configuration is populated through that configuration.
	UseRegisteredForAncestors() bool
}

// TypeConfig governs how one struct type is populated: ignored attributes,
// attribute-level generator overrides and ancestor scanning policies.
type TypeConfig interface {
	View

	// Ignores returns the effective ignore set, sorted.
	Ignores() []string
	// AddIgnores adds names to the ignore set. Idempotent.
	AddIgnores(names ...string)
	// RemoveIgnores removes names from the ignore set. Idempotent.
	RemoveIgnores(names ...string)

	// SetGenerator sets (or replaces) the override for the named attribute,
	// searching declared attributes first and inherited ones second.
	SetGenerator(name string, g Generator) error
	// Generators returns a copy of the effective override map.
	Generators() map[AttributeKey]Generator

	// SetScanAncestors sets the ancestor scanning policy.
	SetScanAncestors(scan bool)
	// SetUseRegisteredForAncestors sets the ancestor delegation policy.
	SetUseRegisteredForAncestors(use bool)

	// Bind attaches the configuration to the context it is registered in.
	Bind(ctx Context)
	// Context returns the bound context, or nil.
	Context() Context

	// Generate populates a new instance of Type under the bound context.
	// tempIgnores are skipped for this call only.
	Generate(tempIgnores ...string) (any, error)

	// Clone returns an unbound deep copy.
	Clone() TypeConfig
}
