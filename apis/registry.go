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

// Registry stores type configurations and type-level generators of one
// context level. Implementations must be safe for concurrent use.
type Registry interface {
	// Register stores cfg under cfg.Type(). Fails with ErrDuplicateRegistration.
	Register(cfg TypeConfig) error
	// RegisterGenerator stores g under t. Fails with ErrDuplicateRegistration.
	RegisterGenerator(t reflect.Type, g Generator) error
	// Lookup returns the configuration stored for t.
	Lookup(t reflect.Type) (TypeConfig, bool)
	// LookupGenerator returns the type-level generator stored for t.
	LookupGenerator(t reflect.Type) (Generator, bool)
	// LoadOrStore returns the configuration stored for t if present; otherwise
	// it stores cfg and returns it. loaded reports whether a value was present.
	LoadOrStore(t reflect.Type, cfg TypeConfig) (actual TypeConfig, loaded bool)
	// Contains reports whether t has a configuration or a generator.
	Contains(t reflect.Type) bool
	// Entries returns a snapshot for diagnostics and copying (order is unspecified).
	Entries() []Entry
	// Count returns the number of stored entries.
	Count() int
	// Reset clears all entries.
	Reset()
}

// Entry is a single registry association. Exactly one of Config and
// Generator is set.
type Entry struct {
	// Type is the registered type.
	Type reflect.Type
	// Config is the registered configuration.
	Config TypeConfig
	// Generator is the registered type-level generator.
	Generator Generator
}
