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

// Generator is the unit of work that produces a value for a target type.
//
// ctx is the context the generation runs in; implementations may call back into
// it to generate nested values. ctx is nil when a configuration is generated
// outside of any context.
//
// For slice attributes the target type passed to an attribute generator is the
// element type, not the slice type, so element-aware generators can build the
// whole slice themselves.
type Generator interface {
	// Generate returns a value assignable to the attribute being populated.
	Generate(ctx Context, t reflect.Type) (any, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx Context, t reflect.Type) (any, error)

// Generate calls f(ctx, t).
func (f GeneratorFunc) Generate(ctx Context, t reflect.Type) (any, error) {
	return f(ctx, t)
}

// Enum is implemented by types with a closed set of values. The engine picks
// one of EnumValues uniformly at random. Values must be assignable to the type.
//
//	type Color int
//
//	func (Color) EnumValues() []any { return []any{Red, Green, Blue} }
type Enum interface {
	EnumValues() []any
}

// Extender derives a configuration from the registered one for a single
// generate call. It must return a new instance and must not modify base.
type Extender func(base TypeConfig) (TypeConfig, error)
