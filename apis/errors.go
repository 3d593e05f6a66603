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

import "github.com/pkg/errors"

// Configuration errors.
var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("fixture: nil reflect.Type provided")
	// ErrNilConfiguration is returned when a nil configuration is provided.
	ErrNilConfiguration = errors.New("fixture: nil configuration provided")
	// ErrDuplicateRegistration is returned when a type is registered twice
	// within one context chain.
	ErrDuplicateRegistration = errors.New("fixture: type already configured")
	// ErrAttributeNotFound is returned when a generator or ignore targets a
	// non-existent attribute.
	ErrAttributeNotFound = errors.New("fixture: attribute not found")
	// ErrDuplicateGeneratorOverride is returned when a builder sets a second
	// generator for the same attribute.
	ErrDuplicateGeneratorOverride = errors.New("fixture: generator already set for attribute")
	// ErrTypeMismatch is returned when configurations of different types are combined.
	ErrTypeMismatch = errors.New("fixture: configuration target types differ")
	// ErrInvalidExtension is returned when an extender returns nil or its input.
	ErrInvalidExtension = errors.New("fixture: extender must return a new configuration")
	// ErrInvalidProxy is returned when a proxy is created without a client.
	ErrInvalidProxy = errors.New("fixture: proxy requires a client configuration")
	// ErrNotRoot is returned when a root-only operation is called on a child context.
	ErrNotRoot = errors.New("fixture: operation requires a root context")
)

// Generation errors.
var (
	// ErrEmptyEnumeration is returned when an enum type declares no values.
	ErrEmptyEnumeration = errors.New("fixture: enumeration has no values")
	// ErrNoGenerator is returned when no source can produce a value for a type.
	ErrNoGenerator = errors.New("fixture: no generator for type")
	// ErrInstantiation is returned when a target type cannot be instantiated.
	ErrInstantiation = errors.New("fixture: cannot instantiate type")
	// ErrAssignment is returned when a produced value cannot be assigned.
	ErrAssignment = errors.New("fixture: cannot assign value")
	// ErrRecursionLimit is returned when nested generation exceeds Config.MaxDepth.
	ErrRecursionLimit = errors.New("fixture: recursion limit exceeded")
	// ErrParse is returned when base data cannot be converted to an attribute type.
	ErrParse = errors.New("fixture: cannot parse value")
)
