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

import "log/slog"

// Config carries read-only generation knobs shared by a context tree.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// ListSize is the number of elements produced for slice and map attributes
	// that have no explicit generator.
	ListSize int

	// StringLength is the length of strings produced by the built-in string generator.
	StringLength int

	// MaxDepth limits nested generation (a type graph with a cycle would
	// otherwise recurse forever). Exceeding it yields ErrRecursionLimit.
	MaxDepth int

	// Implicit allows struct types without a registered configuration to be
	// generated with a default one. When false such types yield ErrNoGenerator.
	Implicit bool

	// Logger receives debug events. Nil means slog.Default().
	Logger *slog.Logger
}

// Log returns the configured logger or slog.Default().
func (c Config) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
