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
	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
)

// Extend returns a new configuration of the same type as top:
//   - ignores are the union of both sets
//   - overrides of top are kept, overrides of base fill in the attributes
//     top does not override
//   - ancestor policies come from top
//   - the bound context is top's, or base's when top is unbound, so a
//     configuration built fresh over a registered one generates nested
//     types in the registered context
//
// Neither input is modified.
func Extend(top, base apis.TypeConfig) (*Config, error) {
	if top == nil || base == nil {
		return nil, apis.ErrNilConfiguration
	}
	if top.Type() != base.Type() {
		return nil, errors.Wrapf(apis.ErrTypeMismatch, "extend %v with %v", top.Type(), base.Type())
	}
	out := newConfig(top.Type())
	for _, n := range top.Ignores() {
		out.ignored[n] = struct{}{}
	}
	for _, n := range base.Ignores() {
		out.ignored[n] = struct{}{}
	}
	out.generators = top.Generators()
	for k, g := range base.Generators() {
		if _, ok := out.generators[k]; !ok {
			out.generators[k] = g
		}
	}
	out.scanAncestors = top.ScanAncestors()
	out.useRegistered = top.UseRegisteredForAncestors()
	out.ctx = top.Context()
	if out.ctx == nil {
		out.ctx = base.Context()
	}
	return out, nil
}
