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

package engine

import (
	"reflect"

	"dirpx.dev/fixture/apis"
)

// layered presents the configuration of an embedded level under the
// configuration of the type being generated. top wins: its ignores add to
// base's and its overrides shadow base's. Policies come from base, the level
// being populated.
type layered struct {
	top  apis.View
	base apis.View
}

var _ apis.View = layered{}

// Type returns the type being generated.
func (l layered) Type() reflect.Type { return l.top.Type() }

func (l layered) HasIgnore(name string) bool {
	return l.top.HasIgnore(name) || l.base.HasIgnore(name)
}

func (l layered) Generator(key apis.AttributeKey) (apis.Generator, bool) {
	if g, ok := l.top.Generator(key); ok {
		return g, true
	}
	return l.base.Generator(key)
}

func (l layered) ScanAncestors() bool { return l.base.ScanAncestors() }

func (l layered) UseRegisteredForAncestors() bool { return l.base.UseRegisteredForAncestors() }
