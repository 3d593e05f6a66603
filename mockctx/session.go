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

	"dirpx.dev/fixture/apis"
)

// session is the context handed to generators and the engine while a value
// is being generated. It counts nesting so that self-referencing type graphs
// stop at Config.MaxDepth instead of recursing forever. A session is
// immutable; every nested call derives a new one.
type session struct {
	*Context
	depth int
}

var _ apis.Context = session{}

// Generate generates t one level deeper.
func (s session) Generate(t reflect.Type, tempIgnores ...string) (any, error) {
	return s.Context.generate(s.depth+1, t, tempIgnores)
}

// GenerateExtended is Generate with an extended configuration.
func (s session) GenerateExtended(t reflect.Type, ext apis.Extender, tempIgnores ...string) (any, error) {
	return s.Context.generateExtended(s.depth+1, t, ext, tempIgnores)
}

// GenerateWith runs g one level deeper.
func (s session) GenerateWith(g apis.Generator, t reflect.Type) (any, error) {
	return s.Context.generateWith(s.depth+1, g, t)
}

// GenerateFrom generates t from base data one level deeper.
func (s session) GenerateFrom(t reflect.Type, data map[string]any) (any, error) {
	return s.Context.generateFrom(s.depth+1, t, data)
}

// GenerateFromYAML decodes doc and calls GenerateFrom.
func (s session) GenerateFromYAML(t reflect.Type, doc []byte) (any, error) {
	data, err := decodeYAML(doc)
	if err != nil {
		return nil, err
	}
	return s.GenerateFrom(t, data)
}
