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

package reflect

import "reflect"

// Coerce adapts a generated value to t.
//
// A nil value becomes the zero value of t. A value assignable to t is returned
// as is. A value of the same kind that is convertible to t (a named type and its
// underlying type, for example) is converted. Everything else fails.
func Coerce(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		return reflect.Zero(t), true
	}
	return CoerceValue(reflect.ValueOf(v), t)
}

// CoerceValue is Coerce for an already reflected value.
func CoerceValue(rv reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if !rv.IsValid() {
		return reflect.Zero(t), true
	}
	vt := rv.Type()
	if vt.AssignableTo(t) {
		return rv, true
	}
	if vt.Kind() == t.Kind() && vt.ConvertibleTo(t) {
		return rv.Convert(t), true
	}
	return reflect.Value{}, false
}
