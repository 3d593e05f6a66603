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
	"unsafe"

	"github.com/pkg/errors"
	"github.com/viant/xunsafe"

	"dirpx.dev/fixture/apis"
	uref "dirpx.dev/fixture/utils/reflect"
)

// assign stores v into the attribute of the struct at base. Unexported
// attributes are reached through their field offset.
func assign(base unsafe.Pointer, attr apis.Attribute, v any) error {
	rv, ok := uref.Coerce(v, attr.Type)
	if !ok {
		return errors.Wrapf(apis.ErrAssignment, "attribute %s: %T is not assignable to %v", attr, v, attr.Type)
	}
	fieldPtr(base, attr).Set(rv)
	return nil
}

// fieldPtr returns the settable field value of attr in the struct at base.
func fieldPtr(base unsafe.Pointer, attr apis.Attribute) reflect.Value {
	xField := xunsafe.NewField(attr.Field)
	return reflect.NewAt(attr.Type, xField.Pointer(base)).Elem()
}

// ancestorPointer returns a *anc.Type for the embedded level at base,
// allocating it first when the embedding is a nil pointer.
func ancestorPointer(base unsafe.Pointer, anc apis.Ancestor) reflect.Value {
	xField := xunsafe.NewField(anc.Field)
	field := reflect.NewAt(anc.Field.Type, xField.Pointer(base)).Elem()
	if !anc.Pointer {
		return field.Addr()
	}
	if field.IsNil() {
		field.Set(reflect.New(anc.Type))
	}
	return field
}

// store sets v into the settable dst.
func store(dst reflect.Value, v any) error {
	rv, ok := uref.Coerce(v, dst.Type())
	if !ok {
		return errors.Wrapf(apis.ErrAssignment, "%T is not assignable to %v", v, dst.Type())
	}
	dst.Set(rv)
	return nil
}
