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

// Attribute is a generation-eligible struct field.
type Attribute struct {
	// Name is the Go field name.
	Name string
	// Type is the declared field type.
	Type reflect.Type
	// Owner is the struct type that declares the field.
	Owner reflect.Type
	// Field is the reflect descriptor, relative to Owner.
	Field reflect.StructField
}

// Key returns the identity of the attribute for map keying.
func (a Attribute) Key() AttributeKey {
	return AttributeKey{Owner: a.Owner, Name: a.Name}
}

// String returns "Owner.Name".
func (a Attribute) String() string {
	if a.Owner == nil {
		return a.Name
	}
	return a.Owner.String() + "." + a.Name
}

// AttributeKey identifies an attribute. Two fields with the same name on
// different levels of an embedding chain are distinct keys.
type AttributeKey struct {
	Owner reflect.Type
	Name  string
}

// Ancestor is an embedded struct field, the Go counterpart of a super type.
type Ancestor struct {
	// Field is the embedded field descriptor, relative to the embedding type.
	Field reflect.StructField
	// Type is the embedded struct type with any pointer stripped.
	Type reflect.Type
	// Pointer reports whether the embedding is *Type.
	Pointer bool
}
