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

package resolver

import (
	"reflect"
	"slices"
	"sync"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/strategy"
	uref "dirpx.dev/fixture/utils/reflect"
)

// entry is the memoized layout of one struct type.
type entry struct {
	own       []apis.Attribute
	ancestors []apis.Ancestor
}

// cache maps reflect.Type to *entry. Types are immutable at runtime so
// entries never need invalidation.
var cache sync.Map

// layout returns the memoized entry for t, computing it on first use.
// Non-struct types get an empty entry.
func layout(t reflect.Type) *entry {
	if t == nil {
		return &entry{}
	}
	if v, ok := cache.Load(t); ok {
		return v.(*entry)
	}
	e := scan(t)
	v, _ := cache.LoadOrStore(t, e)
	return v.(*entry)
}

func scan(t reflect.Type) *entry {
	e := &entry{}
	if t.Kind() != reflect.Struct {
		return e
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if uref.Skipped(f) {
			continue
		}
		if a, ok := ancestorOf(f); ok {
			e.ancestors = append(e.ancestors, a)
			continue
		}
		e.own = append(e.own, apis.Attribute{
			Name:  f.Name,
			Type:  f.Type,
			Owner: t,
			Field: f,
		})
	}
	return e
}

// ancestorOf reports whether f embeds a struct level. An embedded type with
// a built-in generator (time.Time, for example) is an ordinary attribute.
func ancestorOf(f reflect.StructField) (apis.Ancestor, bool) {
	if !f.Anonymous {
		return apis.Ancestor{}, false
	}
	t, ptr := f.Type, false
	if t.Kind() == reflect.Pointer {
		t, ptr = t.Elem(), true
	}
	if t.Kind() != reflect.Struct || strategy.IsBuiltin(t) {
		return apis.Ancestor{}, false
	}
	return apis.Ancestor{Field: f, Type: t, Pointer: ptr}, true
}

// Own returns the attributes declared by t itself, in declaration order.
// Embedded struct levels are excluded; see Ancestors.
func Own(t reflect.Type) []apis.Attribute {
	return slices.Clone(layout(t).own)
}

// Ancestors returns the embedded struct levels directly declared by t.
func Ancestors(t reflect.Type) []apis.Ancestor {
	return slices.Clone(layout(t).ancestors)
}

// Attributes returns the own attributes of t followed, when scanAncestors is
// set, by the attributes of every embedded level, depth-first. Names are not
// deduplicated: the same name on two levels yields two attributes.
func Attributes(t reflect.Type, scanAncestors bool) []apis.Attribute {
	var out []apis.Attribute
	collect(t, scanAncestors, map[reflect.Type]bool{}, &out)
	return out
}

func collect(t reflect.Type, scanAncestors bool, seen map[reflect.Type]bool, out *[]apis.Attribute) {
	if seen[t] {
		return
	}
	seen[t] = true
	e := layout(t)
	*out = append(*out, e.own...)
	if !scanAncestors {
		return
	}
	for _, a := range e.ancestors {
		collect(a.Type, true, seen, out)
	}
}

// Lookup finds an attribute by name, searching declared attributes first and
// inherited ones second.
func Lookup(t reflect.Type, name string) (apis.Attribute, bool) {
	for _, a := range Attributes(t, true) {
		if a.Name == name {
			return a, true
		}
	}
	return apis.Attribute{}, false
}

// Has reports whether name resolves to any attribute of t.
func Has(t reflect.Type, name string) bool {
	_, ok := Lookup(t, name)
	return ok
}
