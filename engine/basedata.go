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
	"math"
	"reflect"
	"strconv"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
	uref "dirpx.dev/fixture/utils/reflect"
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
	uuidType     = reflect.TypeFor[uuid.UUID]()
)

// PopulateFrom is Populate with base data. An attribute whose name is a key of
// data takes its value from data, even when ignored; a nil entry leaves the
// attribute at its zero value. Other attributes are generated as usual.
//
// Data values are converted to the attribute type: strings are parsed for
// scalar attributes (RFC 3339 for time.Time, Go duration syntax for
// time.Duration), numbers convert between numeric kinds, nested maps populate
// nested structs through ctx.GenerateFrom and lists populate slices and arrays.
func PopulateFrom(ctx apis.Context, view apis.View, data map[string]any) (reflect.Value, error) {
	if data == nil {
		data = map[string]any{}
	}
	return populate(ctx, view, nil, data)
}

func (p *populator) fromData(base unsafe.Pointer, attr apis.Attribute, raw any) error {
	if raw == nil {
		return nil
	}
	rv, err := p.convert(attr.Type, raw)
	if err != nil {
		return errors.Wrapf(err, "attribute %s", attr)
	}
	fieldPtr(base, attr).Set(rv)
	return nil
}

// convert turns a decoded data value into a value of t.
func (p *populator) convert(t reflect.Type, raw any) (reflect.Value, error) {
	if raw == nil {
		return reflect.Zero(t), nil
	}
	if rv, ok := uref.Coerce(raw, t); ok {
		return rv, nil
	}
	if s, ok := raw.(string); ok {
		return parse(t, s)
	}

	rv := reflect.ValueOf(raw)
	switch t.Kind() {
	case reflect.Pointer:
		elem, err := p.convert(t.Elem(), raw)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(t.Elem())
		out.Elem().Set(elem)
		return out, nil

	case reflect.Struct:
		m, ok := raw.(map[string]any)
		if !ok {
			break
		}
		if p.ctx == nil {
			return reflect.Value{}, errors.Wrapf(apis.ErrNoGenerator, "type %v outside of a context", t)
		}
		v, err := p.ctx.GenerateFrom(t, m)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v), nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			break
		}
		n := rv.Len()
		var out reflect.Value
		if t.Kind() == reflect.Slice {
			out = reflect.MakeSlice(t, n, n)
		} else {
			out = reflect.New(t).Elem()
			n = min(n, t.Len())
		}
		for i := range n {
			elem, err := p.convert(t.Elem(), rv.Index(i).Interface())
			if err != nil {
				return reflect.Value{}, errors.Wrapf(err, "index %d", i)
			}
			out.Index(i).Set(elem)
		}
		return out, nil

	case reflect.Map:
		if rv.Kind() != reflect.Map {
			break
		}
		out := reflect.MakeMapWithSize(t, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, err := p.convert(t.Key(), iter.Key().Interface())
			if err != nil {
				return reflect.Value{}, err
			}
			v, err := p.convert(t.Elem(), iter.Value().Interface())
			if err != nil {
				return reflect.Value{}, errors.Wrapf(err, "key %v", iter.Key())
			}
			out.SetMapIndex(k, v)
		}
		return out, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if numeric(rv.Kind()) {
			return number(rv, t)
		}
	}
	return reflect.Value{}, errors.Wrapf(apis.ErrParse, "%T into %v", raw, t)
}

// parse converts text into a scalar of type t.
func parse(t reflect.Type, s string) (reflect.Value, error) {
	var (
		v   any
		err error
	)
	switch {
	case t == timeType:
		v, err = time.Parse(time.RFC3339, s)
	case t == durationType:
		v, err = time.ParseDuration(s)
	case t == uuidType:
		v, err = uuid.Parse(s)
	case t.Kind() == reflect.Pointer:
		var elem reflect.Value
		if elem, err = parse(t.Elem(), s); err == nil {
			out := reflect.New(t.Elem())
			out.Elem().Set(elem)
			return out, nil
		}
	default:
		switch t.Kind() {
		case reflect.String:
			v = s
		case reflect.Bool:
			v, err = strconv.ParseBool(s)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v, err = strconv.ParseInt(s, 10, t.Bits())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			v, err = strconv.ParseUint(s, 10, t.Bits())
		case reflect.Float32, reflect.Float64:
			v, err = strconv.ParseFloat(s, t.Bits())
		default:
			return reflect.Value{}, errors.Wrapf(apis.ErrParse, "text into %v", t)
		}
	}
	if err != nil {
		return reflect.Value{}, errors.Wrapf(apis.ErrParse, "%q into %v: %v", s, t, err)
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != t {
		rv = rv.Convert(t)
	}
	return rv, nil
}

// number converts a numeric value to the numeric type t. A fraction going
// into an integer, a negative value going into an unsigned integer and any
// value outside the range of t fail with ErrParse.
func number(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := asInt(rv)
		if !ok || out.OverflowInt(n) {
			return reflect.Value{}, errors.Wrapf(apis.ErrParse, "%v out of range of %v", rv, t)
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := asUint(rv)
		if !ok || out.OverflowUint(n) {
			return reflect.Value{}, errors.Wrapf(apis.ErrParse, "%v out of range of %v", rv, t)
		}
		out.SetUint(n)
	default:
		f := rv.Convert(reflect.TypeFor[float64]()).Float()
		if out.OverflowFloat(f) {
			return reflect.Value{}, errors.Wrapf(apis.ErrParse, "%v out of range of %v", rv, t)
		}
		out.SetFloat(f)
	}
	return out, nil
}

// asInt returns rv as an int64 when it holds a whole number in range.
func asInt(rv reflect.Value) (int64, bool) {
	switch {
	case rv.CanInt():
		return rv.Int(), true
	case rv.CanUint():
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	default:
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
}

// asUint returns rv as a uint64 when it holds a non-negative whole number in range.
func asUint(rv reflect.Value) (uint64, bool) {
	switch {
	case rv.CanUint():
		return rv.Uint(), true
	case rv.CanInt():
		n := rv.Int()
		return uint64(n), n >= 0
	default:
		f := rv.Float()
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return 0, false
		}
		return uint64(f), true
	}
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
