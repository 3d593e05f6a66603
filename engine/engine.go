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
	"log/slog"
	"math/rand/v2"
	"reflect"

	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/config"
	"dirpx.dev/fixture/resolver"
	"dirpx.dev/fixture/strategy"
)

// Populate creates a new instance of view.Type() and fills every
// generation-eligible attribute. The returned value is the addressable struct,
// not a pointer to it.
//
// ctx may be nil, in which case only built-in capabilities, enums and
// collections of those are available: nested structs fail with ErrNoGenerator.
func Populate(ctx apis.Context, view apis.View, tempIgnores []string) (reflect.Value, error) {
	return populate(ctx, view, tempIgnores, nil)
}

func populate(ctx apis.Context, view apis.View, tempIgnores []string, data map[string]any) (reflect.Value, error) {
	if view == nil {
		return reflect.Value{}, apis.ErrNilConfiguration
	}
	t := view.Type()
	if t == nil || t.Kind() != reflect.Struct {
		return reflect.Value{}, errors.Wrapf(apis.ErrInstantiation, "type %v is not a struct", t)
	}
	p := newPopulator(ctx, tempIgnores, data)
	ptr := reflect.New(t)
	if err := p.fill(ptr, t, view, map[reflect.Type]bool{t: true}); err != nil {
		return reflect.Value{}, err
	}
	return ptr.Elem(), nil
}

// populator carries the per-call state of one population.
type populator struct {
	ctx  apis.Context
	cfg  apis.Config
	log  *slog.Logger
	temp map[string]bool
	data map[string]any
}

func newPopulator(ctx apis.Context, tempIgnores []string, data map[string]any) *populator {
	cfg := config.DefaultConfig()
	if ctx != nil {
		cfg = ctx.Config()
	}
	p := &populator{ctx: ctx, cfg: cfg, log: cfg.Log(), data: data}
	if len(tempIgnores) > 0 {
		p.temp = make(map[string]bool, len(tempIgnores))
		for _, n := range tempIgnores {
			p.temp[n] = true
		}
	}
	return p
}

// fill populates the struct at ptr (a *t) level by level: own attributes
// first, then every embedded ancestor. path holds the struct levels already on
// the current embedding chain.
func (p *populator) fill(ptr reflect.Value, t reflect.Type, view apis.View, path map[reflect.Type]bool) error {
	base := ptr.UnsafePointer()
	for _, attr := range resolver.Own(t) {
		if p.data != nil {
			if raw, ok := p.data[attr.Name]; ok {
				if err := p.fromData(base, attr, raw); err != nil {
					return err
				}
				continue
			}
		}
		if p.temp[attr.Name] || view.HasIgnore(attr.Name) {
			p.log.Debug("fixture: attribute skipped", "attribute", attr.String())
			continue
		}
		v, err := p.resolve(view, attr)
		if err != nil {
			return err
		}
		if err = assign(base, attr, v); err != nil {
			return err
		}
	}

	if !view.ScanAncestors() {
		return nil
	}
	for _, anc := range resolver.Ancestors(t) {
		if path[anc.Type] {
			continue
		}
		aview := view
		if view.UseRegisteredForAncestors() && p.ctx != nil && anc.Type != t {
			if cfg, ok := p.ctx.Configuration(anc.Type); ok {
				aview = layered{top: view, base: cfg}
			}
		}
		path[anc.Type] = true
		err := p.fill(ancestorPointer(base, anc), anc.Type, aview, path)
		delete(path, anc.Type)
		if err != nil {
			return err
		}
	}
	return nil
}

// resolve produces the value of one attribute by precedence: the attribute
// override, then the type-derived sources of Value.
func (p *populator) resolve(view apis.View, attr apis.Attribute) (any, error) {
	if g, ok := view.Generator(attr.Key()); ok {
		target := attr.Type
		if target.Kind() == reflect.Slice {
			target = target.Elem()
		}
		v, err := g.Generate(p.ctx, target)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %s", attr)
		}
		return v, nil
	}
	v, err := p.value(attr.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "attribute %s", attr)
	}
	return v, nil
}

// Value produces a value of t without any attribute override: a context
// capability (registered type generator or built-in), then an enum pick,
// then a collection or pointer shape, then recursion through ctx.Generate.
func Value(ctx apis.Context, t reflect.Type) (any, error) {
	return newPopulator(ctx, nil, nil).value(t)
}

func (p *populator) value(t reflect.Type) (any, error) {
	if g, ok := p.capability(t); ok {
		return g.Generate(p.ctx, t)
	}

	s := strategy.Plan(t)
	switch s.Kind {
	case strategy.Enum:
		if len(s.Values) == 0 {
			return nil, errors.Wrapf(apis.ErrEmptyEnumeration, "enum %v", t)
		}
		return s.Values[rand.IntN(len(s.Values))], nil

	case strategy.Scalar:
		g, base, _ := strategy.ForKind(t.Kind())
		v, err := g.Generate(p.ctx, base)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(v).Convert(t).Interface(), nil

	case strategy.List:
		out := reflect.MakeSlice(t, p.cfg.ListSize, p.cfg.ListSize)
		for i := range p.cfg.ListSize {
			if err := p.set(out.Index(i), s.Elem); err != nil {
				return nil, err
			}
		}
		return out.Interface(), nil

	case strategy.Array:
		out := reflect.New(t).Elem()
		for i := range s.Len {
			if err := p.set(out.Index(i), s.Elem); err != nil {
				return nil, err
			}
		}
		return out.Interface(), nil

	case strategy.Map:
		out := reflect.MakeMapWithSize(t, p.cfg.ListSize)
		for range p.cfg.ListSize {
			k := reflect.New(s.Key).Elem()
			if err := p.set(k, s.Key); err != nil {
				return nil, err
			}
			v := reflect.New(s.Elem).Elem()
			if err := p.set(v, s.Elem); err != nil {
				return nil, err
			}
			out.SetMapIndex(k, v)
		}
		return out.Interface(), nil

	case strategy.Pointer:
		out := reflect.New(s.Elem)
		if err := p.set(out.Elem(), s.Elem); err != nil {
			return nil, err
		}
		return out.Interface(), nil

	case strategy.Recurse:
		if p.ctx == nil {
			return nil, errors.Wrapf(apis.ErrNoGenerator, "type %v outside of a context", t)
		}
		return p.ctx.Generate(t)
	}
	return nil, errors.Wrapf(apis.ErrNoGenerator, "type %v", t)
}

// set generates a value of t into dst.
func (p *populator) set(dst reflect.Value, t reflect.Type) error {
	v, err := p.value(t)
	if err != nil {
		return err
	}
	return store(dst, v)
}

func (p *populator) capability(t reflect.Type) (apis.Generator, bool) {
	if p.ctx != nil {
		return p.ctx.Capability(t)
	}
	return strategy.Builtin(t)
}
