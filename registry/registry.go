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

package registry

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
)

// New constructs a Registry for one context level. cfg supplies the logger.
func New(cfg apis.Config) apis.Registry {
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration of the owning context.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to *slot.
	m sync.Map
	// count tracks the number of registered entries.
	count int
}

// slot holds what is registered for one type: a configuration or a
// type-level generator, never both.
type slot struct {
	cfg apis.TypeConfig
	gen apis.Generator
}

// Register stores cfg under its target type.
func (r *registry) Register(cfg apis.TypeConfig) error {
	// Validate inputs early.
	if cfg == nil {
		return apis.ErrNilConfiguration
	}
	t := cfg.Type()
	if t == nil {
		return apis.ErrNilType
	}
	if err := r.store(t, &slot{cfg: cfg}); err != nil {
		return err
	}
	r.cfg.Log().Debug("fixture(registry): configuration registered", "type", t.String())
	return nil
}

// RegisterGenerator stores a type-level generator under t.
func (r *registry) RegisterGenerator(t reflect.Type, g apis.Generator) error {
	if t == nil {
		return apis.ErrNilType
	}
	if g == nil {
		return errors.Wrapf(apis.ErrNoGenerator, "fixture(registry): nil generator for %v", t)
	}
	if err := r.store(t, &slot{gen: g}); err != nil {
		return err
	}
	r.cfg.Log().Debug("fixture(registry): generator registered", "type", t.String())
	return nil
}

func (r *registry) store(t reflect.Type, s *slot) error {
	// Fast read path: duplicate check without locking.
	if _, ok := r.m.Load(t); ok {
		return errors.Wrapf(apis.ErrDuplicateRegistration, "fixture(registry): %v", t)
	}

	// Write path: guard with a mutex to keep counter consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.m.Load(t); ok {
		return errors.Wrapf(apis.ErrDuplicateRegistration, "fixture(registry): %v", t)
	}
	r.m.Store(t, s)
	r.count++
	return nil
}

// Lookup returns the configuration stored for t.
func (r *registry) Lookup(t reflect.Type) (apis.TypeConfig, bool) {
	s, ok := r.slot(t)
	if !ok || s.cfg == nil {
		return nil, false
	}
	return s.cfg, true
}

// LookupGenerator returns the type-level generator stored for t.
func (r *registry) LookupGenerator(t reflect.Type) (apis.Generator, bool) {
	s, ok := r.slot(t)
	if !ok || s.gen == nil {
		return nil, false
	}
	return s.gen, true
}

func (r *registry) slot(t reflect.Type) (*slot, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := r.m.Load(t)
	if !ok {
		return nil, false
	}
	return v.(*slot), true
}

// LoadOrStore returns the configuration present for t, or stores cfg.
// When t holds a type-level generator the result is (nil, true).
func (r *registry) LoadOrStore(t reflect.Type, cfg apis.TypeConfig) (apis.TypeConfig, bool) {
	if s, ok := r.slot(t); ok {
		return s.cfg, true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, loaded := r.m.LoadOrStore(t, &slot{cfg: cfg})
	if !loaded {
		r.count++
	}
	return v.(*slot).cfg, loaded
}

// Contains reports whether anything is registered for t.
func (r *registry) Contains(t reflect.Type) bool {
	_, ok := r.slot(t)
	return ok
}

// Entries returns a snapshot for diagnostics/copying (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		s := value.(*slot)
		entries = append(entries, apis.Entry{
			Type:      key.(reflect.Type),
			Config:    s.cfg,
			Generator: s.gen,
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
