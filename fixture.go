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

package fixture

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/builder"
	"dirpx.dev/fixture/config"
)

// init initializes the global fixture state.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.reg = s.bld.BuildRegistry(s.cfg, nil)
	s.ctx = s.bld.BuildContext(s.cfg, s.reg)
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("fixture: builder returned nil registry")
	// ErrNilContext is returned when a builder returns a nil context.
	ErrNilContext = errors.New("fixture: builder returned nil context")
)

// Context returns the global root context.
func Context() apis.Context {
	return st.Load().ctx
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// Register adds cfg to the global context.
func Register(cfg apis.TypeConfig) error {
	return Context().Register(cfg)
}

// RegisterGenerator adds a type-level generator for T to the global context.
func RegisterGenerator[T any](g apis.Generator) error {
	return Context().RegisterGenerator(TypeOf[T](), g)
}

// Child returns a new child of the global context.
func Child() apis.Context {
	return Context().CreateChild()
}

// Copy returns a new root context holding clones of every configuration of
// the global context.
func Copy() (apis.Context, error) {
	s := st.Load()
	return builder.Copy(s.bld, s.ctx)
}

// TypeOf returns the reflect.Type of T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Generate returns a new T from the global context.
func Generate[T any](tempIgnores ...string) (T, error) {
	return GenerateIn[T](Context(), tempIgnores...)
}

// MustGenerate is Generate that panics on error.
func MustGenerate[T any](tempIgnores ...string) T {
	v, err := Generate[T](tempIgnores...)
	if err != nil {
		panic(err)
	}
	return v
}

// GenerateIn returns a new T from ctx.
func GenerateIn[T any](ctx apis.Context, tempIgnores ...string) (T, error) {
	return as[T](ctx.Generate(TypeOf[T](), tempIgnores...))
}

// GenerateExtended returns a new T from ctx generated with the configuration
// ext derives from the current one.
func GenerateExtended[T any](ctx apis.Context, ext apis.Extender, tempIgnores ...string) (T, error) {
	return as[T](ctx.GenerateExtended(TypeOf[T](), ext, tempIgnores...))
}

// GenerateFrom returns a new T from ctx with attribute values taken from data.
func GenerateFrom[T any](ctx apis.Context, data map[string]any) (T, error) {
	return as[T](ctx.GenerateFrom(TypeOf[T](), data))
}

// GenerateFromYAML returns a new T from ctx with attribute values taken from
// a YAML mapping.
func GenerateFromYAML[T any](ctx apis.Context, doc []byte) (T, error) {
	return as[T](ctx.GenerateFromYAML(TypeOf[T](), doc))
}

func as[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	out, ok := v.(T)
	if !ok {
		return zero, errors.Wrapf(apis.ErrAssignment, "generated %T, want %v", v, TypeOf[T]())
	}
	return out, nil
}

// SetAll explicitly sets all global fixture state components.
//
// Nil arguments leave the corresponding component unchanged. A non-nil reg
// is pinned; a nil one is rebuilt from the previous registry.
func SetAll(cfg *apis.Config, reg apis.Registry, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := reg != nil
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg)
	}

	publish(ncfg, nreg, nbld, npreg)
}

// SetConfig sets the global configuration to cfg.
// Unless the registry is pinned it is rebuilt from the current one, so
// registered configurations survive the swap.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nreg := old.reg
	if !old.preg {
		nreg = old.bld.BuildRegistry(cfg, old.reg)
	}
	publish(cfg, nreg, old.bld, old.preg)
}

// SetRegistry sets and pins the global registry.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(old.cfg, reg, old.bld, true)
}

// SetBuilder sets the global builder to b and rebuilds the unpinned layers.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg)
	}
	publish(old.cfg, nreg, b, old.preg)
}

// Reset replaces the global state with an empty registry and the default
// configuration. The builder is kept.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	cfg := config.DefaultConfig()
	publish(cfg, old.bld.BuildRegistry(cfg, nil), old.bld, false)
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops SetConfig and SetBuilder from rebuilding the registry.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, reg: old.reg, ctx: old.ctx, bld: old.bld, preg: true})
}

// UnpinRegistry makes the global registry rebuildable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, reg: old.reg, ctx: old.ctx, bld: old.bld, preg: false})
}

// publish builds the root context over reg and stores the new snapshot.
// Callers must hold buildMu.
func publish(cfg apis.Config, reg apis.Registry, bld apis.Builder, preg bool) {
	// Ensure non-nil reg and ctx.
	if reg == nil {
		panic(ErrNilRegistry)
	}
	ctx := bld.BuildContext(cfg, reg)
	if ctx == nil {
		panic(ErrNilContext)
	}

	// Store the new state atomically.
	st.Store(&state{cfg: cfg, reg: reg, ctx: ctx, bld: bld, preg: preg})
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global fixture state.
var st atomic.Pointer[state]

// state is the global fixture state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the registry of the global root context.
	reg apis.Registry
	// ctx is the global root context.
	ctx apis.Context
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether the reg is pinned.
	preg bool
}
