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

package typeconfig

import (
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/engine"
	"dirpx.dev/fixture/resolver"
)

// Proxy is a copy-on-write view over a client configuration owned by an
// ancestor context. Every modification is recorded on the proxy; the client
// is never mutated. The effective ignore set is
//
//	(client ignores ∪ local ignores) − includes
//
// where includes are client ignores removed through the proxy.
type Proxy struct {
	client apis.TypeConfig

	mu         sync.RWMutex
	ignored    map[string]struct{}
	includes   map[string]struct{}
	generators map[apis.AttributeKey]apis.Generator
	// nil means read through to the client.
	scanAncestors *bool
	useRegistered *bool
	ctx           apis.Context
}

// Ensure Proxy implements apis.TypeConfig.
var _ apis.TypeConfig = (*Proxy)(nil)

// NewProxy returns a proxy over client. The client may itself be a proxy.
func NewProxy(client apis.TypeConfig) (*Proxy, error) {
	if client == nil {
		return nil, apis.ErrInvalidProxy
	}
	return &Proxy{
		client:     client,
		ignored:    map[string]struct{}{},
		includes:   map[string]struct{}{},
		generators: map[apis.AttributeKey]apis.Generator{},
	}, nil
}

// Client returns the proxied configuration.
func (p *Proxy) Client() apis.TypeConfig { return p.client }

// Type returns the target type of the client.
func (p *Proxy) Type() reflect.Type { return p.client.Type() }

// HasIgnore reports whether name is in the effective ignore set.
func (p *Proxy) HasIgnore(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if _, ok := p.includes[name]; ok {
		return false
	}
	if _, ok := p.ignored[name]; ok {
		return true
	}
	return p.client.HasIgnore(name)
}

// Ignores returns the effective ignore set, sorted.
func (p *Proxy) Ignores() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	set := maps.Clone(p.ignored)
	for _, n := range p.client.Ignores() {
		set[n] = struct{}{}
	}
	for n := range p.includes {
		delete(set, n)
	}
	return slices.Sorted(maps.Keys(set))
}

// AddIgnores ignores names through the proxy. Any pending include of a name
// is cancelled; a name the client does not ignore is also stored locally.
func (p *Proxy) AddIgnores(names ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, n := range names {
		delete(p.includes, n)
		if p.client.HasIgnore(n) {
			continue
		}
		p.ignored[n] = struct{}{}
	}
}

// RemoveIgnores stops ignoring names through the proxy. A name the client
// ignores is recorded as an include.
func (p *Proxy) RemoveIgnores(names ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, n := range names {
		delete(p.ignored, n)
		if p.client.HasIgnore(n) {
			p.includes[n] = struct{}{}
		}
	}
}

// SetGenerator records a local override; the client keeps its own.
// A nil generator removes the local override only.
func (p *Proxy) SetGenerator(name string, g apis.Generator) error {
	attr, ok := resolver.Lookup(p.Type(), name)
	if !ok {
		return errors.Wrapf(apis.ErrAttributeNotFound, "%v.%s", p.Type(), name)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if g == nil {
		delete(p.generators, attr.Key())
		return nil
	}
	p.generators[attr.Key()] = g
	return nil
}

// Generator returns the local override, or the client's.
func (p *Proxy) Generator(key apis.AttributeKey) (apis.Generator, bool) {
	p.mu.RLock()
	g, ok := p.generators[key]
	p.mu.RUnlock()
	if ok {
		return g, true
	}
	return p.client.Generator(key)
}

// Generators returns the client overrides shadowed by the local ones.
func (p *Proxy) Generators() map[apis.AttributeKey]apis.Generator {
	out := p.client.Generators()
	p.mu.RLock()
	defer p.mu.RUnlock()
	maps.Copy(out, p.generators)
	return out
}

// ScanAncestors returns the local policy, or the client's when unset.
func (p *Proxy) ScanAncestors() bool {
	p.mu.RLock()
	v := p.scanAncestors
	p.mu.RUnlock()
	if v != nil {
		return *v
	}
	return p.client.ScanAncestors()
}

// UseRegisteredForAncestors returns the local policy, or the client's when unset.
func (p *Proxy) UseRegisteredForAncestors() bool {
	p.mu.RLock()
	v := p.useRegistered
	p.mu.RUnlock()
	if v != nil {
		return *v
	}
	return p.client.UseRegisteredForAncestors()
}

// SetScanAncestors sets the policy on the proxy only.
func (p *Proxy) SetScanAncestors(scan bool) {
	p.mu.Lock()
	p.scanAncestors = &scan
	p.mu.Unlock()
}

// SetUseRegisteredForAncestors sets the policy on the proxy only.
func (p *Proxy) SetUseRegisteredForAncestors(use bool) {
	p.mu.Lock()
	p.useRegistered = &use
	p.mu.Unlock()
}

// Bind attaches the proxy to the child context that owns it.
func (p *Proxy) Bind(ctx apis.Context) {
	p.mu.Lock()
	p.ctx = ctx
	p.mu.Unlock()
}

// Context returns the bound context, or nil.
func (p *Proxy) Context() apis.Context {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ctx
}

// Generate populates a new instance with the effective configuration under
// the proxy's own context.
func (p *Proxy) Generate(tempIgnores ...string) (any, error) {
	v, err := engine.Populate(p.Context(), p, tempIgnores)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// Clone flattens the effective configuration into an unbound Config.
func (p *Proxy) Clone() apis.TypeConfig {
	out := newConfig(p.Type())
	for _, n := range p.Ignores() {
		out.ignored[n] = struct{}{}
	}
	out.generators = p.Generators()
	out.scanAncestors = p.ScanAncestors()
	out.useRegistered = p.UseRegisteredForAncestors()
	return out
}
