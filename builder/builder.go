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

package builder

import (
	"github.com/pkg/errors"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/mockctx"
	"dirpx.dev/fixture/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its entries are copied
// into the new registry with cloned configurations, so later changes on either side stay
// invisible to the other.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry) apis.Registry {
	nreg := registry.New(cfg)
	if preg == nil {
		return nreg
	}
	for _, e := range preg.Entries() {
		switch {
		case e.Config != nil:
			_ = nreg.Register(e.Config.Clone())
		case e.Generator != nil:
			_ = nreg.RegisterGenerator(e.Type, e.Generator)
		}
	}
	return nreg
}

// BuildContext builds and returns a root apis.Context over reg. Configurations in reg are
// bound to the new context.
func (b *builder) BuildContext(cfg apis.Config, reg apis.Registry) apis.Context {
	return mockctx.New(cfg, reg)
}

// Copy returns a new root context holding clones of every configuration of ctx.
// Only root contexts can be copied.
func Copy(b apis.Builder, ctx apis.Context) (apis.Context, error) {
	if ctx == nil {
		return nil, errors.Wrap(apis.ErrNilConfiguration, "nil context")
	}
	if ctx.Parent() != nil {
		return nil, errors.Wrap(apis.ErrNotRoot, "copy")
	}
	cfg := ctx.Config()
	return b.BuildContext(cfg, b.BuildRegistry(cfg, ctx.Registry())), nil
}
