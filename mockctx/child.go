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

package mockctx

import (
	"reflect"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/typeconfig"
)

// Configuration returns the configuration of t visible from c.
//
// A configuration owned by an ancestor is never returned directly: the first
// access from a child stores a proxy over it in the child's registry, bound to
// the child, and every later access returns that same proxy. Concurrent first
// accesses agree on a single proxy.
func (c *Context) Configuration(t reflect.Type) (apis.TypeConfig, bool) {
	if t == nil {
		return nil, false
	}
	if cfg, ok := c.reg.Lookup(t); ok {
		return cfg, true
	}
	if c.parent == nil {
		return nil, false
	}
	client, ok := c.parent.Configuration(t)
	if !ok {
		return nil, false
	}
	proxy, err := typeconfig.NewProxy(client)
	if err != nil {
		return nil, false
	}
	proxy.Bind(c)
	actual, loaded := c.reg.LoadOrStore(t, proxy)
	if actual == nil {
		return nil, false
	}
	if !loaded {
		c.cfg.Log().Debug("fixture: proxy materialized", "type", t.String())
	}
	return actual, true
}
