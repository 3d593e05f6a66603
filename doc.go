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

// Package fixture generates populated instances of Go struct types for tests.
//
// A caller describes, per struct type, how instances are filled: which
// attributes are never generated, which attributes use a dedicated generator,
// and whether embedded struct levels are populated. Everything else is filled
// from built-in generators (numbers, strings, time.Time, uuid.UUID and so on),
// enum value sets, collections of those, or by recursing into other
// configured struct types.
//
// # Design
//
// The module is layered:
//
//   - resolver lists the generation-eligible attributes of a struct type,
//     level by level along its embedding chain.
//
//   - strategy plans, once per type, where a value of that type comes from
//     (scalar, enum, list, array, map, pointer, nested struct) and hosts the
//     built-in generators and generator constructors such as IntRange or
//     StringFrom.
//
//   - typeconfig holds per-type configurations (Config) and the copy-on-write
//     Proxy that child contexts use to scope changes to themselves.
//
//   - engine populates an instance from a configuration, in precedence order:
//     attribute override, type capability, enum, collection shape, recursion.
//
//   - mockctx implements contexts: a root holds configurations, a child reads
//     through to its parent and records its own modifications on proxies.
//
// # Contexts
//
// Configurations are registered once per context chain:
//
//	ctx := mockctx.Default()
//	_ = ctx.Register(typeconfig.For[User]().
//		Ignore("Password").
//		Field("Age", strategy.IntRange(18, 99)).
//		MustBuild())
//
//	u, err := fixture.GenerateIn[User](ctx)
//
// A child context sees every configuration of its parent. The first time a
// child accesses an inherited configuration it stores a proxy over it, so
//
//	child := ctx.CreateChild()
//	cfg, _ := child.Configuration(fixture.TypeOf[User]())
//	cfg.RemoveIgnores("Password")
//
// changes generation in child only. Temporary ignores skip attributes for a
// single call:
//
//	u, err := fixture.GenerateIn[User](child, "Email")
//
// # Embedded structs
//
// An embedded struct (T or *T) is an ancestor level. With ScanAncestors set
// (the default) its attributes are populated too. With
// UseRegisteredForAncestors set (the default) and a configuration registered
// for the embedded type, that level is populated through it, with the
// ignores and overrides of the type being generated taking precedence.
//
// # Global API
//
// The package keeps a process-wide root context in an atomically published
// snapshot used by Register, Generate and Copy. Readers never
// lock; SetConfig, SetBuilder, SetRegistry and SetAll build a new snapshot
// under a short mutex and publish it. SetConfig rebuilds the registry from the
// previous one through the Builder, cloning every configuration, unless the
// registry was pinned by SetRegistry or PinRegistry.
//
// # Limits
//
// Nested generation is bounded by Config.MaxDepth; a type graph that
// references itself without an ignore fails with apis.ErrRecursionLimit.
// Unconfigured struct types are generated only when Config.Implicit is set.
package fixture
