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

package config

import (
	"log/slog"

	"dirpx.dev/fixture/apis"
)

const (
	// DefaultListSize represents the default for ListSize.
	// Every generated slice and map gets this many elements.
	DefaultListSize = 8
	// DefaultStringLength represents the default for StringLength.
	DefaultStringLength = 8
	// DefaultMaxDepth represents the default for MaxDepth.
	// A value of 32 is far deeper than any realistic fixture graph.
	DefaultMaxDepth = 32
	// DefaultImplicit represents the default for Implicit.
	// When false, only registered struct types are generated.
	DefaultImplicit = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		ListSize:     DefaultListSize,
		StringLength: DefaultStringLength,
		MaxDepth:     DefaultMaxDepth,
		Implicit:     DefaultImplicit,
	}
}

// sanitize resets negative sizes and a non-positive depth to their defaults.
func sanitize(cfg apis.Config) apis.Config {
	if cfg.ListSize < 0 {
		cfg.ListSize = DefaultListSize
	}
	if cfg.StringLength < 0 {
		cfg.StringLength = DefaultStringLength
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithListSize sets the ListSize option.
// A negative value resets to the default; zero produces empty collections.
func WithListSize(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.ListSize = DefaultListSize
			return
		}
		c.ListSize = n
	}
}

// WithStringLength sets the StringLength option.
// A negative value resets to the default.
func WithStringLength(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.StringLength = DefaultStringLength
			return
		}
		c.StringLength = n
	}
}

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(depth int) Option {
	return func(c *apis.Config) {
		if depth <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = depth
	}
}

// WithImplicit sets the Implicit option.
func WithImplicit(implicit bool) Option {
	return func(c *apis.Config) {
		c.Implicit = implicit
	}
}

// WithLogger sets the Logger option.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
