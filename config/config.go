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
	"maps"
	"slices"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/tables"
)

// DefaultNamespaces returns the root segments a payload may start with by
// default: the core distribution and the integration packages whose classes
// the compiled-in layers reference.
func DefaultNamespaces() []string {
	return []string{
		"langchain",
		"langchain_core",
		"langchain_community",
		"langchain_anthropic",
		"langchain_groq",
		"langchain_google_genai",
		"langchain_aws",
		"langchain_openai",
		"langchain_google_vertexai",
		"langchain_mistralai",
		"langchain_fireworks",
		"langchain_xai",
		"langchain_sambanova",
	}
}

// DefaultPathLoadDenied returns the roots whose paths may only be loaded
// through a mapping.
func DefaultPathLoadDenied() []string {
	return []string{"langchain", "langchain_community"}
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// An empty precedence would silently disable every layer.
	if len(cfg.Precedence) == 0 {
		cfg.Precedence = tables.DefaultPrecedence()
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Precedence:     tables.DefaultPrecedence(),
		Namespaces:     DefaultNamespaces(),
		PathLoadDenied: DefaultPathLoadDenied(),
	}
}

// Clone returns a copy of cfg that shares no slices or maps with it.
func Clone(cfg apis.Config) apis.Config {
	cfg.Precedence = slices.Clone(cfg.Precedence)
	cfg.Overlay = maps.Clone(cfg.Overlay)
	cfg.Namespaces = slices.Clone(cfg.Namespaces)
	cfg.PathLoadDenied = slices.Clone(cfg.PathLoadDenied)
	cfg.Allow = slices.Clone(cfg.Allow)
	cfg.Rules = slices.Clone(cfg.Rules)
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithPrecedence sets the layer order, highest precedence first.
// An empty list resets to the default order.
func WithPrecedence(layers ...string) Option {
	return func(c *apis.Config) {
		if len(layers) == 0 {
			c.Precedence = tables.DefaultPrecedence()
			return
		}
		c.Precedence = slices.Clone(layers)
	}
}

// WithOverlay adds dotted legacy -> current mappings consulted before every
// compiled-in layer. Later calls override earlier keys.
func WithOverlay(m map[string]string) Option {
	return func(c *apis.Config) {
		if len(m) == 0 {
			return
		}
		next := make(map[string]string, len(c.Overlay)+len(m))
		maps.Copy(next, c.Overlay)
		maps.Copy(next, m)
		c.Overlay = next
	}
}

// WithNamespaces replaces the permitted root segments.
func WithNamespaces(roots ...string) Option {
	return func(c *apis.Config) {
		c.Namespaces = slices.Clone(roots)
	}
}

// WithExtraNamespaces appends permitted root segments.
func WithExtraNamespaces(roots ...string) Option {
	return func(c *apis.Config) {
		c.Namespaces = append(slices.Clone(c.Namespaces), roots...)
	}
}

// WithPathLoadDenied replaces the roots that may only load through a mapping.
func WithPathLoadDenied(roots ...string) Option {
	return func(c *apis.Config) {
		c.PathLoadDenied = slices.Clone(roots)
	}
}

// WithAllow appends dotted current paths to the allow-list.
func WithAllow(paths ...string) Option {
	return func(c *apis.Config) {
		c.Allow = append(slices.Clone(c.Allow), paths...)
	}
}

// WithRules appends expr-lang allow rules.
func WithRules(rules ...string) Option {
	return func(c *apis.Config) {
		c.Rules = append(slices.Clone(c.Rules), rules...)
	}
}
