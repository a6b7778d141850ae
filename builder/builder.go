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
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/guard"
	"dirpx.dev/nsx/resolver"
	"dirpx.dev/nsx/strategy"
	"dirpx.dev/nsx/tables"
)

// Option configures a builder.
type Option func(*builder)

// WithLogger sets the logger handed to everything the builder constructs.
func WithLogger(l *log.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates and returns a new instance of an apis.Builder.
func New(opts ...Option) apis.Builder {
	b := &builder{logger: log.New(io.Discard)}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// builder holds construction options only; it keeps no state between builds.
type builder struct {
	logger *log.Logger
}

// BuildTables orders the compiled-in layers by cfg.Precedence and puts the
// overlay, if any, in front. Compiled layers must not overlap unless they
// declare it; the overlay may override any of them. No target may be
// remapped again anywhere in the result.
func (b *builder) BuildTables(cfg apis.Config) ([]apis.Table, error) {
	layers, err := tables.Compiled()
	if err != nil {
		return nil, err
	}
	ordered, err := tables.Order(layers, cfg.Precedence)
	if err != nil {
		return nil, err
	}
	if err := tables.CheckOverlaps(ordered); err != nil {
		return nil, err
	}

	overlay, err := tables.Overlay(cfg.Overlay)
	if err != nil {
		return nil, err
	}
	out := ordered
	if overlay != nil {
		out = append([]apis.Table{overlay}, ordered...)
	}
	if err := tables.CheckSingleHop(out); err != nil {
		return nil, err
	}

	for _, t := range out {
		b.logger.Debug("layer", "name", t.Name(), "entries", t.Count())
	}
	return out, nil
}

// BuildResolver returns a resolver consulting tables in the given order.
func (b *builder) BuildResolver(_ apis.Config, tbls []apis.Table) (apis.Resolver, error) {
	if len(tbls) == 0 {
		b.logger.Warn("resolver has no layers; every path resolves as not found")
	}
	return resolver.New(strategy.FromTables(tbls)...), nil
}

// BuildGuard returns the allow-list guard for tables.
func (b *builder) BuildGuard(cfg apis.Config, tbls []apis.Table) (apis.Guard, error) {
	g, err := guard.New(cfg, tbls, guard.WithLogger(b.logger))
	if err != nil {
		return nil, fmt.Errorf("build guard: %w", err)
	}
	return g, nil
}
