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

package nsx

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/builder"
	"dirpx.dev/nsx/config"
)

// init publishes the default snapshot. The compiled-in layers failing to
// build is a programming error.
func init() {
	s, err := build(config.DefaultConfig(), builder.New())
	if err != nil {
		panic(fmt.Errorf("nsx: default snapshot: %w", err))
	}
	st.Store(s)
}

var (
	// ErrNilBuilder is returned when a nil builder is installed.
	ErrNilBuilder = errors.New("nsx: nil builder")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("nsx: builder returned nil resolver")
	// ErrNilGuard is returned when a builder returns a nil guard.
	ErrNilGuard = errors.New("nsx: builder returned nil guard")
)

// Resolve looks p up in the global resolver. It never refuses a path; see
// Locate.
func Resolve(p apis.Path) (apis.Resolution, error) {
	return st.Load().res.Resolve(p)
}

// Locate resolves p and admits the result through the global guard. It
// returns the path a class must be constructed from: the mapped path, or p
// itself when nothing remapped it.
func Locate(p apis.Path) (apis.Path, error) {
	s := st.Load()
	res, err := s.res.Resolve(p)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Admit(p, res); err != nil {
		return nil, err
	}
	return res.Target(p).Clone(), nil
}

// Config returns the global configuration.
func Config() apis.Config {
	return config.Clone(st.Load().cfg)
}

// SetConfig rebuilds tables, resolver and guard for cfg with the current
// builder. On error the previous snapshot stays in place.
func SetConfig(cfg apis.Config) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	s, err := build(cfg, st.Load().bld)
	if err != nil {
		return err
	}
	st.Store(s)
	return nil
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder rebuilds the snapshot with b and the current configuration.
// On error the previous snapshot stays in place.
func SetBuilder(b apis.Builder) error {
	if b == nil {
		return ErrNilBuilder
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	s, err := build(st.Load().cfg, b)
	if err != nil {
		return err
	}
	st.Store(s)
	return nil
}

// SetAll replaces configuration and builder in one step. Nil arguments keep
// the current value. Mainly used by tests to get a deterministic snapshot.
func SetAll(cfg *apis.Config, b apis.Builder) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if b != nil {
		nbld = b
	}

	s, err := build(ncfg, nbld)
	if err != nil {
		return err
	}
	st.Store(s)
	return nil
}

// Tables returns the global layers, highest precedence first.
func Tables() []apis.Table {
	return slices.Clone(st.Load().tables)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// Guard returns the global guard.
func Guard() apis.Guard {
	return st.Load().guard
}

// build assembles a complete snapshot or fails without side effects.
func build(cfg apis.Config, b apis.Builder) (*state, error) {
	cfg = config.Clone(cfg)
	tbls, err := b.BuildTables(cfg)
	if err != nil {
		return nil, err
	}
	res, err := b.BuildResolver(cfg, tbls)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNilResolver
	}
	g, err := b.BuildGuard(cfg, tbls)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGuard
	}
	return &state{cfg: cfg, bld: b, tables: tbls, res: res, guard: g}, nil
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global nsx state.
var st atomic.Pointer[state]

// state is the global nsx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the configuration the snapshot was built from.
	cfg apis.Config
	// bld built every other field.
	bld apis.Builder
	// tables are the layers, highest precedence first.
	tables []apis.Table
	// res walks tables.
	res apis.Resolver
	// guard admits resolved paths.
	guard apis.Guard
}
