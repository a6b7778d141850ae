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

package tables

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/registry"
	upath "dirpx.dev/nsx/utils/path"
)

// LayerOverlay names the caller-supplied table consulted before all others.
const LayerOverlay = "overlay"

var (
	// ErrUnknownLayer is returned when a precedence list names no known layer.
	ErrUnknownLayer = errors.New("nsx(tables): unknown layer")
	// ErrDuplicateLayer is returned when a layer name occurs twice.
	ErrDuplicateLayer = errors.New("nsx(tables): duplicate layer")
	// ErrOverlap is returned when two layers hold the same key and neither
	// declares the overlap.
	ErrOverlap = errors.New("nsx(tables): undeclared key overlap between layers")
	// ErrChainedMapping is returned when a mapping target is itself remapped
	// somewhere else, which would make resolution depend on hop count.
	ErrChainedMapping = errors.New("nsx(tables): mapping target is remapped by another entry")
)

// DefaultPrecedence returns the compiled-in layer order, highest first.
// It mirrors the merge order of the loader the tables come from: the
// foreign-runtime layer overrides the others on shared keys.
func DefaultPrecedence() []string {
	return []string{LayerForeign, LayerLegacy, LayerCore, LayerSerializable}
}

// Order returns the tables named in precedence, in that order. Tables not
// named are dropped.
func Order[T apis.Table](tables []T, precedence []string) ([]apis.Table, error) {
	byName := make(map[string]apis.Table, len(tables))
	for _, t := range tables {
		byName[t.Name()] = t
	}

	out := make([]apis.Table, 0, len(precedence))
	seen := make(map[string]struct{}, len(precedence))
	for _, name := range precedence {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q in precedence", ErrDuplicateLayer, name)
		}
		seen[name] = struct{}{}
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownLayer, name, slices.Sorted(maps.Keys(byName)))
		}
		out = append(out, t)
	}
	return out, nil
}

// Overlay builds the caller-supplied table from dotted legacy -> current
// pairs. It returns nil for an empty map.
func Overlay(m map[string]string) (apis.Table, error) {
	if len(m) == 0 {
		return nil, nil
	}
	entries := make([]apis.Entry, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		from, err := upath.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("overlay key: %w", err)
		}
		to, err := upath.Parse(m[k])
		if err != nil {
			return nil, fmt.Errorf("overlay target for %s: %w", k, err)
		}
		entries = append(entries, apis.Entry{From: from, To: to})
	}
	return registry.New(LayerOverlay, entries)
}

// CheckOverlaps fails if two tables share a key that neither declares as
// shadowed. Declared overlaps are legal and resolve by precedence.
func CheckOverlaps(tables []apis.Table) error {
	for i, hi := range tables {
		for _, lo := range tables[i+1:] {
			for _, e := range lo.Entries() {
				if _, ok := hi.Lookup(e.From); !ok {
					continue
				}
				if hi.Shadows(e.From) || lo.Shadows(e.From) {
					continue
				}
				return fmt.Errorf("%w: %s in %q and %q", ErrOverlap, e.From, hi.Name(), lo.Name())
			}
		}
	}
	return nil
}

// CheckSingleHop fails if any target is a key of some table mapping it to a
// different path. Self-mappings are fine.
func CheckSingleHop(tables []apis.Table) error {
	for _, src := range tables {
		for _, e := range src.Entries() {
			if e.To.Equal(e.From) {
				continue
			}
			for _, t := range tables {
				if next, ok := t.Lookup(e.To); ok && !next.Equal(e.To) {
					return fmt.Errorf("%w: %s -> %s (%q) -> %s (%q)",
						ErrChainedMapping, e.From, e.To, src.Name(), next, t.Name())
				}
			}
		}
	}
	return nil
}

// Targets returns every mapping target across tables, deduplicated by
// segments, ordered by dotted form.
func Targets(tables []apis.Table) []apis.Path {
	set := make(map[string]apis.Path)
	for _, t := range tables {
		for _, e := range t.Entries() {
			set[upath.Key(e.To)] = e.To
		}
	}
	out := slices.Collect(maps.Values(set))
	slices.SortFunc(out, func(a, b apis.Path) int { return strings.Compare(a.String(), b.String()) })
	return out
}

// Check runs CheckOverlaps and CheckSingleHop over tables in precedence order.
func Check(tables []apis.Table) error {
	if err := CheckOverlaps(tables); err != nil {
		return err
	}
	return CheckSingleHop(tables)
}
