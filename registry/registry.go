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

package registry

import (
	"errors"
	"fmt"
	"sort"

	"dirpx.dev/nsx/apis"
	upath "dirpx.dev/nsx/utils/path"
)

var (
	// ErrEmptyName is returned when a table is given an empty layer name.
	ErrEmptyName = errors.New("nsx(registry): empty layer name provided")
	// ErrConflictingRegistration indicates an attempt to register a key
	// twice with different targets.
	ErrConflictingRegistration = errors.New("nsx(registry): conflicting path registration")
	// ErrUnknownShadow indicates a declared overlap for a key the table
	// does not hold.
	ErrUnknownShadow = errors.New("nsx(registry): shadowed path is not a key of the table")
)

// New constructs an immutable Table named name from entries.
// Registering the same (from, to) pair more than once is idempotent;
// the same key with another target is ErrConflictingRegistration.
// shadows lists keys the table deliberately shares with other layers.
func New(name string, entries []apis.Entry, shadows ...apis.Path) (apis.Table, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	t := &table{
		name:    name,
		m:       make(map[string]apis.Path, len(entries)),
		shadows: make(map[string]struct{}, len(shadows)),
	}
	for _, e := range entries {
		if err := t.register(e.From, e.To); err != nil {
			return nil, err
		}
	}
	for _, p := range shadows {
		if err := upath.Validate(p); err != nil {
			return nil, fmt.Errorf("layer %q overlap: %w", name, err)
		}
		k := upath.Key(p)
		if _, ok := t.m[k]; !ok {
			return nil, fmt.Errorf("%w: %s in layer %q", ErrUnknownShadow, p, name)
		}
		t.shadows[k] = struct{}{}
	}

	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].From.String() < t.entries[j].From.String()
	})
	return t, nil
}

// table is a map-backed Table. It is never written after New returns,
// so reads need no synchronization.
type table struct {
	// name is the layer name.
	name string
	// m maps upath.Key(from) to the current path.
	m map[string]apis.Path
	// shadows holds keys of declared cross-layer overlaps.
	shadows map[string]struct{}
	// entries is the sorted snapshot backing Entries.
	entries []apis.Entry
}

// register adds one association during construction.
func (t *table) register(from, to apis.Path) error {
	if err := upath.Validate(from); err != nil {
		return fmt.Errorf("layer %q key: %w", t.name, err)
	}
	if err := upath.Validate(to); err != nil {
		return fmt.Errorf("layer %q target for %s: %w", t.name, from, err)
	}

	k := upath.Key(from)
	if old, ok := t.m[k]; ok {
		if old.Equal(to) {
			return nil // idempotent re-registration
		}
		return fmt.Errorf("%w: %s -> %s and %s in layer %q",
			ErrConflictingRegistration, from, old, to, t.name)
	}

	to = to.Clone()
	t.m[k] = to
	t.entries = append(t.entries, apis.Entry{From: from.Clone(), To: to})
	return nil
}

// Name returns the layer name.
func (t *table) Name() string { return t.name }

// Lookup returns a copy of the target recorded for the exact key p.
// Invalid paths never match.
func (t *table) Lookup(p apis.Path) (apis.Path, bool) {
	if upath.Validate(p) != nil {
		return nil, false
	}
	to, ok := t.m[upath.Key(p)]
	if !ok {
		return nil, false
	}
	return to.Clone(), true
}

// Shadows reports whether p is a declared overlap.
func (t *table) Shadows(p apis.Path) bool {
	if upath.Validate(p) != nil {
		return false
	}
	_, ok := t.shadows[upath.Key(p)]
	return ok
}

// Entries returns a deep copy of the sorted snapshot.
func (t *table) Entries() []apis.Entry {
	out := make([]apis.Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = apis.Entry{From: e.From.Clone(), To: e.To.Clone()}
	}
	return out
}

// Count returns the number of entries.
func (t *table) Count() int { return len(t.entries) }
