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

package resolver

import (
	"dirpx.dev/nsx/apis"
	upath "dirpx.dev/nsx/utils/path"
)

// New constructs an apis.Resolver that tries the given strategies in order,
// highest precedence first. Nil strategies are ignored. The returned resolver
// is safe for concurrent use provided the strategies are.
func New(strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Resolve validates p, then runs strategies in order until one handles it.
// Resolution is single hop: the answer is never fed back into the chain.
// A strategy that maps p onto itself ends the walk with NotFound.
func (r chain) Resolve(p apis.Path) (apis.Resolution, error) {
	if err := upath.Validate(p); err != nil {
		return apis.Resolution{}, err
	}
	for _, s := range r.strats {
		target, ok := s.TryResolve(p)
		if !ok {
			continue
		}
		if target.Equal(p) {
			return apis.Resolution{Status: apis.NotFound, Layer: s.Name()}, nil
		}
		return apis.Resolution{Status: apis.Mapped, Path: target, Layer: s.Name()}, nil
	}
	return apis.Resolution{Status: apis.NotFound}, nil
}

// Layers returns strategy names in the order they are consulted.
func (r chain) Layers() []string {
	out := make([]string, len(r.strats))
	for i, s := range r.strats {
		out[i] = s.Name()
	}
	return out
}
