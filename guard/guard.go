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

package guard

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/tables"
	upath "dirpx.dev/nsx/utils/path"
)

// Reason explains a refusal.
type Reason string

const (
	// ReasonNamespace: the payload path starts outside the permitted roots.
	ReasonNamespace Reason = "namespace not permitted"
	// ReasonPathLoad: the root may only be loaded through a mapping and none matched.
	ReasonPathLoad Reason = "root loads only through a mapping"
	// ReasonNotAllowed: the located class is not on the allow-list.
	ReasonNotAllowed Reason = "class not on the allow-list"
)

// RefusalError is returned by Admit. It matches apis.ErrLoadRefused with errors.Is.
type RefusalError struct {
	// Path is the path as it appeared in the payload.
	Path apis.Path
	// Target is the located path that was checked; equal to Path when unmapped.
	Target apis.Path
	// Reason says which check failed.
	Reason Reason
}

// Error implements error.
func (e *RefusalError) Error() string {
	if e.Target != nil && !e.Target.Equal(e.Path) {
		return fmt.Sprintf("%s: %s (located at %s): %s", apis.ErrLoadRefused, e.Path, e.Target, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", apis.ErrLoadRefused, e.Path, e.Reason)
}

// Unwrap returns apis.ErrLoadRefused.
func (e *RefusalError) Unwrap() error {
	return apis.ErrLoadRefused
}

// Option configures a guard.
type Option func(*guard)

// WithLogger sets the logger refusals are reported to.
func WithLogger(l *log.Logger) Option {
	return func(g *guard) {
		if l != nil {
			g.logger = l
		}
	}
}

// New constructs an apis.Guard. The allow-list is every mapping target in
// layers plus cfg.Allow plus whatever cfg.Rules accept.
func New(cfg apis.Config, layers []apis.Table, opts ...Option) (apis.Guard, error) {
	g := &guard{
		namespaces: toSet(cfg.Namespaces),
		denied:     toSet(cfg.PathLoadDenied),
		allow:      make(map[string]struct{}),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	for _, p := range tables.Targets(layers) {
		g.allow[upath.Key(p)] = struct{}{}
	}
	for _, s := range cfg.Allow {
		p, err := upath.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("allow entry: %w", err)
		}
		g.allow[upath.Key(p)] = struct{}{}
	}
	for _, src := range cfg.Rules {
		r, err := compileRule(src)
		if err != nil {
			return nil, err
		}
		g.rules = append(g.rules, r)
	}
	return g, nil
}

// guard is immutable after New.
type guard struct {
	namespaces map[string]struct{}
	denied     map[string]struct{}
	// allow is keyed by upath.Key, so membership is segment-wise.
	allow      map[string]struct{}
	rules      []rule
	logger     *log.Logger
}

// Ensure guard implements apis.Guard.
var _ apis.Guard = (*guard)(nil)

// Admit applies, in order: the root namespace check; for paths no layer
// held, the load-through-mapping-only roots; the allow-list check on the
// located path.
func (g *guard) Admit(orig apis.Path, res apis.Resolution) error {
	if err := upath.Validate(orig); err != nil {
		return err
	}
	target := res.Target(orig)

	if _, ok := g.namespaces[orig.Root()]; !ok {
		return g.refuse(orig, target, ReasonNamespace)
	}
	// A layer that held the key (even as a self-mapping) counts as loading
	// through a mapping.
	if res.Layer == "" {
		if _, ok := g.denied[orig.Root()]; ok {
			return g.refuse(orig, target, ReasonPathLoad)
		}
	}
	if !g.Allowed(target) {
		return g.refuse(orig, target, ReasonNotAllowed)
	}
	return nil
}

// Allowed reports whether p is on the allow-list or accepted by a rule.
// Invalid paths are never allowed. A rule that fails to evaluate does not
// accept.
func (g *guard) Allowed(p apis.Path) bool {
	if upath.Validate(p) != nil {
		return false
	}
	if _, ok := g.allow[upath.Key(p)]; ok {
		return true
	}
	for _, r := range g.rules {
		ok, err := r.match(p)
		if err != nil {
			g.logger.Error("allow rule failed", "rule", r.src, "path", p.String(), "err", err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

func (g *guard) refuse(orig, target apis.Path, reason Reason) error {
	g.logger.Warn("load refused", "path", orig.String(), "target", target.String(), "reason", string(reason))
	return &RefusalError{Path: orig.Clone(), Target: target.Clone(), Reason: reason}
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, s := range items {
		out[s] = struct{}{}
	}
	return out
}
