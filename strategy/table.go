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

package strategy

import (
	"dirpx.dev/nsx/apis"
)

// NewTableStrategy creates an apis.Strategy that consults a single layer.
func NewTableStrategy(t apis.Table) apis.Strategy {
	return &tableStrategy{t: t}
}

// tableStrategy resolves by exact lookup in one apis.Table.
type tableStrategy struct {
	t apis.Table
}

// Ensure tableStrategy implements apis.Strategy.
var _ apis.Strategy = (*tableStrategy)(nil)

// Name returns the layer name, or "" for a nil table.
func (s *tableStrategy) Name() string {
	if s.t == nil {
		return ""
	}
	return s.t.Name()
}

// TryResolve looks p up in the table. The table rejects invalid paths.
func (s *tableStrategy) TryResolve(p apis.Path) (apis.Path, bool) {
	if s.t == nil {
		return nil, false
	}
	return s.t.Lookup(p)
}

// FromTables wraps each table in a table strategy, preserving order.
// Nil tables are skipped.
func FromTables(tables []apis.Table) []apis.Strategy {
	out := make([]apis.Strategy, 0, len(tables))
	for _, t := range tables {
		if t != nil {
			out = append(out, NewTableStrategy(t))
		}
	}
	return out
}
