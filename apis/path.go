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

package apis

import (
	"slices"
	"strings"
)

// Path is a namespace path as recorded in a serialized payload: module
// segments followed by the class name. Treat it as immutable; tables hand
// out clones.
type Path []string

// String renders the path in dotted form, e.g. "langchain_core.messages.ai.AIMessage".
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Equal reports whether p and o have the same segments in the same order.
func (p Path) Equal(o Path) bool {
	return slices.Equal(p, o)
}

// Clone returns a copy of p that shares no storage with it.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Root returns the first segment (the distribution or top-level package).
func (p Path) Root() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Class returns the last segment.
func (p Path) Class() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Module returns every segment except the class name.
func (p Path) Module() Path {
	if len(p) < 2 {
		return nil
	}
	return p[:len(p)-1 : len(p)-1]
}
