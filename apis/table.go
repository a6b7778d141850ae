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

// Table is one historical compatibility layer: an immutable mapping from a
// legacy Path to the Path its class lives at now.
// Implementations must be safe for concurrent reads.
type Table interface {
	// Name is the layer name used in precedence lists and diagnostics.
	Name() string
	// Lookup returns the current path recorded for the exact key p.
	Lookup(p Path) (target Path, ok bool)
	// Shadows reports whether p is a key this table deliberately shares with
	// another layer. Such overlaps resolve by precedence instead of failing
	// table-set construction.
	Shadows(p Path) bool
	// Entries returns a snapshot ordered by dotted key.
	Entries() []Entry
	// Count returns the number of entries.
	Count() int
}

// Entry is a single (legacy, current) association in a Table snapshot.
type Entry struct {
	// From is the path as recorded at serialization time.
	From Path
	// To is the path the class is constructed from now.
	To Path
}
