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

// Guard is the trust decision made after resolution: may the located class be
// constructed from untrusted input at all.
type Guard interface {
	// Admit checks the resolution of orig. It returns nil when construction
	// may proceed, or an error wrapping ErrLoadRefused.
	Admit(orig Path, res Resolution) error
	// Allowed reports whether the current path p is on the allow-list.
	Allowed(p Path) bool
}
