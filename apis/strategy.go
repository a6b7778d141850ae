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

// Strategy is one resolution step. A Resolver chains strategies in
// precedence order; the first one that handles a path decides.
type Strategy interface {
	// Name identifies the step, usually the layer name.
	Name() string
	// TryResolve returns (target, true) if the step holds p; otherwise
	// (nil, false) to fall through.
	TryResolve(p Path) (target Path, handled bool)
}
