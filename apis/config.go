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

// Config carries the read-only knobs for building layers and the guard.
// It is passed by value; implementations must not modify its slices or map.
type Config struct {
	// Precedence lists compiled-in layer names, highest precedence first.
	// Layers not listed are not consulted.
	Precedence []string

	// Overlay maps dotted legacy paths to dotted current paths. It is
	// consulted before every compiled-in layer.
	Overlay map[string]string

	// Namespaces are the root segments a payload path may start with.
	Namespaces []string

	// PathLoadDenied lists roots whose paths may only be loaded through a
	// mapping, never as-is.
	PathLoadDenied []string

	// Allow lists extra dotted current paths that may be constructed in
	// addition to every mapping target.
	Allow []string

	// Rules are expr-lang predicates over a path. A path any rule accepts is
	// allowed.
	Rules []string
}
