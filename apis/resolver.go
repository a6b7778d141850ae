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

// Status is the outcome of a successful lookup walk.
type Status int

const (
	// NotFound means no layer remaps the path; callers treat it as current.
	NotFound Status = iota
	// Mapped means a layer supplied a different current path.
	Mapped
)

// String returns "not-found" or "mapped".
func (s Status) String() string {
	if s == Mapped {
		return "mapped"
	}
	return "not-found"
}

// Resolution is the result of Resolver.Resolve.
type Resolution struct {
	// Status tells Mapped apart from NotFound.
	Status Status
	// Path is the current path when Status is Mapped; nil otherwise.
	Path Path
	// Layer names the table that answered, or "" if none held the key.
	// A layer that maps a path onto itself is reported here with NotFound.
	Layer string
}

// Found reports whether the resolution carries a remapped path.
func (r Resolution) Found() bool {
	return r.Status == Mapped
}

// Target returns the path to construct from: the mapped path, or orig when
// nothing remapped it.
func (r Resolution) Target(orig Path) Path {
	if r.Found() {
		return r.Path
	}
	return orig
}

// Resolver translates legacy paths into current ones. It never decides
// whether a class may be constructed; see Guard.
type Resolver interface {
	// Resolve looks p up across layers in precedence order. The only error is
	// one wrapping ErrInvalidPath; absence is Status NotFound.
	Resolve(p Path) (Resolution, error)
	// Layers lists the consulted layer names, highest precedence first.
	Layers() []string
}
