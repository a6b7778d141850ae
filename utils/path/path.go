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

package path

import (
	"fmt"
	"strings"

	"dirpx.dev/nsx/apis"
)

// MinSegments is the shortest valid path: one module segment plus a class name.
const MinSegments = 2

// keySep joins segments into map keys. Validate rejects segments holding
// it, so two valid paths share a key iff they are Equal.
const keySep = "\x00"

// dotSep joins segments in dotted form. Validate rejects segments holding
// it, so the dotted form of a valid path is unambiguous too.
const dotSep = "."

// Validate checks the structural preconditions for a lookup:
//   - at least MinSegments segments;
//   - no empty segment;
//   - no segment holding a separator ("." or NUL).
//
// Errors wrap apis.ErrInvalidPath. Segment spelling is not checked beyond
// that: lookup is exact, and unknown spellings simply miss.
func Validate(p apis.Path) error {
	if len(p) < MinSegments {
		return fmt.Errorf("%w: %q has %d segment(s), need at least %d",
			apis.ErrInvalidPath, p.String(), len(p), MinSegments)
	}
	for i, s := range p {
		if s == "" {
			return fmt.Errorf("%w: %q has an empty segment at index %d",
				apis.ErrInvalidPath, p.String(), i)
		}
		if strings.Contains(s, keySep) || strings.Contains(s, dotSep) {
			return fmt.Errorf("%w: segment %d (%q) contains a separator",
				apis.ErrInvalidPath, i, s)
		}
	}
	return nil
}

// Key returns the map key for p. Two paths share a key iff they are Equal.
func Key(p apis.Path) string {
	return strings.Join(p, keySep)
}

// Parse splits a dotted path such as "langchain.schema.messages.AIMessage"
// and validates it.
func Parse(s string) (apis.Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", apis.ErrInvalidPath)
	}
	p := apis.Path(strings.Split(s, dotSep))
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(s string) apis.Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// FromArgs builds a path from command-line style arguments: a single
// argument is parsed as a dotted path, several are taken as segments.
func FromArgs(args []string) (apis.Path, error) {
	switch len(args) {
	case 0:
		return nil, fmt.Errorf("%w: no segments given", apis.ErrInvalidPath)
	case 1:
		return Parse(args[0])
	}
	p := make(apis.Path, len(args))
	copy(p, args)
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}
