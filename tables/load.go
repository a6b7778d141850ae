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

package tables

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/registry"
)

// Layer names of the compiled-in tables.
const (
	// LayerSerializable is the pre-split layout under the monolithic package.
	LayerSerializable = "serializable"
	// LayerLegacy is the oldest layout, directly under langchain.schema.
	LayerLegacy = "legacy"
	// LayerCore holds intermediate core paths, all mapped onto themselves.
	LayerCore = "core"
	// LayerForeign is the layout written by the foreign (JavaScript) runtime.
	LayerForeign = "foreign"
)

// layerSchemaPath is the root definition every layer document unifies with.
const layerSchemaPath = "#Layer"

var (
	//go:embed schema.cue
	schema []byte

	//go:embed layers/*.cue
	layerFS embed.FS
)

// ErrDecode wraps failures to compile, validate or decode a layer document.
var ErrDecode = errors.New("nsx(tables): layer decode failed")

// Layer is one compiled-in compatibility layer.
type Layer struct {
	apis.Table
	// Description says which historical layout the layer captures.
	Description string
}

// layerDoc is the decoded form of a layer document.
type layerDoc struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Overlaps    [][]string   `json:"overlaps"`
	Entries     []mappingDoc `json:"entries"`
}

type mappingDoc struct {
	From []string `json:"from"`
	To   []string `json:"to"`
}

// compiled decodes the embedded layers exactly once; concurrent first
// callers block on the same initialization.
var compiled = sync.OnceValues(func() ([]Layer, error) {
	return decodeFS(layerFS, "layers")
})

// Compiled returns every compiled-in layer, sorted by name. The tables are
// shared and immutable; the slice is the caller's.
func Compiled() ([]Layer, error) {
	ls, err := compiled()
	if err != nil {
		return nil, err
	}
	return slices.Clone(ls), nil
}

// decodeFS decodes every *.cue document in dir of fsys.
func decodeFS(fsys fs.FS, dir string) ([]Layer, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.cue"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	slices.Sort(files)

	out := make([]Layer, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		l, err := Decode(data, name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[l.Name()]; dup {
			return nil, fmt.Errorf("%w: layer %q declared by %s and %s", ErrDuplicateLayer, l.Name(), prev, name)
		}
		seen[l.Name()] = name
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b Layer) int { return strings.Compare(a.Name(), b.Name()) })
	return out, nil
}

// Decode compiles one layer document, unifies it with the embedded schema,
// validates it concretely and registers its entries into a table.
// filename is used in error messages only.
func Decode(data []byte, filename string) (Layer, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return Layer{}, fmt.Errorf("%w: internal error: schema: %w", ErrDecode, schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath(layerSchemaPath))
	if schemaRoot.Err() != nil {
		return Layer{}, fmt.Errorf("%w: internal error: schema definition %s: %w", ErrDecode, layerSchemaPath, schemaRoot.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return Layer{}, formatError(userValue.Err(), filename)
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Layer{}, formatError(err, filename)
	}

	var doc layerDoc
	if err := unified.Decode(&doc); err != nil {
		return Layer{}, formatError(err, filename)
	}

	entries := make([]apis.Entry, len(doc.Entries))
	for i, m := range doc.Entries {
		entries[i] = apis.Entry{From: apis.Path(m.From), To: apis.Path(m.To)}
	}
	shadows := make([]apis.Path, len(doc.Overlaps))
	for i, o := range doc.Overlaps {
		shadows[i] = apis.Path(o)
	}

	t, err := registry.New(doc.Name, entries, shadows...)
	if err != nil {
		return Layer{}, fmt.Errorf("%s: %w", filename, err)
	}
	return Layer{Table: t, Description: doc.Description}, nil
}

// formatError flattens CUE errors into "file: path: message" lines.
func formatError(err error, filename string) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return fmt.Errorf("%w: %s: %w", ErrDecode, filename, err)
	}

	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := e.Error()
		if p := strings.Join(cueerrors.Path(e), "."); p != "" && !strings.HasPrefix(msg, p) {
			msg = p + ": " + msg
		}
		lines = append(lines, msg)
	}
	return fmt.Errorf("%w: %s: %s", ErrDecode, filename, strings.Join(lines, "; "))
}
