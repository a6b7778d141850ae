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

package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nsx/apis"
	upath "dirpx.dev/nsx/utils/path"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		p    apis.Path
		ok   bool
	}{
		{"nil", nil, false},
		{"empty", apis.Path{}, false},
		{"single segment", apis.Path{"onlyone"}, false},
		{"empty segment", apis.Path{"langchain", "", "AIMessage"}, false},
		{"empty class", apis.Path{"langchain", ""}, false},
		{"NUL in segment", apis.Path{"langchain\x00schema", "AIMessage"}, false},
		{"dot in segment", apis.Path{"langchain_core", "messages.ai", "AIMessage"}, false},
		{"two segments", apis.Path{"langchain", "AIMessage"}, true},
		{"four segments", apis.Path{"langchain", "schema", "messages", "AIMessage"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := upath.Validate(tc.p)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apis.ErrInvalidPath)
		})
	}
}

func TestParse(t *testing.T) {
	p, err := upath.Parse(" langchain.schema.messages.AIMessage ")
	require.NoError(t, err)
	assert.Equal(t, apis.Path{"langchain", "schema", "messages", "AIMessage"}, p)

	_, err = upath.Parse("onlyone")
	assert.ErrorIs(t, err, apis.ErrInvalidPath)

	_, err = upath.Parse("")
	assert.ErrorIs(t, err, apis.ErrInvalidPath)

	_, err = upath.Parse("langchain..AIMessage")
	assert.ErrorIs(t, err, apis.ErrInvalidPath)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { upath.MustParse("x") })
	assert.NotPanics(t, func() { upath.MustParse("x.Y") })
}

func TestFromArgs(t *testing.T) {
	p, err := upath.FromArgs([]string{"langchain.schema.AIMessage"})
	require.NoError(t, err)
	assert.Equal(t, apis.Path{"langchain", "schema", "AIMessage"}, p)

	args := []string{"langchain", "schema", "AIMessage"}
	p, err = upath.FromArgs(args)
	require.NoError(t, err)
	assert.Equal(t, apis.Path{"langchain", "schema", "AIMessage"}, p)

	// The result must not alias the argument slice.
	args[0] = "mutated"
	assert.Equal(t, "langchain", p.Root())

	_, err = upath.FromArgs(nil)
	assert.ErrorIs(t, err, apis.ErrInvalidPath)
}

func TestKey_DistinguishesSegmentBoundaries(t *testing.T) {
	a := apis.Path{"ab", "c"}
	b := apis.Path{"a", "bc"}
	assert.NotEqual(t, upath.Key(a), upath.Key(b))
	assert.Equal(t, upath.Key(a), upath.Key(apis.Path{"ab", "c"}))
}

func TestFromArgs_RejectsSeparatorsInSegments(t *testing.T) {
	_, err := upath.FromArgs([]string{"langchain_core", "messages.ai", "AIMessage"})
	assert.ErrorIs(t, err, apis.ErrInvalidPath)

	_, err = upath.Parse("langchain\x00schema.AIMessage")
	assert.ErrorIs(t, err, apis.ErrInvalidPath)
}
