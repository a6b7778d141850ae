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

package apis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/nsx/apis"
)

func TestPathParts(t *testing.T) {
	p := apis.Path{"langchain_core", "messages", "ai", "AIMessage"}

	assert.Equal(t, "langchain_core.messages.ai.AIMessage", p.String())
	assert.Equal(t, "langchain_core", p.Root())
	assert.Equal(t, "AIMessage", p.Class())
	assert.Equal(t, apis.Path{"langchain_core", "messages", "ai"}, p.Module())

	var empty apis.Path
	assert.Equal(t, "", empty.Root())
	assert.Equal(t, "", empty.Class())
	assert.Nil(t, apis.Path{"x"}.Module())
}

func TestPathModuleDoesNotAliasClass(t *testing.T) {
	p := apis.Path{"a", "b", "C"}
	m := append(p.Module(), "D")
	assert.Equal(t, "C", p.Class())
	assert.Equal(t, apis.Path{"a", "b", "D"}, m)
}

func TestPathCloneAndEqual(t *testing.T) {
	p := apis.Path{"a", "b"}
	c := p.Clone()
	assert.True(t, p.Equal(c))
	c[0] = "x"
	assert.False(t, p.Equal(c))
	assert.Nil(t, apis.Path(nil).Clone())
}

func TestResolutionTarget(t *testing.T) {
	orig := apis.Path{"langchain", "schema", "AIMessage"}
	to := apis.Path{"langchain_core", "messages", "ai", "AIMessage"}

	mapped := apis.Resolution{Status: apis.Mapped, Path: to, Layer: "legacy"}
	assert.True(t, mapped.Found())
	assert.Equal(t, to, mapped.Target(orig))
	assert.Equal(t, "mapped", mapped.Status.String())

	var none apis.Resolution
	assert.False(t, none.Found())
	assert.Equal(t, orig, none.Target(orig))
	assert.Equal(t, "not-found", none.Status.String())
}
