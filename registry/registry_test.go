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

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/registry"
)

func p(segs ...string) apis.Path { return apis.Path(segs) }

func TestNew_LookupAndIdempotentRegistration(t *testing.T) {
	entries := []apis.Entry{
		{From: p("langchain", "schema", "messages", "AIMessage"), To: p("langchain_core", "messages", "ai", "AIMessage")},
		// idempotent duplicate
		{From: p("langchain", "schema", "messages", "AIMessage"), To: p("langchain_core", "messages", "ai", "AIMessage")},
		{From: p("langchain", "schema", "messages", "AIMessageChunk"), To: p("langchain_core", "messages", "ai", "AIMessageChunk")},
	}
	tbl, err := registry.New("serializable", entries)
	require.NoError(t, err)

	assert.Equal(t, "serializable", tbl.Name())
	assert.Equal(t, 2, tbl.Count())

	got, ok := tbl.Lookup(p("langchain", "schema", "messages", "AIMessage"))
	require.True(t, ok)
	assert.Equal(t, p("langchain_core", "messages", "ai", "AIMessage"), got)

	// Chunk variants are independent entries, not derived from the base.
	got, ok = tbl.Lookup(p("langchain", "schema", "messages", "AIMessageChunk"))
	require.True(t, ok)
	assert.Equal(t, "AIMessageChunk", got.Class())
}

func TestLookup_ExactMatchOnly(t *testing.T) {
	tbl, err := registry.New("layer", []apis.Entry{
		{From: p("langchain", "schema", "messages", "AIMessage"), To: p("langchain_core", "messages", "ai", "AIMessage")},
	})
	require.NoError(t, err)

	misses := []apis.Path{
		nil,
		p("langchain", "schema", "messages"),
		p("schema", "messages", "AIMessage"),
		p("langchain", "schema", "messages", "AIMessage", "extra"),
		p("langchain", "schema", "messages", "aimessage"),
		// Same joined key, different segments.
		p("langchain\x00schema", "messages", "AIMessage"),
		p("langchain", "schema\x00messages\x00AIMessage"),
		p("langchain.schema", "messages", "AIMessage"),
	}
	for _, m := range misses {
		got, ok := tbl.Lookup(m)
		assert.False(t, ok, "Lookup(%v)", m)
		assert.Nil(t, got, "Lookup(%v)", m)
	}
}

func TestNew_Conflict(t *testing.T) {
	_, err := registry.New("layer", []apis.Entry{
		{From: p("a", "B"), To: p("c", "B")},
		{From: p("a", "B"), To: p("d", "B")},
	})
	assert.ErrorIs(t, err, registry.ErrConflictingRegistration)
}

func TestNew_Errors(t *testing.T) {
	_, err := registry.New("", nil)
	assert.ErrorIs(t, err, registry.ErrEmptyName)

	_, err = registry.New("layer", []apis.Entry{{From: p("onlyone"), To: p("a", "B")}})
	assert.ErrorIs(t, err, apis.ErrInvalidPath)

	_, err = registry.New("layer", []apis.Entry{{From: p("a", "B"), To: p("")}})
	assert.ErrorIs(t, err, apis.ErrInvalidPath)

	_, err = registry.New("layer", []apis.Entry{{From: p("a", "B"), To: p("c", "B")}}, p("x", "Y"))
	assert.ErrorIs(t, err, registry.ErrUnknownShadow)
}

func TestShadows(t *testing.T) {
	tbl, err := registry.New("foreign", []apis.Entry{
		{From: p("langchain", "chat_models", "bedrock", "ChatBedrock"), To: p("langchain_aws", "chat_models", "ChatBedrock")},
		{From: p("langchain", "chat_models", "groq", "ChatGroq"), To: p("langchain_groq", "chat_models", "ChatGroq")},
	}, p("langchain", "chat_models", "bedrock", "ChatBedrock"))
	require.NoError(t, err)

	assert.True(t, tbl.Shadows(p("langchain", "chat_models", "bedrock", "ChatBedrock")))
	assert.False(t, tbl.Shadows(p("langchain", "chat_models", "groq", "ChatGroq")))
}

func TestEntries_SortedDeepCopy(t *testing.T) {
	tbl, err := registry.New("layer", []apis.Entry{
		{From: p("z", "Z"), To: p("cur", "Z")},
		{From: p("a", "A"), To: p("cur", "A")},
	})
	require.NoError(t, err)

	entries := tbl.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a.A", entries[0].From.String())
	assert.Equal(t, "z.Z", entries[1].From.String())

	// Mutating the snapshot or a lookup result must not leak into the table.
	entries[0].To[0] = "mutated"
	got, _ := tbl.Lookup(p("a", "A"))
	assert.Equal(t, p("cur", "A"), got)
	got[0] = "mutated"
	again, _ := tbl.Lookup(p("a", "A"))
	assert.Equal(t, p("cur", "A"), again)
}

func TestNew_CopiesInput(t *testing.T) {
	from := p("a", "A")
	to := p("cur", "A")
	tbl, err := registry.New("layer", []apis.Entry{{From: from, To: to}})
	require.NoError(t, err)

	to[0] = "mutated"
	got, ok := tbl.Lookup(p("a", "A"))
	require.True(t, ok)
	assert.Equal(t, p("cur", "A"), got)
}

func TestNew_RejectsSeparatorsInSegments(t *testing.T) {
	_, err := registry.New("layer", []apis.Entry{
		{From: p("langchain", "schema.messages", "AIMessage"), To: p("langchain_core", "messages", "ai", "AIMessage")},
	})
	assert.ErrorIs(t, err, apis.ErrInvalidPath)

	_, err = registry.New("layer", []apis.Entry{
		{From: p("langchain", "schema", "AIMessage"), To: p("langchain_core", "messages\x00ai", "AIMessage")},
	})
	assert.ErrorIs(t, err, apis.ErrInvalidPath)
}
