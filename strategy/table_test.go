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

package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/registry"
	"dirpx.dev/nsx/strategy"
)

func mustTable(t *testing.T, name string, entries ...apis.Entry) apis.Table {
	t.Helper()
	tbl, err := registry.New(name, entries)
	require.NoError(t, err)
	return tbl
}

func TestTableStrategy_TryResolve(t *testing.T) {
	tbl := mustTable(t, "legacy", apis.Entry{
		From: apis.Path{"langchain", "schema", "AIMessage"},
		To:   apis.Path{"langchain_core", "messages", "ai", "AIMessage"},
	})
	s := strategy.NewTableStrategy(tbl)

	assert.Equal(t, "legacy", s.Name())

	got, ok := s.TryResolve(apis.Path{"langchain", "schema", "AIMessage"})
	require.True(t, ok)
	assert.Equal(t, apis.Path{"langchain_core", "messages", "ai", "AIMessage"}, got)

	got, ok = s.TryResolve(apis.Path{"langchain", "schema", "HumanMessage"})
	assert.False(t, ok)
	assert.Nil(t, got)

	got, ok = s.TryResolve(nil)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestTableStrategy_NilTable(t *testing.T) {
	s := strategy.NewTableStrategy(nil)
	assert.Equal(t, "", s.Name())
	got, ok := s.TryResolve(apis.Path{"a", "B"})
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestFromTables_PreservesOrderSkipsNil(t *testing.T) {
	a := mustTable(t, "a")
	b := mustTable(t, "b")

	strats := strategy.FromTables([]apis.Table{a, nil, b})
	require.Len(t, strats, 2)
	assert.Equal(t, "a", strats[0].Name())
	assert.Equal(t, "b", strats[1].Name())
}
