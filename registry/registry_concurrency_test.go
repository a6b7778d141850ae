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
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/registry"
)

// TestConcurrentLookup verifies that Lookup/Entries/Count are race-free on a
// shared table.
func TestConcurrentLookup(t *testing.T) {
	const n = 64
	entries := make([]apis.Entry, 0, n)
	for i := 0; i < n; i++ {
		cls := fmt.Sprintf("T%d", i)
		entries = append(entries, apis.Entry{
			From: apis.Path{"legacy", "pkg", cls},
			To:   apis.Path{"current", "pkg", cls},
		})
	}
	tbl, err := registry.New("layer", entries)
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				e := entries[(i+id)%n]
				got, ok := tbl.Lookup(e.From)
				if !ok || !got.Equal(e.To) {
					t.Errorf("lookup %v: got (%v,%v) want %v", e.From, got, ok, e.To)
					return
				}
				if i%500 == 0 {
					_ = tbl.Entries()
					_ = tbl.Count()
				}
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, n, tbl.Count())
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Table = func() apis.Table {
	t, _ := registry.New("static", nil)
	return t
}()
