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

// Builder composes the resolution layers, the Resolver and the Guard from a
// Config. Each call returns fresh values; nothing built is mutated later.
type Builder interface {
	// BuildTables returns the layers in precedence order, highest first.
	BuildTables(cfg Config) ([]Table, error)
	// BuildResolver constructs a Resolver over tables.
	BuildResolver(cfg Config, tables []Table) (Resolver, error)
	// BuildGuard constructs the allow-list Guard for tables.
	BuildGuard(cfg Config, tables []Table) (Guard, error)
}
