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

// Package nsx provides a global, process-wide resolver for serialized class
// paths.
//
// Serialized objects name their class by a namespace path such as
// ["langchain", "schema", "messages", "AIMessage"]. Classes move between
// packages over time, so a payload written by an old release (or by the
// JavaScript runtime) may carry a path that no longer exists. nsx translates
// such legacy paths into the current location before anything is
// constructed, and decides whether the located class may be constructed at
// all.
//
// # Design
//
// The core of nsx is a read-mostly global snapshot (state). The snapshot
// holds:
//
//   - Config: layer precedence, a caller-supplied overlay, the permitted
//     root namespaces and the allow-list additions.
//
//   - Tables: immutable mapping layers, highest precedence first. The
//     compiled-in layers are CUE documents embedded in the tables package;
//     the overlay, when configured, comes first.
//
//   - Resolver: walks the tables in order. The first table holding the key
//     decides. A table mapping a key onto itself reports it as not found,
//     which callers treat as "already current".
//
//   - Guard: admits or refuses a resolved path. A payload must start in a
//     permitted namespace, paths under the monolithic roots only load through
//     a mapping, and the located class must be a mapping target, listed in
//     Config.Allow, or accepted by one of Config.Rules.
//
//   - Builder: constructs tables, resolver and guard for a Config.
//
// Readers load the current snapshot atomically and never take locks:
//
//	res, err := nsx.Resolve(path)
//	current, err := nsx.Locate(path)
//
// Writers (SetConfig, SetBuilder, SetAll) take a short build mutex, build a
// complete new snapshot and swap it in. A failed build returns its error and
// leaves the previous snapshot published.
//
// # Scope
//
// nsx only locates classes. Constructing objects, validating their fields
// and reading payloads belong to the caller.
package nsx
