// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package tracemap defines the declarative specification of property
// paths a tracker run looks for.
//
// A trace map is a tree of property names. For the global entry
// strategy the top-level keys are global binding names; for the module
// strategies they are module specifier strings. Each [Node] marks, via
// the optional Read, Call and Construct fields, which accesses of its
// path are reported; the marker payloads are opaque to the engine and
// surface unchanged on the emitted matches. Markers are struct fields
// rather than reserved keys, so traced member names never collide with
// them.
//
// Maps are caller-owned and read-only during tracking. The same *Node
// may be shared between paths.
package tracemap

import (
	"maps"
	"slices"
)

// Entry is an opaque marker payload: a rule message, a severity, or
// whatever the consumer wants back on a match. A nil Entry means the
// marker is absent.
type Entry = any

// Map maps property names (or entry-point names at the root) to child
// nodes.
type Map = map[string]*Node

// Node is one step of a traced property path.
type Node struct {
	// Children continues the path, one entry per traced member name.
	Children Map

	// Read reports when the value at this path is read.
	Read Entry
	// Call reports when the value at this path is called as a function.
	Call Entry
	// Construct reports when the value at this path is used with new.
	Construct Entry

	// ESM marks a per-module map whose children already have
	// ECMAScript-module shape: named exports as top-level keys. Only
	// meaningful at the root node of a module's map, where it disables
	// the CommonJS default-export wrapping.
	ESM bool
}

// Keys returns the map's keys in sorted order. Strategies enumerate
// maps in this order so that match sequences are deterministic.
func Keys(m Map) []string {
	return slices.Sorted(maps.Keys(m))
}
