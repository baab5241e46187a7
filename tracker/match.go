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

package tracker

import (
	"strings"

	"fillmore-labs.com/reftrace/jsast"
	"fillmore-labs.com/reftrace/tracemap"
)

// Type is the kind of access a match reports.
type Type uint8

//go:generate go tool stringer -type Type -linecomment
const (
	// Read reports the traced value being read.
	Read Type = iota // read

	// Call reports the traced value being called as a function.
	Call // call

	// Construct reports the traced value being invoked with new.
	Construct // construct
)

// Path is the ordered property names traversed from the entry point. It
// is empty for a bare access through a global-object alias.
type Path []string

// String returns the dotted form of the path.
func (p Path) String() string { return strings.Join(p, ".") }

// Match is one reported occurrence of a traced path.
type Match struct {
	// Node is the most specific expression enclosing the access: the
	// identifier, member, call or new expression, or the module
	// declaration or specifier for import and export matches.
	Node jsast.Node

	Path Path
	Type Type

	// Entry is the marker payload found at the path's trace-map node.
	Entry tracemap.Entry
}

// extend appends with the capacity capped, so emitted paths never share
// backing arrays with in-flight traversal state.
func extend(p Path, key string) Path {
	return append(p[:len(p):len(p)], key)
}
