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

// Package scopegraph defines the lexical scope graph consumed by the
// reference tracker.
//
// A scope analyzer runs over a [fillmore-labs.com/reftrace/jsast] tree
// and populates the graph: a [Scope] tree rooted at the global scope,
// [Variable] values per scope, and per variable the ordered
// [Reference] and [Definition] records. Two conventions matter to
// consumers:
//
//   - Undeclared names are synthesized as variables of the global
//     scope with an empty Defs slice. Zero definitions is the signal
//     for "truly global, undeclared in this program".
//   - References carry read/write flags; an assignment target is a
//     write, a compound assignment is a read-write.
//
// The tracker treats the graph as immutable.
package scopegraph
