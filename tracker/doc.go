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

// Package tracker locates every syntactic use of a specified value in
// a JavaScript program: reads, calls and constructor invocations of a
// property path, however the value was aliased, destructured,
// reassigned or re-exported along the way.
//
// # Overview
//
// A [Tracker] walks an abstract syntax tree (package jsast) together
// with its lexical scope graph (package scopegraph) and matches
// references against a caller-supplied [tracemap.Map] describing the
// paths of interest:
//
//	m := tracemap.Map{
//		"console": {Children: tracemap.Map{
//			"log": {Call: "no-console"},
//		}},
//	}
//
//	t := tracker.New(globalScope)
//	for match := range t.TrackGlobals(m) {
//		fmt.Println(match.Path, match.Type) // console.log call
//	}
//
// Three entry strategies cover the ways a traced value enters a
// program: [Tracker.TrackGlobals] for global bindings and
// global-object members, [Tracker.TrackCommonJS] for require calls and
// [Tracker.TrackESModules] for import and export declarations. All
// three delegate to the same propagation core, so aliasing through
// const bindings, object destructuring and assignment chains behaves
// identically regardless of how a value was obtained.
//
// # Matching
//
// Propagation follows a value forward through the program text:
//
//   - a property access whose key resolves to a constant extends the
//     path one level into the trace map; unknown keys end the branch
//   - a call or new expression with the value as callee reports the
//     map's Call or Construct marker; return values are not tracked
//   - assignments, variable initializers and destructuring defaults
//     hand the value to the target bindings, whose own reads continue
//     the walk
//
// Everything else ends the branch silently. Malformed input degrades
// to "no match", never to an error, and self-referential aliases such
// as `let x = x` terminate through a per-walk cycle guard.
//
// # Laziness
//
// Each strategy returns an [iter.Seq] that performs only the work
// needed for the next match; breaking out of the range loop stops the
// walk with nothing to clean up. Iterating twice over the same inputs
// reproduces the identical sequence.
//
// # Concurrency
//
// A Tracker is immutable after [New]; walk state lives in the
// per-invocation sequence. Concurrent calls on a shared Tracker and
// concurrent consumption of separate sequences are safe. The AST,
// scope graph and trace maps must not be mutated while any sequence
// is live.
package tracker
