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
	"fillmore-labs.com/reftrace/internal/spanindex"
	"fillmore-labs.com/reftrace/scopegraph"
)

// Tracker finds references to traced values in one program. It holds
// the program's global scope, a position index over the scope tree and
// the resolved options; all of it read-only after construction, so a
// single Tracker may serve concurrent [Tracker.TrackGlobals],
// [Tracker.TrackCommonJS] and [Tracker.TrackESModules] calls.
type Tracker struct {
	global *scopegraph.Scope
	scopes *spanindex.Index

	mode              Mode
	globalObjectNames []string
	keys              KeyResolver
}

// New creates a tracker over a program's scope graph. The global scope
// must be the root produced by the scope analyzer, with its Block set
// to the program node.
func New(globalScope *scopegraph.Scope, opts ...Option) *Tracker {
	s := defaultSettings()
	Options(opts).apply(&s)

	return &Tracker{
		global:            globalScope,
		scopes:            spanindex.New(globalScope),
		mode:              s.mode,
		globalObjectNames: s.globalObjectNames,
		keys:              s.keys,
	}
}
