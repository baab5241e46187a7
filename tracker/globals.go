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
	"iter"

	"fillmore-labs.com/reftrace/tracemap"
)

// TrackGlobals reports accesses to traced paths entered through global
// bindings. Top-level trace-map keys are matched against undeclared
// variables of the same name in the global scope; additionally,
// property chains hanging off the configured global-object aliases
// (window.Buffer and friends) enter the whole map with an empty path.
//
// Only variables with zero declaring definitions participate: a local
// declaration shadowing a global name opts that name out.
func (t *Tracker) TrackGlobals(m tracemap.Map) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		w := &walker{t: t}

		for _, key := range tracemap.Keys(m) {
			node := m[key]
			if node == nil {
				continue
			}

			v, ok := t.global.Variable(key)
			if !ok || v.Declared() {
				continue
			}

			if !w.variableRefs(v, Path{key}, node, true, yield) {
				return
			}
		}

		root := &tracemap.Node{Children: m}
		for _, name := range t.globalObjectNames {
			v, ok := t.global.Variable(name)
			if !ok || v.Declared() {
				continue
			}

			// The global object itself is never a traced leaf; only
			// its properties are, hence no reporting at the root.
			if !w.variableRefs(v, nil, root, false, yield) {
				return
			}
		}
	}
}
