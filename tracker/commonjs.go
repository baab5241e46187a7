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

	"fillmore-labs.com/reftrace/jsast"
	"fillmore-labs.com/reftrace/tracemap"
)

// requireName is the CommonJS loader binding.
const requireName = "require"

// TrackCommonJS reports accesses to traced paths entered through
// require calls. Top-level trace-map keys are module specifier
// strings; a require call with a matching constant first argument
// roots the module's map at the call expression, so the call's value
// propagates exactly like an import binding.
//
// Only the undeclared, truly global require participates; a local
// declaration of the name disables the strategy for the whole program.
func (t *Tracker) TrackCommonJS(m tracemap.Map) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		w := &walker{t: t}

		v, ok := t.global.Variable(requireName)
		if !ok || v.Declared() {
			return
		}

		for _, ref := range v.References {
			if !ref.IsRead() {
				continue
			}

			call, ok := ref.Identifier.Parent().(*jsast.CallExpression)
			if !ok || call.Callee != jsast.Expr(ref.Identifier) || len(call.Arguments) == 0 {
				continue
			}

			key, ok := t.keys.ConstantString(call.Arguments[0])
			if !ok {
				continue
			}

			node := m[key]
			if node == nil {
				continue
			}

			path := Path{key}
			if node.Read != nil {
				if !yield(Match{Node: call, Path: path, Type: Read, Entry: node.Read}) {
					return
				}
			}

			if !w.propertyRefs(call, path, node, yield) {
				return
			}
		}
	}
}
