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
	"fillmore-labs.com/reftrace/jsast"
	"fillmore-labs.com/reftrace/tracemap"
)

// patternRefs propagates a trace-map node into the bindings a target
// pattern introduces. Reassigning into a binding is not itself a read
// of the traced path, so propagation into the new variables never
// reports the root.
func (w *walker) patternRefs(target jsast.Node, path Path, node *tracemap.Node, yield func(Match) bool) bool {
	if node == nil {
		return true
	}

	switch target := target.(type) {
	case *jsast.Identifier:
		v, ok := w.t.findVariable(target)
		if !ok {
			return true
		}

		return w.variableRefs(v, path, node, false, yield)

	case *jsast.ObjectPattern:
		for _, prop := range target.Properties {
			property, ok := prop.(*jsast.Property)
			if !ok {
				// Rest elements do not preserve a key path.
				continue
			}

			key, ok := w.t.keys.PropertyKey(property)
			if !ok {
				continue
			}

			child := node.Children[key]
			if child == nil {
				continue
			}

			next := extend(path, key)
			if child.Read != nil {
				if !yield(Match{Node: property, Path: next, Type: Read, Entry: child.Read}) {
					return false
				}
			}

			if !w.patternRefs(property.Value, next, child, yield) {
				return false
			}
		}

		return true

	case *jsast.AssignmentPattern:
		// The default expression is matched independently if it reads
		// a traced value; only the target carries the binding.
		return w.patternRefs(target.Left, path, node, yield)

	default:
		// Array and rest patterns do not preserve a stable key path.
		return true
	}
}
