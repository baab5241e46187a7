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
	"slices"

	"fillmore-labs.com/reftrace/jsast"
	"fillmore-labs.com/reftrace/scopegraph"
	"fillmore-labs.com/reftrace/tracemap"
)

// walker carries the state of one entry-strategy invocation. Its
// methods thread the consumer's yield function and return false once
// the consumer stops, unwinding the whole traversal.
type walker struct {
	t *Tracker

	// stack holds the variables currently being propagated through;
	// a variable already on it is an alias cycle and is not re-entered.
	stack []*scopegraph.Variable
}

// variableRefs propagates a trace-map node through every read reference
// of a variable. With report set, each read of the variable itself is
// a match when the node carries a Read marker; propagation into
// aliases and property chains happens either way.
func (w *walker) variableRefs(
	v *scopegraph.Variable, path Path, node *tracemap.Node, report bool, yield func(Match) bool,
) bool {
	if node == nil || slices.Contains(w.stack, v) {
		return true
	}

	w.stack = append(w.stack, v)
	defer func() { w.stack = w.stack[:len(w.stack)-1] }()

	for _, ref := range v.References {
		if !ref.IsRead() {
			continue
		}

		if report && node.Read != nil {
			if !yield(Match{Node: ref.Identifier, Path: path, Type: Read, Entry: node.Read}) {
				return false
			}
		}

		if !w.propertyRefs(ref.Identifier, path, node, yield) {
			return false
		}
	}

	return true
}

// propertyRefs matches the expression context around root against the
// trace-map node: member accesses extend the path, calls and
// constructions report leaf markers, assignments and declarators hand
// the value to the pattern unpacker. The climb through transparent
// wrappers stops at the first sentinel parent; what the value flows
// into decides what happens next.
func (w *walker) propertyRefs(root jsast.Node, path Path, node *tracemap.Node, yield func(Match) bool) bool {
	if node == nil {
		return true
	}

	cur := root
	for {
		parent := cur.Parent()
		if parent == nil {
			return true
		}

		if isSentinel(parent) {
			break
		}

		cur = parent
	}

	switch parent := cur.Parent().(type) {
	case *jsast.MemberExpression:
		if parent.Object != cur {
			return true
		}

		key, ok := w.t.keys.MemberKey(parent)
		if !ok {
			return true
		}

		child := node.Children[key]
		if child == nil {
			return true
		}

		path = extend(path, key)
		if child.Read != nil {
			if !yield(Match{Node: parent, Path: path, Type: Read, Entry: child.Read}) {
				return false
			}
		}

		return w.propertyRefs(parent, path, child, yield)

	case *jsast.CallExpression:
		if parent.Callee == cur && node.Call != nil {
			return yield(Match{Node: parent, Path: path, Type: Call, Entry: node.Call})
		}

		return true

	case *jsast.NewExpression:
		if parent.Callee == cur && node.Construct != nil {
			return yield(Match{Node: parent, Path: path, Type: Construct, Entry: node.Construct})
		}

		return true

	case *jsast.AssignmentExpression:
		if parent.Right != cur {
			return true
		}

		// The assignment hands the value to its target and also
		// evaluates to it, so both directions continue.
		if !w.patternRefs(parent.Left, path, node, yield) {
			return false
		}

		return w.propertyRefs(parent, path, node, yield)

	case *jsast.AssignmentPattern:
		if parent.Right != cur {
			return true
		}

		return w.patternRefs(parent.Left, path, node, yield)

	case *jsast.VariableDeclarator:
		if parent.Init != cur {
			return true
		}

		return w.patternRefs(parent.ID, path, node, yield)

	default:
		return true
	}
}

// isSentinel reports whether a node bounds the upward climb:
// statements, declarations, the structurally significant expression
// forms, assignment patterns, variable declarators and the program
// root. Every other kind wraps the same value transparently.
func isSentinel(n jsast.Node) bool {
	switch n.(type) {
	case jsast.Stmt:
		return true

	case *jsast.Program,
		*jsast.VariableDeclarator,
		*jsast.AssignmentPattern,
		*jsast.ArrayExpression,
		*jsast.ArrowFunctionExpression,
		*jsast.AssignmentExpression,
		*jsast.CallExpression,
		*jsast.ClassExpression,
		*jsast.FunctionExpression,
		*jsast.MemberExpression,
		*jsast.NewExpression,
		*jsast.ObjectExpression:
		return true

	default:
		return false
	}
}
