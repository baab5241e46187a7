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

// Package spanindex resolves source positions to the innermost lexical
// scope whose block span contains them.
//
// Scope block spans nest: a child scope's span lies within its
// parent's, and sibling spans are disjoint. The index stores each
// nesting level in a red-black tree ordered by position, with a nested
// tree per contained level, so a lookup walks one tree per nesting
// depth.
package spanindex

import (
	"github.com/sirkon/rbtree"

	"fillmore-labs.com/reftrace/scopegraph"
)

// scopeSpan is one scope's half-open block span plus the tree of spans
// nested inside it.
type scopeSpan struct {
	start int
	end   int

	scope    *scopegraph.Scope
	children *rbtree.Tree[*scopeSpan]
}

// Cmp orders disjoint spans by position and reports 0 for any overlap.
// Under the nesting invariant an overlap is always a containment, which
// insert and Innermost resolve by descending into children.
func (s *scopeSpan) Cmp(other *scopeSpan) int {
	if s.end <= other.start {
		return -1
	}

	if s.start >= other.end {
		return 1
	}

	return 0
}

func (s *scopeSpan) contains(other *scopeSpan) bool {
	return s.start <= other.start && other.end <= s.end
}

// Index maps positions to scopes.
type Index struct {
	tree *rbtree.Tree[*scopeSpan]
}

// New builds the index for a scope tree. Scopes without a block node or
// with an empty span are skipped; lookups then resolve to the nearest
// indexed ancestor.
func New(root *scopegraph.Scope) *Index {
	x := &Index{tree: rbtree.New[*scopeSpan]()}
	x.add(root)

	return x
}

// add inserts the scope and, parent first, everything below it.
func (x *Index) add(s *scopegraph.Scope) {
	if s == nil {
		return
	}

	if s.Block != nil {
		if sp := s.Block.Span(); sp.End > sp.Start {
			insert(x.tree, &scopeSpan{start: sp.Start, end: sp.End, scope: s})
		}
	}

	for _, c := range s.Children {
		x.add(c)
	}
}

func insert(t *rbtree.Tree[*scopeSpan], s *scopeSpan) {
	r := t.InsertReturn(s)
	if r == s {
		// Disjoint from everything at this level.
		return
	}

	if r.contains(s) {
		if r.children == nil {
			r.children = rbtree.New[*scopeSpan]()
		}

		insert(r.children, s)

		return
	}

	// A span that overlaps without nesting violates the producer
	// contract. Drop it; lookups fall back to the enclosing scope.
}

// Innermost returns the deepest scope whose block span contains pos, or
// nil when pos lies outside every indexed span.
func (x *Index) Innermost(pos int) *scopegraph.Scope {
	probe := &scopeSpan{start: pos, end: pos + 1}

	n := x.tree.Search(probe)
	for n != nil {
		if n.children == nil {
			return n.scope
		}

		c := n.children.Search(probe)
		if c == nil {
			return n.scope
		}

		n = c
	}

	return nil
}
