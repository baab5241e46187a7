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
	"maps"

	"fillmore-labs.com/reftrace/jsast"
	"fillmore-labs.com/reftrace/tracemap"
)

// defaultKey is the export name a CommonJS-shaped module is reachable
// under when imported with ES module syntax.
const defaultKey = "default"

// TrackESModules reports accesses to traced paths entered through
// import and export declarations. Top-level trace-map keys are module
// specifier strings, matched literally against the source of each
// top-level import, export-from and star re-export declaration.
//
// Programs with script source type have no module syntax and yield
// nothing.
func (t *Tracker) TrackESModules(m tracemap.Map) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		program, ok := t.global.Block.(*jsast.Program)
		if !ok || program.SourceType != jsast.Module {
			return
		}

		w := &walker{t: t}
		for _, stmt := range program.Body {
			if !w.moduleRefs(stmt, m, yield) {
				return
			}
		}
	}
}

// moduleRefs matches one top-level statement against the trace map.
// Only import and export declarations naming a source module
// participate; a READ marker on the module's own node reports at the
// declaration before any specifier is considered.
func (w *walker) moduleRefs(stmt jsast.Stmt, m tracemap.Map, yield func(Match) bool) bool {
	var (
		source     *jsast.StringLiteral
		specifiers []jsast.Node
	)

	switch decl := stmt.(type) {
	case *jsast.ImportDeclaration:
		source, specifiers = decl.Source, decl.Specifiers

	case *jsast.ExportNamedDeclaration:
		source, specifiers = decl.Source, decl.Specifiers

	case *jsast.ExportAllDeclaration:
		source = decl.Source

	default:
		return true
	}

	if source == nil {
		return true
	}

	node := m[source.Value]
	if node == nil {
		return true
	}

	path := Path{source.Value}
	if node.Read != nil {
		if !yield(Match{Node: stmt, Path: path, Type: Read, Entry: node.Read}) {
			return false
		}
	}

	if _, ok := stmt.(*jsast.ExportAllDeclaration); ok {
		// Star re-exports carry no per-symbol syntax, so every
		// readable export reports at the declaration itself.
		for _, key := range tracemap.Keys(node.Children) {
			child := node.Children[key]
			if child == nil || child.Read == nil {
				continue
			}

			if !yield(Match{Node: stmt, Path: extend(path, key), Type: Read, Entry: child.Read}) {
				return false
			}
		}

		return true
	}

	exports := w.moduleExports(node)

	emit := yield
	if !node.ESM {
		emit = w.interopEmit(yield)
	}

	for _, spec := range specifiers {
		if !w.importRefs(spec, path, exports, emit) {
			return false
		}
	}

	return true
}

// moduleExports is the export surface a module presents to import
// syntax. Maps marked ESM already have that shape. A CommonJS-shaped
// map becomes its own default export; legacy mode additionally flattens
// its members onto the namespace, mirroring bundler interop.
func (w *walker) moduleExports(node *tracemap.Node) *tracemap.Node {
	if node.ESM {
		return node
	}

	exports := tracemap.Map{defaultKey: node}
	if w.t.mode == Legacy {
		maps.Copy(exports, node.Children)
	}

	return &tracemap.Node{Children: exports}
}

// interopEmit rewrites matches produced under CommonJS interop: the
// synthetic "default" segment disappears so paths read like their
// require counterparts, and strict mode drops matches on the bare
// default binding itself.
func (w *walker) interopEmit(yield func(Match) bool) func(Match) bool {
	return func(match Match) bool {
		match.Path = stripDefault(match.Path)
		if w.t.mode == Strict && len(match.Path) < 2 {
			return true
		}

		return yield(match)
	}
}

// stripDefault removes an interop "default" segment directly after the
// module key, leaving the given path untouched.
func stripDefault(p Path) Path {
	if len(p) < 2 || p[1] != defaultKey {
		return p
	}

	return append(p[:1:1], p[2:]...)
}

// importRefs propagates the module's export surface through one import
// or export specifier.
func (w *walker) importRefs(spec jsast.Node, path Path, exports *tracemap.Node, yield func(Match) bool) bool {
	switch spec := spec.(type) {
	case *jsast.ImportDefaultSpecifier:
		return w.importBinding(spec, spec.Local, defaultKey, path, exports, yield)

	case *jsast.ImportSpecifier:
		key, ok := jsast.ModuleExportName(spec.Imported)
		if !ok {
			return true
		}

		return w.importBinding(spec, spec.Local, key, path, exports, yield)

	case *jsast.ImportNamespaceSpecifier:
		v, ok := w.t.findVariable(spec.Local)
		if !ok {
			return true
		}

		return w.variableRefs(v, path, exports, false, yield)

	case *jsast.ExportSpecifier:
		// Re-exported names are not locally bound, so a READ marker
		// reports at the specifier and nothing propagates further.
		key, ok := jsast.ModuleExportName(spec.Local)
		if !ok {
			return true
		}

		child := exports.Children[key]
		if child == nil {
			return true
		}

		path = extend(path, key)
		if child.Read != nil {
			return yield(Match{Node: spec, Path: path, Type: Read, Entry: child.Read})
		}

		return true

	default:
		return true
	}
}

// importBinding matches one default or named import: the external name
// keys into the export surface, a READ marker reports at the specifier,
// and the local binding carries the child map onward.
func (w *walker) importBinding(
	spec jsast.Node, local *jsast.Identifier, key string, path Path, exports *tracemap.Node, yield func(Match) bool,
) bool {
	child := exports.Children[key]
	if child == nil {
		return true
	}

	path = extend(path, key)
	if child.Read != nil {
		if !yield(Match{Node: spec, Path: path, Type: Read, Entry: child.Read}) {
			return false
		}
	}

	v, ok := w.t.findVariable(local)
	if !ok {
		return true
	}

	return w.variableRefs(v, path, child, false, yield)
}
