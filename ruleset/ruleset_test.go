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

package ruleset_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/reftrace/internal/testtree"
	"fillmore-labs.com/reftrace/jsast"
	. "fillmore-labs.com/reftrace/ruleset"
	"fillmore-labs.com/reftrace/tracemap"
	"fillmore-labs.com/reftrace/tracker"
)

const document = `
mode: legacy
global-objects: [globalThis, window]
globals:
  console:
    properties:
      log: {call: forbidden}
modules:
  fs:
    read: true
    properties:
      readFileSync: {read: true, call: true}
  lodash:
    esm: true
    properties:
      merge: {call: {level: warn}}
  left-pad:
`

func TestParse(t *testing.T) {
	t.Parallel()

	// when
	f, err := Parse(strings.NewReader(document))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	// then
	wantGlobals := tracemap.Map{
		"console": {Children: tracemap.Map{"log": {Call: "forbidden"}}},
	}
	if diff := cmp.Diff(wantGlobals, f.GlobalMap()); diff != "" {
		t.Errorf("GlobalMap() mismatch (-want +got):\n%s", diff)
	}

	wantModules := tracemap.Map{
		"fs": {
			Read:     true,
			Children: tracemap.Map{"readFileSync": {Read: true, Call: true}},
		},
		"lodash": {
			ESM:      true,
			Children: tracemap.Map{"merge": {Call: map[string]any{"level": "warn"}}},
		},
		"left-pad": {},
	}
	if diff := cmp.Diff(wantModules, f.ModuleMap()); diff != "" {
		t.Errorf("ModuleMap() mismatch (-want +got):\n%s", diff)
	}

	if got, want := f.Mode, "legacy"; got != want {
		t.Errorf("Got mode %q, expected %q", got, want)
	}

	if got, want := f.GlobalObjects, []string{"globalThis", "window"}; !slices.Equal(got, want) {
		t.Errorf("Got global objects %v, expected %v", got, want)
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	// when
	f, err := Parse(strings.NewReader(""))

	// then
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if f.GlobalMap() != nil || f.ModuleMap() != nil {
		t.Error("Got trace maps from an empty document, expected none")
	}

	if got := f.Options(); len(got) != 0 {
		t.Errorf("Got %d options from an empty document, expected none", len(got))
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown_field",
			doc:  "globals: {}\nextra: 1\n",
			want: ErrInvalidDocument,
		},
		{
			name: "unknown_rule_field",
			doc:  "globals:\n  console:\n    level: 3\n",
			want: ErrInvalidDocument,
		},
		{
			name: "wrong_shape",
			doc:  "globals: [console]\n",
			want: ErrInvalidDocument,
		},
		{
			name: "unknown_mode",
			doc:  "mode: loose\n",
			want: ErrUnknownMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			_, err := Parse(strings.NewReader(tt.doc))

			// then
			if !errors.Is(err, tt.want) {
				t.Errorf("Got error %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	// given
	f, err := Parse(strings.NewReader(document))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	// when
	got := f.Options().LogValue().String()

	// then
	want := "[mode=legacy globalObjects=[globalThis window]]"
	if got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}

// TestDrivesTracker runs a parsed document end to end: the document's
// options and module map configure a tracker that reports the expected
// match.
func TestDrivesTracker(t *testing.T) {
	t.Parallel()

	// given
	doc := `
mode: legacy
modules:
  m:
    properties:
      foo: {call: downgrade}
`
	f, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	// import {foo} from "m"; foo()
	call := testtree.Call(testtree.Ident("foo"))
	_, global := testtree.Module(t,
		testtree.Import("m", testtree.ImportNamed("foo", "foo")),
		testtree.ExprStmt(call),
	)

	// when
	tr := tracker.New(global, f.Options())
	got := slices.Collect(tr.TrackESModules(f.ModuleMap()))

	// then
	want := []tracker.Match{
		{Node: call, Path: tracker.Path{"m", "foo"}, Type: tracker.Call, Entry: "downgrade"},
	}
	nodeIdentity := cmp.Comparer(func(a, b jsast.Node) bool { return a == b })
	if diff := cmp.Diff(want, got, nodeIdentity); diff != "" {
		t.Errorf("TrackESModules() mismatch (-want +got):\n%s", diff)
	}
}
