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

package tracker_test

import (
	"testing"

	"fillmore-labs.com/reftrace/tracker"
)

func TestPathString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path tracker.Path
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "single", path: tracker.Path{"console"}, want: "console"},
		{name: "nested", path: tracker.Path{"m", "foo", "bar"}, want: "m.foo.bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, want := tt.path.String(), tt.want; got != want {
				t.Errorf("Got %q, expected %q", got, want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  tracker.Type
		want string
	}{
		{name: "read", typ: tracker.Read, want: "read"},
		{name: "call", typ: tracker.Call, want: "call"},
		{name: "construct", typ: tracker.Construct, want: "construct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got, want := tt.typ.String(), tt.want; got != want {
				t.Errorf("Got %q, expected %q", got, want)
			}
		})
	}
}
