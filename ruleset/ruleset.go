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

// Package ruleset loads trace maps and tracker configuration from YAML
// documents, so consumers can declare the paths they care about
// without constructing [tracemap.Map] values in code.
//
// A document separates traced property names from marker fields with a
// properties key, keeping modules that export names like "read"
// expressible:
//
//	mode: legacy
//	globals:
//	  Buffer:
//	    construct: {replace: "Uint8Array"}
//	modules:
//	  fs:
//	    properties:
//	      readFileSync: {read: true}
//
// Marker payloads are arbitrary YAML values and surface verbatim as
// [tracemap.Entry] on emitted matches.
package ruleset

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/reftrace/tracemap"
	"fillmore-labs.com/reftrace/tracker"
)

// ErrInvalidDocument is returned by [Parse] for input that does not
// decode into a ruleset.
var ErrInvalidDocument = errors.New("invalid ruleset document")

// ErrUnknownMode is returned by [Parse] when the mode field names no
// interop mode.
var ErrUnknownMode = errors.New("unknown interop mode")

// File is one parsed ruleset document.
type File struct {
	// Mode selects the CommonJS/ESM interop behavior, "strict"
	// (default) or "legacy".
	Mode string `yaml:"mode,omitempty"`
	// GlobalObjects replaces the global-object alias names.
	GlobalObjects []string `yaml:"global-objects,omitempty"`
	// Globals holds rules for paths rooted at global bindings.
	Globals map[string]*Rule `yaml:"globals,omitempty"`
	// Modules holds rules for paths rooted at require calls and import
	// declarations, keyed by module specifier.
	Modules map[string]*Rule `yaml:"modules,omitempty"`
}

// Rule is one trace-map node in document form.
type Rule struct {
	// Read, Call and Construct carry the marker payload reported with a
	// match; any non-null value arms the marker.
	Read      any `yaml:"read,omitempty"`
	Call      any `yaml:"call,omitempty"`
	Construct any `yaml:"construct,omitempty"`
	// ESM marks a module rule whose properties already are named
	// exports, skipping CommonJS default-export interop.
	ESM bool `yaml:"esm,omitempty"`
	// Properties holds the traced member names below this node.
	Properties map[string]*Rule `yaml:"properties,omitempty"`
}

// Parse reads one YAML ruleset document, rejecting unknown fields. An
// empty document is a valid ruleset that traces nothing.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}

		return nil, fmt.Errorf("ruleset: %w: %w", ErrInvalidDocument, err)
	}

	if _, err := f.mode(); err != nil {
		return nil, err
	}

	return &f, nil
}

func (f *File) mode() (tracker.Mode, error) {
	var mode tracker.Mode
	if err := mode.UnmarshalText([]byte(f.Mode)); err != nil {
		return mode, fmt.Errorf("ruleset: %w %q", ErrUnknownMode, f.Mode)
	}

	return mode, nil
}

// Options converts the document settings into tracker options,
// applying only fields the document sets. An unparsable mode is
// skipped; [Parse] has already rejected it for decoded documents.
func (f *File) Options() tracker.Options {
	var opts tracker.Options

	if f.Mode != "" {
		if mode, err := f.mode(); err == nil {
			opts = append(opts, tracker.WithMode(mode))
		}
	}

	if len(f.GlobalObjects) > 0 {
		opts = append(opts, tracker.WithGlobalObjectNames(f.GlobalObjects...))
	}

	return opts
}

// GlobalMap builds the trace map for [tracker.Tracker.TrackGlobals].
func (f *File) GlobalMap() tracemap.Map {
	return traceMap(f.Globals)
}

// ModuleMap builds the trace map for [tracker.Tracker.TrackCommonJS]
// and [tracker.Tracker.TrackESModules].
func (f *File) ModuleMap() tracemap.Map {
	return traceMap(f.Modules)
}

func traceMap(rules map[string]*Rule) tracemap.Map {
	if len(rules) == 0 {
		return nil
	}

	m := make(tracemap.Map, len(rules))
	for name, rule := range rules {
		m[name] = traceNode(rule)
	}

	return m
}

func traceNode(rule *Rule) *tracemap.Node {
	if rule == nil {
		// A bare name with no markers matches nothing itself but keeps
		// the document well-formed.
		return &tracemap.Node{}
	}

	return &tracemap.Node{
		Children:  traceMap(rule.Properties),
		Read:      rule.Read,
		Call:      rule.Call,
		Construct: rule.Construct,
		ESM:       rule.ESM,
	}
}
