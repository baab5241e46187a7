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
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Mode selects how a CommonJS-shaped module map is exposed to
// ECMAScript-module import syntax.
type Mode uint8

//go:generate go tool stringer -type Mode -linecomment
const (
	// Strict exposes a CommonJS-shaped map as the default export only,
	// and suppresses matches on the bare act of importing it.
	Strict Mode = iota // strict

	// Legacy additionally flattens the map onto the module namespace,
	// matching the interop behavior of CommonJS-transpiling bundlers.
	Legacy // legacy
)

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Strict:
		return []byte("strict"), nil

	case Legacy:
		return []byte("legacy"), nil

	default:
		return nil, fmt.Errorf("unknown interop mode %d", m)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "strict":
		*m = Strict

	case "legacy":
		*m = Legacy

	default:
		return fmt.Errorf("unknown interop mode %q", string(text))
	}

	return nil
}

// Option configures specific behavior of a [New] reference tracker.
type Option interface {
	apply(s *settings)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the
// [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(s *settings) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(s)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// settings is the resolved configuration of a tracker.
type settings struct {
	mode              Mode
	globalObjectNames []string
	keys              KeyResolver
}

// defaultGlobalObjectNames are the conventional spellings of "the
// global object" across host environments.
var defaultGlobalObjectNames = []string{"global", "self", "window"}

func defaultSettings() settings {
	return settings{
		mode:              Strict,
		globalObjectNames: defaultGlobalObjectNames,
		keys:              literalKeys{},
	}
}

// WithMode is an [Option] selecting the CommonJS/ESM interop mode. The
// default is [Strict].
func WithMode(mode Mode) Option { return modeOption{mode: mode} }

type modeOption struct{ mode Mode }

func (o modeOption) apply(s *settings) {
	s.mode = o.mode
}

func (o modeOption) LogAttr() slog.Attr {
	return slog.String("mode", o.mode.String())
}

// WithGlobalObjectNames is an [Option] replacing the global-object
// alias names the global strategy recognizes.
func WithGlobalObjectNames(names ...string) Option {
	return globalsOption{names: slices.Clone(names)}
}

type globalsOption struct{ names []string }

func (o globalsOption) apply(s *settings) {
	s.globalObjectNames = o.names
}

func (o globalsOption) LogAttr() slog.Attr {
	return slog.Any("globalObjects", o.names)
}

// WithKeyResolver is an [Option] replacing the constant-key folding
// used for computed member keys, destructuring keys and require
// arguments. A nil resolver keeps the default.
func WithKeyResolver(keys KeyResolver) Option { return keysOption{keys: keys} }

type keysOption struct{ keys KeyResolver }

func (o keysOption) apply(s *settings) {
	if o.keys != nil {
		s.keys = o.keys
	}
}

func (o keysOption) LogAttr() slog.Attr {
	return slog.String("keyResolver", fmt.Sprintf("%T", o.keys))
}
