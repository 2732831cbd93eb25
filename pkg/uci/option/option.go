// Copyright © 2024 The Corvid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package option implements the engine's side of the UCI "option"
// protocol: declaring tunable values to the GUI with "option name ...
// type ...", then accepting "setoption name ... value ..." to change
// them at runtime.
package option

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Option is a single named, settable engine parameter.
type Option interface {
	// Type formats the option's UCI "option name <name> ..." type
	// clause (everything after the name).
	Type() string

	// Store parses raw value tokens and applies them, returning an
	// error if they don't fit the option's type.
	Store(value []string) error
}

// Schema is the set of options an engine instance exposes, in
// declaration order (UCI clients expect "option" lines in a stable,
// meaningful order, not map iteration order).
type Schema struct {
	names []string
	opts  map[string]Option
}

// NewSchema returns an empty option Schema.
func NewSchema() *Schema {
	return &Schema{opts: make(map[string]Option)}
}

// Add registers an option under name. Re-registering a name replaces
// it in place without disturbing declaration order.
func (s *Schema) Add(name string, opt Option) {
	if _, exists := s.opts[name]; !exists {
		s.names = append(s.names, name)
	}
	s.opts[name] = opt
}

// Get looks up a previously registered option by name.
func (s *Schema) Get(name string) (Option, bool) {
	opt, ok := s.opts[name]
	return opt, ok
}

// Set parses "setoption name <name> value <value...>" arguments
// (already split on whitespace, with the leading "name"/"value"
// keywords stripped by the caller) and applies them to the matching
// option.
func (s *Schema) Set(name string, value []string) error {
	opt, ok := s.opts[name]
	if !ok {
		return fmt.Errorf("uci: unknown option %q", name)
	}
	return opt.Store(value)
}

// String renders every registered option as newline-separated
// "option name ... type ..." lines, in declaration order, the shape
// the "uci" command's response needs.
func (s *Schema) String() string {
	var b strings.Builder
	for _, name := range s.names {
		fmt.Fprintf(&b, "option name %s %s\n", name, s.opts[name].Type())
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Sort orders option names alphabetically, for callers (like "d"
// diagnostic output) that want a deterministic listing independent of
// UCI declaration order.
func (s *Schema) Sort() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	sort.Strings(names)
	return names
}

// Check is a boolean option ("type check").
type Check struct {
	Default bool
	Value   bool
}

func (c *Check) Type() string { return fmt.Sprintf("type check default %v", c.Default) }

func (c *Check) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("uci: check option wants 1 value, got %d", len(value))
	}
	v, err := strconv.ParseBool(value[0])
	if err != nil {
		return fmt.Errorf("uci: invalid check value %q: %w", value[0], err)
	}
	c.Value = v
	return nil
}

// Spin is a bounded integer option ("type spin").
type Spin struct {
	Default, Min, Max int
	Value             int
}

func (s *Spin) Type() string {
	return fmt.Sprintf("type spin default %d min %d max %d", s.Default, s.Min, s.Max)
}

func (s *Spin) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("uci: spin option wants 1 value, got %d", len(value))
	}
	v, err := strconv.Atoi(value[0])
	if err != nil {
		return fmt.Errorf("uci: invalid spin value %q: %w", value[0], err)
	}
	if v < s.Min || v > s.Max {
		return fmt.Errorf("uci: spin value %d out of range [%d, %d]", v, s.Min, s.Max)
	}
	s.Value = v
	return nil
}

// Button is a zero-argument command-like option ("type button"): it
// carries no value, only an OnSet hook run whenever the option is
// invoked, the shape "setoption name Clear Hash" needs.
type Button struct {
	OnSet func()
}

func (*Button) Type() string { return "type button" }

func (b *Button) Store(value []string) error {
	if len(value) != 0 {
		return fmt.Errorf("uci: button option takes no value, got %d", len(value))
	}
	if b.OnSet != nil {
		b.OnSet()
	}
	return nil
}

// String is a free-text option ("type string"). An empty value is
// encoded as the literal "<empty>" per the UCI protocol and decoded
// back to "" on Store.
type String struct {
	Default string
	Value   string
}

func (s *String) Type() string {
	def := s.Default
	if def == "" {
		def = "<empty>"
	}
	return fmt.Sprintf("type string default %s", def)
}

func (s *String) Store(value []string) error {
	joined := strings.Join(value, " ")
	if joined == "<empty>" {
		joined = ""
	}
	s.Value = joined
	return nil
}

// Combo is a fixed-choice option ("type combo").
type Combo struct {
	Default string
	Choices []string
	Value   string
}

func (c *Combo) Type() string {
	var b strings.Builder
	fmt.Fprintf(&b, "type combo default %s", c.Default)
	for _, choice := range c.Choices {
		fmt.Fprintf(&b, " var %s", choice)
	}
	return b.String()
}

func (c *Combo) Store(value []string) error {
	joined := strings.Join(value, " ")
	for _, choice := range c.Choices {
		if choice == joined {
			c.Value = joined
			return nil
		}
	}
	return fmt.Errorf("uci: invalid combo value %q", joined)
}
