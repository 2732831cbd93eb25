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

// Package flag describes the argument shape of a UCI command: each
// named flag knows how to collect its own values off the front of an
// argument list, so a command's Schema can parse "position fen ... moves
// ..." or "go wtime 100 btime 100 movestogo 40" without a bespoke
// parser per command.
package flag

import "fmt"

// Collector consumes its flag's arguments from the front of args and
// returns the parsed value, the unconsumed remainder, and any error.
type Collector func(args []string) (value any, rest []string, err error)

// Schema is the set of flags a single UCI command accepts.
type Schema struct {
	flags map[string]Collector
}

// NewSchema returns an empty flag Schema.
func NewSchema() Schema {
	return Schema{flags: make(map[string]Collector)}
}

// Button registers a no-argument flag: present or absent, never
// carrying a value.
func (s Schema) Button(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return nil, args, nil
	}
}

// Single registers a flag that consumes exactly one argument.
func (s Schema) Single(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		if len(args) == 0 {
			return nil, nil, countErr(name, 1, 0)
		}
		return args[0], args[1:], nil
	}
}

// Array registers a flag with a fixed argument count n.
func (s Schema) Array(name string, n int) {
	s.flags[name] = func(args []string) (any, []string, error) {
		if len(args) < n {
			return nil, nil, countErr(name, n, len(args))
		}
		value := make([]string, n)
		copy(value, args[:n])
		return value, args[n:], nil
	}
}

// Variadic registers a flag that consumes every remaining argument,
// the shape "moves e2e4 e7e5 ..." needs.
func (s Schema) Variadic(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return args, nil, nil
	}
}

// Value is one flag's parsed value within a single command
// invocation.
type Value struct {
	Set   bool
	Value any
}

// Values maps every flag name that appeared in a command invocation
// to its parsed Value.
type Values map[string]Value

// Parse consumes args against the schema, left to right: each token
// must name a known flag, whose collector then consumes however many
// further tokens it needs.
func (s Schema) Parse(args []string) (Values, error) {
	values := make(Values)

	if s.flags == nil {
		if len(args) > 0 {
			return values, fmt.Errorf("uci: unexpected argument %q", args[0])
		}
		return values, nil
	}

	for len(args) > 0 {
		name := args[0]

		collect, ok := s.flags[name]
		if !ok {
			return values, fmt.Errorf("uci: unknown flag %q", name)
		}
		if values[name].Set {
			return values, fmt.Errorf("uci: flag %q given twice", name)
		}

		value, rest, err := collect(args[1:])
		if err != nil {
			return values, err
		}

		values[name] = Value{Set: true, Value: value}
		args = rest
	}

	return values, nil
}

func countErr(name string, want, got int) error {
	return fmt.Errorf("uci: flag %q wants %d argument(s), got %d", name, want, got)
}
