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

// Package cmd dispatches a line of UCI input to the registered
// Command, parsing its arguments against the command's flag.Schema
// before the command's Run function ever sees them.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/corvidchess/corvid/pkg/uci/flag"
)

// Command is one recognized UCI verb ("go", "position", "setoption",
// ...).
type Command struct {
	Name string

	// Parallel commands (like "stop" or "isready" mid-search) run on
	// their own goroutine instead of the serial command loop, so they
	// can interrupt a blocking Run already in progress.
	Parallel bool

	Flags flag.Schema
	Run   func(i Interaction) error
}

// Schema is the set of commands a Client recognizes, keyed by name.
type Schema struct {
	commands map[string]Command
}

// NewSchema returns an empty command Schema.
func NewSchema() Schema {
	return Schema{commands: make(map[string]Command)}
}

// Add registers a command.
func (s Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks up a command by its leading token.
func (s Schema) Get(name string) (Command, bool) {
	c, ok := s.commands[name]
	return c, ok
}

// Interaction bundles everything a Command's Run function needs: the
// output sink, the command it was invoked as, and its parsed flag
// values.
type Interaction struct {
	stdout io.Writer

	Command string
	Values  flag.Values
}

// NewInteraction parses line's fields against schema and returns the
// Interaction and the matched Command ready to Run, or an error if
// the line names no known command or its arguments don't parse.
func NewInteraction(schema Schema, stdout io.Writer, line string) (Command, Interaction, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, Interaction{}, fmt.Errorf("uci: empty command")
	}

	name := fields[0]
	c, ok := schema.Get(name)
	if !ok {
		return Command{}, Interaction{}, fmt.Errorf("uci: unknown command %q", name)
	}

	values, err := c.Flags.Parse(fields[1:])
	if err != nil {
		return Command{}, Interaction{}, err
	}

	return c, Interaction{stdout: stdout, Command: name, Values: values}, nil
}

// RunWith runs c against i, recovering a panic inside Run into an
// error rather than taking the whole engine process down with it — a
// single malformed GUI interaction should not crash the match.
func (c Command) RunWith(i Interaction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("uci: command %q panicked: %v", c.Name, r)
		}
	}()
	return c.Run(i)
}

// Reply writes s followed by a newline to the interaction's output.
func (i Interaction) Reply(s string) {
	fmt.Fprintln(i.stdout, s)
}

// Replyf is Reply with fmt.Sprintf-style formatting.
func (i Interaction) Replyf(format string, args ...any) {
	fmt.Fprintf(i.stdout, format+"\n", args...)
}
