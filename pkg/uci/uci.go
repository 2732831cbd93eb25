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

// Package uci implements the text-based protocol UCI-speaking chess
// GUIs use to drive an engine: a read-eval-print loop over stdin/
// stdout dispatching each line to a registered cmd.Command.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/corvidchess/corvid/pkg/uci/cmd"
)

// Client is one running UCI session: an input scanner, an output
// sink, and the command Schema it dispatches against.
type Client struct {
	in     *bufio.Scanner
	out    io.Writer
	schema cmd.Schema

	mu sync.Mutex // serializes writes to out from parallel commands
}

// NewClient builds a Client reading from in and writing to out (both
// typically os.Stdin/os.Stdout, swapped out in tests).
func NewClient(in io.Reader, out io.Writer) *Client {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Client{
		in:     scanner,
		out:    out,
		schema: cmd.NewSchema(),
	}
}

// NewStdClient is NewClient wired to os.Stdin/os.Stdout, the
// constructor cmd/corvid's main uses.
func NewStdClient() *Client {
	return NewClient(os.Stdin, os.Stdout)
}

// AddCommand registers c for dispatch.
func (c *Client) AddCommand(command cmd.Command) {
	c.schema.Add(command)
}

// Print, Printf and Println write directly to the client's output,
// serialized against concurrent writes from Parallel commands.
func (c *Client) Print(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, a...)
}

func (c *Client) Printf(format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, a...)
}

func (c *Client) Println(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, a...)
}

// Run executes a single line as if it had been read from stdin,
// bypassing the scanning loop — the shape a test, or a "bench"-style
// one-shot invocation, wants.
func (c *Client) Run(line string) error {
	return c.dispatch(line)
}

// Start reads lines from the client's input until EOF or a command's
// Run returns a "quit" sentinel error, dispatching each one as it
// arrives.
func (c *Client) Start() error {
	for c.in.Scan() {
		line := c.in.Text()
		if err := c.dispatch(line); err != nil {
			if err == ErrQuit {
				return nil
			}
			c.Println("info string error:", err)
		}
	}
	return c.in.Err()
}

// ErrQuit is returned by the "quit" command's Run to unwind Start
// cleanly, distinguishing a deliberate shutdown from a protocol
// error.
var ErrQuit = fmt.Errorf("uci: quit")

func (c *Client) dispatch(line string) error {
	command, interaction, err := cmd.NewInteraction(c.schema, &syncWriter{c: c}, line)
	if err != nil {
		if line == "" {
			return nil
		}
		return err
	}

	if command.Parallel {
		go func() {
			if err := command.RunWith(interaction); err != nil {
				c.Println("info string error:", err)
			}
		}()
		return nil
	}

	return command.RunWith(interaction)
}

// syncWriter routes a cmd.Interaction's output through the Client's
// mutex, so a Parallel command's replies never interleave mid-line
// with the main loop's.
type syncWriter struct{ c *Client }

func (w *syncWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	return w.c.out.Write(p)
}
