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

package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/uci/cmd"
)

func TestClientDispatchesRegisteredCommand(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(strings.NewReader(""), &out)

	c.AddCommand(cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction) error {
			i.Reply("readyok")
			return nil
		},
	})

	require.NoError(t, c.Run("isready"))
	require.Equal(t, "readyok\n", out.String())
}

func TestStartStopsOnQuit(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(strings.NewReader("isready\nquit\n"), &out)

	c.AddCommand(cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction) error {
			i.Reply("readyok")
			return nil
		},
	})
	c.AddCommand(cmd.Command{
		Name: "quit",
		Run: func(cmd.Interaction) error {
			return ErrQuit
		},
	})

	require.NoError(t, c.Start())
	require.Equal(t, "readyok\n", out.String())
}

func TestStartReportsUnknownCommandsAndContinues(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(strings.NewReader("bogus\nquit\n"), &out)

	c.AddCommand(cmd.Command{
		Name: "quit",
		Run: func(cmd.Interaction) error {
			return ErrQuit
		},
	})

	require.NoError(t, c.Start())
	require.Contains(t, out.String(), "info string error:")
}

func TestPrintlnIsSerializedAcrossWrites(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(strings.NewReader(""), &out)

	c.Println("id name corvid")
	c.Printf("id author %s\n", "corvid authors")

	require.Equal(t, "id name corvid\nid author corvid authors\n", out.String())
}
