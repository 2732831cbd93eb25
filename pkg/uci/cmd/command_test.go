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

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/uci/flag"
)

func TestNewInteractionDispatchesKnownCommand(t *testing.T) {
	schema := NewSchema()

	flags := flag.NewSchema()
	flags.Single("name")
	schema.Add(Command{
		Name:  "isready",
		Flags: flags,
		Run: func(i Interaction) error {
			i.Reply("readyok")
			return nil
		},
	})

	var out bytes.Buffer
	c, i, err := NewInteraction(schema, &out, "isready")
	require.NoError(t, err)

	require.NoError(t, c.RunWith(i))
	require.Equal(t, "readyok\n", out.String())
}

func TestNewInteractionRejectsUnknownCommand(t *testing.T) {
	schema := NewSchema()
	var out bytes.Buffer

	_, _, err := NewInteraction(schema, &out, "bogus")
	require.Error(t, err)
}

func TestRunWithRecoversPanic(t *testing.T) {
	schema := NewSchema()
	schema.Add(Command{
		Name: "boom",
		Run: func(Interaction) error {
			panic("unexpected")
		},
	})

	var out bytes.Buffer
	c, i, err := NewInteraction(schema, &out, "boom")
	require.NoError(t, err)

	err = c.RunWith(i)
	require.Error(t, err)
	require.Contains(t, err.Error(), "panicked")
}

func TestReplyfFormats(t *testing.T) {
	var out bytes.Buffer
	i := Interaction{stdout: &out}
	i.Replyf("bestmove %s", "e2e4")
	require.Equal(t, "bestmove e2e4\n", out.String())
}
