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
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/pkg/uci/cmd"
)

func newTestEngine(t *testing.T) *context.Engine {
	t.Helper()
	e := context.New(config.Config{Threads: 1, Hash: 1}, logging.NewNop())
	t.Cleanup(func() { e.Pool.Close() })
	return e
}

func run(t *testing.T, c cmd.Command, line string) error {
	t.Helper()
	schema := cmd.NewSchema()
	schema.Add(c)
	_, interaction, err := cmd.NewInteraction(schema, io.Discard, line)
	require.NoError(t, err)
	return c.RunWith(interaction)
}

func TestStopIsANoOpWhenIdle(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, run(t, NewStop(e), "stop"))
}

func TestPositionRejectsBothStartposAndFEN(t *testing.T) {
	e := newTestEngine(t)
	err := run(t, NewPosition(e), "position startpos fen "+
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Error(t, err)
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	e := newTestEngine(t)
	err := run(t, NewPosition(e), "position startpos moves e2e5")
	require.Error(t, err)
}

func TestUCINewGameRefusesDuringSearch(t *testing.T) {
	e := newTestEngine(t)
	e.Searching.Store(true)
	err := run(t, NewUCINewGame(e), "ucinewgame")
	require.Error(t, err)
}

func TestSetOptionRequiresName(t *testing.T) {
	e := newTestEngine(t)
	err := run(t, NewSetOption(e), "setoption value 4")
	require.Error(t, err)
}

func TestDPrintsPositionDetails(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, run(t, NewD(e), "d"))
}
