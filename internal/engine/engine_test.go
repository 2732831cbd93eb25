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

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/pkg/uci"
)

func newTestClient() *uci.Client {
	return NewClient(config.Config{Threads: 1, Hash: 1}, logging.NewNop())
}

func TestUCIHandshakeSucceeds(t *testing.T) {
	require.NoError(t, newTestClient().Run("uci"))
}

func TestIsReadySucceeds(t *testing.T) {
	require.NoError(t, newTestClient().Run("isready"))
}

func TestPositionAcceptsStartpos(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.Run("position startpos"))
	require.NoError(t, c.Run("d"))
}

func TestPositionAcceptsFENAndMoves(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.Run("position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 moves e2e4 e7e5"))
	require.NoError(t, c.Run("d"))
}

func TestSetOptionResizesHash(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.Run("setoption name Hash value 4"))
}

func TestUCINewGameResetsPosition(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.Run("position startpos moves e2e4"))
	require.NoError(t, c.Run("ucinewgame"))
}

func TestGoWithMoveTimeReportsBestMove(t *testing.T) {
	c := newTestClient()
	require.NoError(t, c.Run("position startpos"))
	require.NoError(t, c.Run("go movetime 50"))

	// The search runs on its own goroutine; give it time to finish
	// before the test closes the pool out from under it.
	time.Sleep(250 * time.Millisecond)
	require.ErrorIs(t, c.Run("quit"), uci.ErrQuit)
}
