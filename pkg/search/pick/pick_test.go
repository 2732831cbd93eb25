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

package pick

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/history"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

func collect(t *testing.T, p *Picker) []move.Move {
	t.Helper()
	var out []move.Move
	for {
		m, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

func TestTTMoveYieldedFirstAndOnlyOnce(t *testing.T) {
	pos := &board.Position{}
	require.NoError(t, pos.SetFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"))

	ttMove := move.New(square.E2, square.E4, move.Normal, 0)
	var tables history.Tables
	p := New(pos, ttMove, &tables, 0, piece.NoPiece, square.A1, nil)

	moves := collect(t, p)
	require.NotEmpty(t, moves)
	require.Equal(t, ttMove, moves[0], "the TT move must be yielded first")

	var seen int
	for _, m := range moves {
		if m == ttMove {
			seen++
		}
	}
	require.Equal(t, 1, seen, "the TT move must never be yielded a second time")
}

func TestGoodCaptureOrderedBeforeQuiets(t *testing.T) {
	pos := &board.Position{}
	require.NoError(t, pos.SetFEN("3qk3/8/8/8/8/8/8/3RK3 w - - 0 1"))

	p := New(pos, move.None, &history.Tables{}, 0, piece.NoPiece, square.A1, nil)
	moves := collect(t, p)
	require.NotEmpty(t, moves)

	capture := move.New(square.D1, square.D8, move.Normal, 0)
	require.Equal(t, capture, moves[0], "a winning capture must be ordered ahead of every quiet move")
}

func TestBadCaptureDeferredUntilAfterQuiets(t *testing.T) {
	// queen takes a rook-defended pawn: even against GoodCapture's lenient,
	// score-scaled SEE threshold this loses material.
	pos := &board.Position{}
	require.NoError(t, pos.SetFEN("r3k3/p7/8/8/8/8/8/Q3K3 w - - 0 1"))

	p := New(pos, move.None, &history.Tables{}, 0, piece.NoPiece, square.A1, nil)
	moves := collect(t, p)
	require.NotEmpty(t, moves)

	capture := move.New(square.A1, square.A7, move.Normal, 0)
	require.Equal(t, capture, moves[len(moves)-1], "a losing capture must be deferred behind every quiet move")
}

func TestQSearchModeExcludesQuiets(t *testing.T) {
	pos := &board.Position{}
	require.NoError(t, pos.SetFEN("3qk3/8/8/8/8/8/8/3RK3 w - - 0 1"))

	p := NewQSearch(pos, move.None)
	moves := collect(t, p)

	capture := move.New(square.D1, square.D8, move.Normal, 0)
	require.Equal(t, []move.Move{capture}, moves, "quiescence mode must only ever yield captures")
}

func TestProbCutYieldsOnlyCapturesBeatingThreshold(t *testing.T) {
	winning := &board.Position{}
	require.NoError(t, winning.SetFEN("3qk3/8/8/8/8/8/8/3RK3 w - - 0 1"))

	p := NewProbCut(winning, 0)
	moves := collect(t, p)
	capture := move.New(square.D1, square.D8, move.Normal, 0)
	require.Equal(t, []move.Move{capture}, moves)

	losing := &board.Position{}
	require.NoError(t, losing.SetFEN("r3k3/p7/8/8/8/8/8/R3K3 w - - 0 1"))

	p = NewProbCut(losing, 0)
	moves = collect(t, p)
	require.Empty(t, moves, "a losing capture must not beat a zero probcut threshold")
}

func TestKillersAreScoredAboveOrdinaryQuiets(t *testing.T) {
	pos := &board.Position{}
	require.NoError(t, pos.SetFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"))

	knightDev := move.New(square.G1, square.F3, move.Normal, 0)

	var tables history.Tables
	tables.Killers.Update(0, knightDev)

	p := New(pos, move.None, &tables, 0, piece.NoPiece, square.A1, nil)
	moves := collect(t, p)
	require.NotEmpty(t, moves)
	require.Equal(t, knightDev, moves[0], "a stored killer must be ordered ahead of unscored quiet moves")
}
