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

package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

func TestKillersPromoteAndDemote(t *testing.T) {
	var k Killers

	m1 := move.New(square.E2, square.E4, move.Normal, 0)
	m2 := move.New(square.D2, square.D4, move.Normal, 0)

	k.Update(3, m1)
	first, second := k.Probe(3)
	require.Equal(t, m1, first)
	require.Equal(t, move.None, second)

	k.Update(3, m2)
	first, second = k.Probe(3)
	require.Equal(t, m2, first, "a new killer becomes the primary")
	require.Equal(t, m1, second, "the old primary is demoted, not dropped")
}

func TestKillersIgnoreRepeat(t *testing.T) {
	var k Killers
	m := move.New(square.G1, square.F3, move.Normal, 0)

	k.Update(0, m)
	k.Update(0, m)

	first, second := k.Probe(0)
	require.Equal(t, m, first)
	require.Equal(t, move.None, second, "re-storing the same killer must not shuffle it into its own second slot")
}

func TestQuietHistoryBoundedByLimit(t *testing.T) {
	var q Quiet

	for i := 0; i < 1000; i++ {
		q.Update(piece.White, false, false, square.E2, square.E4, StatBonus(30))
	}

	v := q.Probe(piece.White, false, false, square.E2, square.E4)
	require.LessOrEqual(t, int(v), historyLimit, "repeated positive updates must never push an entry past its bound")
	require.GreaterOrEqual(t, int(v), -historyLimit)
}

func TestQuietHistoryDecaysTowardOppositeSign(t *testing.T) {
	var q Quiet

	for i := 0; i < 50; i++ {
		q.Update(piece.Black, true, false, square.A7, square.A5, StatBonus(20))
	}
	positive := q.Probe(piece.Black, true, false, square.A7, square.A5)
	require.Positive(t, positive)

	for i := 0; i < 50; i++ {
		q.Update(piece.Black, true, false, square.A7, square.A5, -StatBonus(20))
	}
	negative := q.Probe(piece.Black, true, false, square.A7, square.A5)
	require.Less(t, negative, positive, "sustained negative updates must pull a previously positive entry back down")
}

func TestCaptureHistoryIndependentOfQuiet(t *testing.T) {
	var q Quiet
	var c Capture

	q.Update(piece.White, false, false, square.D2, square.D4, StatBonus(10))
	c.Update(piece.WhitePawn, false, false, square.D4, piece.Knight, StatBonus(10))

	require.NotZero(t, q.Probe(piece.White, false, false, square.D2, square.D4))
	require.NotZero(t, c.Probe(piece.WhitePawn, false, false, square.D4, piece.Knight))
}

func TestCounterMovesRoundTrip(t *testing.T) {
	var c CounterMoves
	reply := move.New(square.D7, square.D5, move.Normal, 0)

	c.Update(piece.WhitePawn, square.E4, reply)
	require.Equal(t, reply, c.Probe(piece.WhitePawn, square.E4))
	require.Equal(t, move.None, c.Probe(piece.WhitePawn, square.D4))
}

func TestContinuationTablesSeparateByContext(t *testing.T) {
	var ct ContinuationTables

	quietTable := ct.Table(false, false)
	captureTable := ct.Table(false, true)

	quietTable.Update(false, false, piece.BlackKnight, square.F6, StatBonus(40))

	require.NotZero(t, quietTable.Probe(false, false, piece.BlackKnight, square.F6))
	require.Zero(t, captureTable.Probe(false, false, piece.BlackKnight, square.F6), "the in-check/is-capture contexts must not share storage")
}

func TestStatBonusCapsAtDepth(t *testing.T) {
	require.Equal(t, int16(2000), StatBonus(100), "stat bonus must saturate rather than grow without bound at high depth")
	require.Less(t, StatBonus(1), StatBonus(5))
}

func TestTablesClear(t *testing.T) {
	var tbl Tables
	m := move.New(square.B1, square.C3, move.Normal, 0)

	tbl.Killers.Update(1, m)
	tbl.Quiet.Update(piece.White, false, false, square.B1, square.C3, StatBonus(10))

	tbl.Clear()

	first, _ := tbl.Killers.Probe(1)
	require.Equal(t, move.None, first)
	require.Zero(t, tbl.Quiet.Probe(piece.White, false, false, square.B1, square.C3))
}
